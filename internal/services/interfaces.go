package services

type Scanner interface {
	Scan(req ScanRequest) ScanResult
}

package services

type ScanRequest struct {
	RootPath string
	Progress chan<- ScanProgress
}

package ui

import "foldersize/internal/services"

type scanResultMsg struct {
	result services.ScanResult
}

type scanProgressMsg struct {
	progress services.ScanProgress
	closed   bool
}

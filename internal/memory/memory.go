package memory

import "context"

// SwapInfo represents system swap usage in bytes
type SwapInfo struct {
	Total uint64  `json:"total_bytes"`
	Used  uint64  `json:"used_bytes"`
	Free  uint64  `json:"free_bytes"`
	Usage float64 `json:"usage_percent"`
}

// Reader interface for swap monitoring
type Reader interface {
	GetInfo(ctx context.Context) (*SwapInfo, error)
}

// NewReader creates a new swap reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

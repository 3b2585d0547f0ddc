//go:build linux

package memory

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

// LinuxReader implements swap monitoring for Linux
type LinuxReader struct{}

// newPlatformReader creates a new Linux swap reader
func newPlatformReader() Reader {
	return &LinuxReader{}
}

// GetInfo returns swap information
func (r *LinuxReader) GetInfo(ctx context.Context) (*SwapInfo, error) {
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read swap usage: %w", err)
	}

	return &SwapInfo{
		Total: swap.Total,
		Used:  swap.Used,
		Free:  swap.Free,
		Usage: swap.UsedPercent,
	}, nil
}

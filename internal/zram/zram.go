package zram

import (
	"fmt"
	"strings"
)

// DevicePrefix is the name prefix shared by all zram block devices.
const DevicePrefix = "zram"

// Device is the name of one zram block device, e.g. "zram0"
type Device string

// CounterName identifies one per-device statistics file
type CounterName string

const (
	ComprDataSize CounterName = "compr_data_size"
	OrigDataSize  CounterName = "orig_data_size"
	MemUsedTotal  CounterName = "mem_used_total"
	DiskSize      CounterName = "disksize"
	NotifyFree    CounterName = "notify_free"
	Size          CounterName = "size"
	ZeroPages     CounterName = "zero_pages"
	NumReads      CounterName = "num_reads"
	NumWrites     CounterName = "num_writes"
)

var counters = []CounterName{
	ComprDataSize,
	OrigDataSize,
	MemUsedTotal,
	DiskSize,
	NotifyFree,
	Size,
	ZeroPages,
	NumReads,
	NumWrites,
}

// Counters returns every known counter name in a fixed order.
func Counters() []CounterName {
	out := make([]CounterName, len(counters))
	copy(out, counters)
	return out
}

// CounterParseError reports a counter file whose content is not a decimal integer.
type CounterParseError struct {
	Device  Device
	Counter CounterName
	Value   string
	Err     error
}

func (e *CounterParseError) Error() string {
	return fmt.Sprintf("zram: %s/%s: invalid counter value %q", e.Device, e.Counter, strings.TrimSpace(e.Value))
}

func (e *CounterParseError) Unwrap() error {
	return e.Err
}

// Reader interface for zram device statistics
type Reader interface {
	ListDevices() ([]Device, error)
	ReadCounter(device Device, name CounterName) (uint64, error)
	SumCounter(name CounterName) (uint64, error)
}

// NewReader creates a new zram reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

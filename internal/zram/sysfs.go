package zram

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// statColumn locates a counter inside one of the aggregated stat files that
// replaced the single-value files in newer kernels.
type statColumn struct {
	file  string
	index int
}

// Kernels since 4.11 dropped the per-counter files in favour of mm_stat, io_stat
// and the generic block stat file. Columns are documented in
// Documentation/admin-guide/blockdev/zram.rst.
var statColumns = map[CounterName]statColumn{
	OrigDataSize:  {file: "mm_stat", index: 0},
	ComprDataSize: {file: "mm_stat", index: 1},
	MemUsedTotal:  {file: "mm_stat", index: 2},
	ZeroPages:     {file: "mm_stat", index: 5}, // same_pages
	NotifyFree:    {file: "io_stat", index: 3},
	NumReads:      {file: "stat", index: 0},
	NumWrites:     {file: "stat", index: 4},
}

// SysfsReader reads zram statistics from a sysfs block directory
type SysfsReader struct {
	blockPath string
}

// NewSysfsReader creates a reader rooted at blockPath, normally /sys/block
func NewSysfsReader(blockPath string) *SysfsReader {
	return &SysfsReader{blockPath: blockPath}
}

// ListDevices returns the zram devices present under the block directory.
// A missing directory means the platform has no zram support.
func (r *SysfsReader) ListDevices() ([]Device, error) {
	entries, err := os.ReadDir(r.blockPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", r.blockPath, err)
	}

	var devices []Device
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), DevicePrefix) {
			devices = append(devices, Device(entry.Name()))
		}
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i] < devices[j] })

	return devices, nil
}

// ReadCounter returns one counter of one device. A counter the device does not
// expose reads as 0.
func (r *SysfsReader) ReadCounter(device Device, name CounterName) (uint64, error) {
	data, err := os.ReadFile(filepath.Join(r.blockPath, string(device), string(name)))
	if err == nil {
		value, perr := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
		if perr != nil {
			return 0, &CounterParseError{Device: device, Counter: name, Value: string(data), Err: perr}
		}
		return value, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("failed to read %s/%s: %w", device, name, err)
	}

	column, ok := statColumns[name]
	if !ok {
		return 0, nil
	}
	return r.readColumn(device, name, column)
}

// readColumn reads a counter from a whitespace separated stat file
func (r *SysfsReader) readColumn(device Device, name CounterName, column statColumn) (uint64, error) {
	data, err := os.ReadFile(filepath.Join(r.blockPath, string(device), column.file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read %s/%s: %w", device, column.file, err)
	}

	fields := strings.Fields(string(data))
	if column.index >= len(fields) {
		return 0, nil
	}

	value, err := strconv.ParseUint(fields[column.index], 10, 64)
	if err != nil {
		return 0, &CounterParseError{Device: device, Counter: name, Value: fields[column.index], Err: err}
	}
	return value, nil
}

// SumCounter adds up one counter over every discovered device
func (r *SysfsReader) SumCounter(name CounterName) (uint64, error) {
	devices, err := r.ListDevices()
	if err != nil {
		return 0, err
	}
	return SumDevices(r, devices, name)
}

// SumDevices adds up one counter over the given devices. It lets callers that
// already listed the devices keep a single listing per read cycle.
func SumDevices(r Reader, devices []Device, name CounterName) (uint64, error) {
	var total uint64
	for _, device := range devices {
		value, err := r.ReadCounter(device, name)
		if err != nil {
			return 0, err
		}
		total += value
	}
	return total, nil
}

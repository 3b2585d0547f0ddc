package usage

import (
	"time"

	"github.com/CristiGvl/picoZramMon/internal/zram"
)

// Snapshot is the complete set of values read in one refresh cycle. It is
// never modified after construction.
type Snapshot struct {
	counters map[zram.CounterName]uint64
	devices  int
	swapUsed uint64
	takenAt  time.Time
}

// NewSnapshot builds a snapshot from already summed counters. Counters missing
// from the map read as 0.
func NewSnapshot(counters map[zram.CounterName]uint64, devices int, swapUsed uint64, takenAt time.Time) Snapshot {
	own := make(map[zram.CounterName]uint64, len(counters))
	for name, value := range counters {
		own[name] = value
	}
	return Snapshot{
		counters: own,
		devices:  devices,
		swapUsed: swapUsed,
		takenAt:  takenAt,
	}
}

// Counter returns the summed value of one counter
func (s Snapshot) Counter(name zram.CounterName) uint64 {
	return s.counters[name]
}

// Counters returns a copy of every summed counter, including zero ones
func (s Snapshot) Counters() map[zram.CounterName]uint64 {
	out := make(map[zram.CounterName]uint64, len(zram.Counters()))
	for _, name := range zram.Counters() {
		out[name] = s.counters[name]
	}
	return out
}

// DeviceCount returns the number of zram devices found in this cycle
func (s Snapshot) DeviceCount() int {
	return s.devices
}

// SwapUsed returns the system swap usage in bytes
func (s Snapshot) SwapUsed() uint64 {
	return s.swapUsed
}

// TakenAt returns when the snapshot was read
func (s Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// CompressedSize returns the compressed size of the stored data in bytes
func (s Snapshot) CompressedSize() uint64 {
	return s.Counter(zram.ComprDataSize)
}

// OriginalSize returns the uncompressed size of the stored data in bytes
func (s Snapshot) OriginalSize() uint64 {
	return s.Counter(zram.OrigDataSize)
}

// MemUsedTotal returns the memory allocated by zram, including overhead, in bytes
func (s Snapshot) MemUsedTotal() uint64 {
	return s.Counter(zram.MemUsedTotal)
}

// DiskSize returns the configured size of all devices in bytes
func (s Snapshot) DiskSize() uint64 {
	return s.Counter(zram.DiskSize)
}

// NotifyFreeCount returns the number of swap slot free notifications
func (s Snapshot) NotifyFreeCount() uint64 {
	return s.Counter(zram.NotifyFree)
}

// ZeroPageCount returns the number of pages stored without allocation
func (s Snapshot) ZeroPageCount() uint64 {
	return s.Counter(zram.ZeroPages)
}

// ReadCount returns the number of completed reads
func (s Snapshot) ReadCount() uint64 {
	return s.Counter(zram.NumReads)
}

// WriteCount returns the number of completed writes
func (s Snapshot) WriteCount() uint64 {
	return s.Counter(zram.NumWrites)
}

// CompressionRatio is the fraction of the original data saved by compression.
// It is unavailable until some data has been written.
func (s Snapshot) CompressionRatio() (float64, bool) {
	orig := s.OriginalSize()
	if orig == 0 {
		return 0, false
	}
	return 1 - float64(s.CompressedSize())/float64(orig), true
}

// ZramUtilization is the fraction of swap usage not accounted for by zram's
// original data size. It is unavailable while no swap is in use.
func (s Snapshot) ZramUtilization() (float64, bool) {
	if s.swapUsed == 0 {
		return 0, false
	}
	return 1 - float64(s.OriginalSize())/float64(s.swapUsed), true
}

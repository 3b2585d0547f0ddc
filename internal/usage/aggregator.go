package usage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CristiGvl/picoZramMon/internal/memory"
	"github.com/CristiGvl/picoZramMon/internal/zram"
)

// ErrSwapUsageUnavailable is returned when the swap usage source fails.
var ErrSwapUsageUnavailable = errors.New("swap usage unavailable")

// Aggregator sums zram counters over all devices and pairs them with the
// current swap usage.
type Aggregator struct {
	devices zram.Reader
	swap    memory.Reader
	now     func() time.Time
}

// NewAggregator creates an aggregator reading devices and swap from the given sources
func NewAggregator(devices zram.Reader, swap memory.Reader) *Aggregator {
	return &Aggregator{
		devices: devices,
		swap:    swap,
		now:     time.Now,
	}
}

// Snapshot performs one read cycle. On error no partial snapshot is returned.
func (a *Aggregator) Snapshot(ctx context.Context) (Snapshot, error) {
	devices, err := a.devices.ListDevices()
	if err != nil {
		return Snapshot{}, err
	}

	counters := make(map[zram.CounterName]uint64, len(zram.Counters()))
	for _, name := range zram.Counters() {
		total, err := zram.SumDevices(a.devices, devices, name)
		if err != nil {
			return Snapshot{}, err
		}
		counters[name] = total
	}

	swap, err := a.swap.GetInfo(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrSwapUsageUnavailable, err)
	}

	return Snapshot{
		counters: counters,
		devices:  len(devices),
		swapUsed: swap.Used,
		takenAt:  a.now(),
	}, nil
}

// RenderAll reads one snapshot and evaluates the default catalogue against it
func (a *Aggregator) RenderAll(ctx context.Context) ([]Line, error) {
	snap, err := a.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return RenderAll(snap), nil
}

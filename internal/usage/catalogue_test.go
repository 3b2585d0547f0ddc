package usage

import (
	"reflect"
	"testing"
	"time"

	"github.com/CristiGvl/picoZramMon/internal/zram"
)

var wantLabels = []string{
	"Compression Ratio",
	"ZRAM Utilization",
	"Devices",
	"Swap Used",
	"Compressed Size",
	"Original Size",
	"Memory Used",
	"Disk Size",
	"Zero Pages",
	"Notify Free",
	"Reads",
	"Writes",
}

func labelsOf(lines []Line) []string {
	labels := make([]string, len(lines))
	for i, line := range lines {
		labels[i] = line.Label
	}
	return labels
}

func TestCatalogue_LabelsAreStable(t *testing.T) {
	snapshots := []Snapshot{
		{},
		NewSnapshot(nil, 0, 0, time.Time{}),
		NewSnapshot(map[zram.CounterName]uint64{
			zram.ComprDataSize: 1073741824,
			zram.OrigDataSize:  4294967296,
			zram.NumReads:      123456789,
		}, 4, 8589934592, time.Now()),
	}

	catalogue := NewCatalogue()
	if got := catalogue.Labels(); !reflect.DeepEqual(got, wantLabels) {
		t.Fatalf("Labels() = %v; want %v", got, wantLabels)
	}
	for i, snap := range snapshots {
		if got := labelsOf(RenderAll(snap)); !reflect.DeepEqual(got, wantLabels) {
			t.Errorf("snapshot %d: RenderAll labels = %v; want %v", i, got, wantLabels)
		}
	}
}

func TestRenderAll_Values(t *testing.T) {
	snap := NewSnapshot(map[zram.CounterName]uint64{
		zram.ComprDataSize: 300,
		zram.OrigDataSize:  600,
		zram.MemUsedTotal:  2048,
		zram.DiskSize:      4294967296,
		zram.NotifyFree:    12,
		zram.ZeroPages:     4321,
		zram.NumReads:      1500000,
		zram.NumWrites:     999,
	}, 2, 3145728, time.Now())

	expected := []Line{
		{ID: "compression_ratio", Label: "Compression Ratio", Value: "50.00%"},
		{ID: "zram_utilization", Label: "ZRAM Utilization", Value: "99.98%"},
		{ID: "devices", Label: "Devices", Value: "2"},
		{ID: "swap_used", Label: "Swap Used", Value: "3.0MB"},
		{ID: "compressed_size", Label: "Compressed Size", Value: "300.0bytes"},
		{ID: "original_size", Label: "Original Size", Value: "600.0bytes"},
		{ID: "mem_used_total", Label: "Memory Used", Value: "2.0KB"},
		{ID: "disk_size", Label: "Disk Size", Value: "4.0GB"},
		{ID: "zero_pages", Label: "Zero Pages", Value: "4,321"},
		{ID: "notify_free", Label: "Notify Free", Value: "12"},
		{ID: "reads", Label: "Reads", Value: "1,500,000"},
		{ID: "writes", Label: "Writes", Value: "999"},
	}

	if got := RenderAll(snap); !reflect.DeepEqual(got, expected) {
		t.Errorf("RenderAll() =\n%v\nwant\n%v", got, expected)
	}
}

func TestRenderAll_LargeCounts(t *testing.T) {
	snap := NewSnapshot(map[zram.CounterName]uint64{
		zram.NumReads:  9007199254740993,
		zram.NumWrites: 9223372036854775808,
	}, 1, 0, time.Time{})

	byID := map[string]string{}
	for _, line := range RenderAll(snap) {
		byID[line.ID] = line.Value
	}
	if got := byID["reads"]; got != "9,007,199,254,740,993" {
		t.Errorf("reads = %s; want 9,007,199,254,740,993", got)
	}
	if got := byID["writes"]; got != "9,223,372,036,854,775,808" {
		t.Errorf("writes = %s; want 9,223,372,036,854,775,808", got)
	}
}

func TestZramUtilization(t *testing.T) {
	tests := []struct {
		orig     uint64
		swap     uint64
		ratio    float64
		expected bool
	}{
		{orig: 500, swap: 1000, ratio: 0.5, expected: true},
		{orig: 1000, swap: 1000, ratio: 0, expected: true},
		{orig: 0, swap: 1000, ratio: 1, expected: true},
		{orig: 100, swap: 0, ratio: 0, expected: false},
	}

	for _, test := range tests {
		snap := NewSnapshot(map[zram.CounterName]uint64{zram.OrigDataSize: test.orig}, 1, test.swap, time.Time{})
		ratio, ok := snap.ZramUtilization()
		if ok != test.expected || ratio != test.ratio {
			t.Errorf("ZramUtilization(orig=%d, swap=%d) = %v, %v; expected %v, %v",
				test.orig, test.swap, ratio, ok, test.ratio, test.expected)
		}
	}
}

func TestCompressionRatio_ZeroOriginal(t *testing.T) {
	snap := NewSnapshot(map[zram.CounterName]uint64{zram.ComprDataSize: 10}, 1, 10, time.Time{})
	if _, ok := snap.CompressionRatio(); ok {
		t.Errorf("CompressionRatio() available with orig_data_size = 0")
	}
	if got := Label(snap); got != Unavailable {
		t.Errorf("Label() = %s; want %s", got, Unavailable)
	}
}

func TestNewSnapshot_CopiesCounters(t *testing.T) {
	counters := map[zram.CounterName]uint64{zram.DiskSize: 1}
	snap := NewSnapshot(counters, 1, 0, time.Time{})
	counters[zram.DiskSize] = 2
	if snap.DiskSize() != 1 {
		t.Errorf("snapshot changed after caller mutated its map")
	}
	snap.Counters()[zram.DiskSize] = 3
	if snap.DiskSize() != 1 {
		t.Errorf("snapshot changed after mutating Counters() result")
	}
}

package usage

import "fmt"

// Line is one rendered metric, ready to display
type Line struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Metric is one catalogue entry. Each metric reads a typed value from the
// snapshot and formats it with the formatter matching that type.
type Metric struct {
	ID     string
	Label  string
	render func(Snapshot) string
}

// Render evaluates the metric against a snapshot
func (m Metric) Render(s Snapshot) Line {
	return Line{ID: m.ID, Label: m.Label, Value: m.render(s)}
}

// Catalogue is the fixed, ordered list of displayed metrics
type Catalogue []Metric

// NewCatalogue builds the metric list. Positions never change, so a display
// can map rows to metrics by index.
func NewCatalogue() Catalogue {
	return Catalogue{
		ratioMetric("compression_ratio", "Compression Ratio", Snapshot.CompressionRatio),
		ratioMetric("zram_utilization", "ZRAM Utilization", Snapshot.ZramUtilization),
		countMetric("devices", "Devices", func(s Snapshot) uint64 { return uint64(s.DeviceCount()) }),
		bytesMetric("swap_used", "Swap Used", Snapshot.SwapUsed),
		bytesMetric("compressed_size", "Compressed Size", Snapshot.CompressedSize),
		bytesMetric("original_size", "Original Size", Snapshot.OriginalSize),
		bytesMetric("mem_used_total", "Memory Used", Snapshot.MemUsedTotal),
		bytesMetric("disk_size", "Disk Size", Snapshot.DiskSize),
		countMetric("zero_pages", "Zero Pages", Snapshot.ZeroPageCount),
		countMetric("notify_free", "Notify Free", Snapshot.NotifyFreeCount),
		countMetric("reads", "Reads", Snapshot.ReadCount),
		countMetric("writes", "Writes", Snapshot.WriteCount),
	}
}

func ratioMetric(id, label string, value func(Snapshot) (float64, bool)) Metric {
	return Metric{ID: id, Label: label, render: func(s Snapshot) string {
		return FormatRatio(value(s))
	}}
}

func bytesMetric(id, label string, value func(Snapshot) uint64) Metric {
	return Metric{ID: id, Label: label, render: func(s Snapshot) string {
		return FormatBytes(float64(value(s)))
	}}
}

func countMetric(id, label string, value func(Snapshot) uint64) Metric {
	return Metric{ID: id, Label: label, render: func(s Snapshot) string {
		return FormatCounter(value(s))
	}}
}

// Labels returns the metric labels in display order
func (c Catalogue) Labels() []string {
	labels := make([]string, len(c))
	for i, m := range c {
		labels[i] = m.Label
	}
	return labels
}

// Evaluate renders every metric against the same snapshot
func (c Catalogue) Evaluate(s Snapshot) []Line {
	lines := make([]Line, len(c))
	for i, m := range c {
		lines[i] = m.Render(s)
	}
	return lines
}

var defaultCatalogue = NewCatalogue()

// RenderAll evaluates the default catalogue
func RenderAll(s Snapshot) []Line {
	return defaultCatalogue.Evaluate(s)
}

// Label is the short text shown next to the indicator icon
func Label(s Snapshot) string {
	return FormatRatio(s.CompressionRatio())
}

// Summary is a one-line description of compression, e.g.
// "ZRAM: 50.00%, 300.0bytes/600.0bytes"
func Summary(s Snapshot) string {
	return fmt.Sprintf("ZRAM: %s, %s/%s",
		Label(s),
		FormatBytes(float64(s.CompressedSize())),
		FormatBytes(float64(s.OriginalSize())))
}

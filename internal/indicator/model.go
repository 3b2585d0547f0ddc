package indicator

import (
	"context"
	"time"

	"github.com/CristiGvl/picoZramMon/internal/usage"
)

// RefreshInterval is the delay between the end of one read cycle and the start
// of the next.
const RefreshInterval = time.Second

// Source produces one snapshot per read cycle
type Source interface {
	Snapshot(ctx context.Context) (usage.Snapshot, error)
}

type row struct {
	label string
	value string
}

// Model is the status indicator: a short label plus one row per metric.
// Rows are created once from the catalogue and only their values change.
type Model struct {
	ctx       context.Context
	source    Source
	catalogue usage.Catalogue
	interval  time.Duration

	label   string
	summary string
	rows    []row
	updated time.Time
	err     error
}

type tickMsg time.Time

type cycleMsg struct {
	snapshot usage.Snapshot
	err      error
}

// New creates an indicator reading from source. ctx is passed to every read cycle.
func New(ctx context.Context, source Source) *Model {
	catalogue := usage.NewCatalogue()
	rows := make([]row, len(catalogue))
	for i, label := range catalogue.Labels() {
		rows[i] = row{label: label, value: "-"}
	}

	return &Model{
		ctx:       ctx,
		source:    source,
		catalogue: catalogue,
		interval:  RefreshInterval,
		label:     "-",
		rows:      rows,
	}
}

// Label returns the text currently shown next to the icon
func (m *Model) Label() string {
	return m.label
}

// Err returns the error of the most recent failed cycle, if the last cycle failed
func (m *Model) Err() error {
	return m.err
}

// apply copies a fresh snapshot into the existing rows by position
func (m *Model) apply(snap usage.Snapshot) {
	m.label = usage.Label(snap)
	m.summary = usage.Summary(snap)
	for i, line := range m.catalogue.Evaluate(snap) {
		m.rows[i].value = line.Value
	}
	m.updated = snap.TakenAt()
}

package api

import (
	"context"
	"time"

	"github.com/CristiGvl/picoZramMon/internal/usage"
	"github.com/CristiGvl/picoZramMon/internal/zram"
	"github.com/gofiber/fiber/v2"
)

// zramResponse is the JSON form of one snapshot
type zramResponse struct {
	Devices  int                         `json:"devices"`
	SwapUsed uint64                      `json:"swap_used_bytes"`
	Counters map[zram.CounterName]uint64 `json:"counters"`
	Label    string                      `json:"label"`
	Metrics  []usage.Line                `json:"metrics"`
	TakenAt  time.Time                   `json:"taken_at"`
}

// snapshot runs one read cycle for a request
func (s *Server) snapshot() (usage.Snapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.source.Snapshot(ctx)
}

// Zram endpoint
func (s *Server) getZram(c *fiber.Ctx) error {
	snap, err := s.snapshot()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(zramResponse{
		Devices:  snap.DeviceCount(),
		SwapUsed: snap.SwapUsed(),
		Counters: snap.Counters(),
		Label:    usage.Label(snap),
		Metrics:  s.catalogue.Evaluate(snap),
		TakenAt:  snap.TakenAt(),
	})
}

// Rendered metrics endpoint
func (s *Server) getMetrics(c *fiber.Ctx) error {
	snap, err := s.snapshot()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(s.catalogue.Evaluate(snap))
}

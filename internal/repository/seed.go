package repository

import (
	"context"
	"time"

	"losmecanics_booking/internal/model"
)

func notes(s string) *string { return &s }

// SeedFixtures returns the demo appointments loaded on startup. Their ids
// and statuses are fixed so the dashboards have something to show before
// anyone books.
func SeedFixtures() []model.Appointment {
	return []model.Appointment{
		{
			ID:        "1",
			UserID:    "user1",
			UserName:  "John Doe",
			UserEmail: "john@example.com",
			UserPhone: "(555) 123-4567",
			Service:   "Engine Repair",
			Date:      "2025-09-15",
			Time:      "10:00",
			Status:    model.StatusConfirmed,
			Notes:     notes("Check engine light issue"),
			CreatedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			UserID:    "user2",
			UserName:  "Jane Smith",
			UserEmail: "jane@example.com",
			UserPhone: "(555) 987-6543",
			Service:   "Brake Service",
			Date:      "2025-09-16",
			Time:      "14:00",
			Status:    model.StatusPending,
			Notes:     notes("Brake pads replacement needed"),
			CreatedAt: time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Seed inserts fixtures verbatim, keeping their ids, statuses and
// timestamps. Fixtures whose id is already present are skipped.
func (r *memoryAppointmentRepository) Seed(_ context.Context, fixtures []model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range fixtures {
		apt := fixtures[i]
		if _, ok := r.byID[apt.ID]; ok {
			continue
		}
		r.byID[apt.ID] = &apt
		r.order = append(r.order, apt.ID)
	}
	return nil
}

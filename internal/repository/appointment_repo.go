package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"losmecanics_booking/internal/model"

	"github.com/google/uuid"
)

// AppointmentRepository defines operations for appointment data.
// The shipped implementation is in-memory (the collection lives for the
// process lifetime, no persistence); the contract mirrors a SQL-backed
// repository so one could be swapped in: not-found is (nil, nil), every
// method takes a context.
type AppointmentRepository interface {
	Create(ctx context.Context, draft model.CreateAppointmentRequest, userID string) (*model.Appointment, error)
	FindByID(ctx context.Context, id string) (*model.Appointment, error)
	FindByUser(ctx context.Context, userID string) ([]model.Appointment, error)
	FindAll(ctx context.Context, filters model.AppointmentFilters) ([]model.Appointment, error)
	Update(ctx context.Context, id string, patch model.UpdateAppointmentRequest) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context, fixtures []model.Appointment) error
}

type memoryAppointmentRepository struct {
	mu    sync.RWMutex
	byID  map[string]*model.Appointment
	order []string // insertion order; listings are never re-sorted
}

// NewMemoryAppointmentRepository creates an empty in-memory AppointmentRepository
func NewMemoryAppointmentRepository() AppointmentRepository {
	return &memoryAppointmentRepository{
		byID: make(map[string]*model.Appointment),
	}
}

// Create assigns a fresh id, stamps created_at, forces status to pending
// and appends the appointment to the collection. It never fails: the store
// is permissive and accepts drafts as-is, validation belongs to the caller.
func (r *memoryAppointmentRepository) Create(_ context.Context, draft model.CreateAppointmentRequest, userID string) (*model.Appointment, error) {
	apt := &model.Appointment{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  draft.UserName,
		UserEmail: draft.UserEmail,
		UserPhone: draft.UserPhone,
		Service:   draft.Service,
		Date:      draft.Date,
		Time:      draft.Time,
		Status:    model.StatusPending,
		Notes:     draft.Notes,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[apt.ID] = apt
	r.order = append(r.order, apt.ID)

	out := *apt
	return &out, nil
}

// FindByID retrieves an appointment by its ID, (nil, nil) when absent
func (r *memoryAppointmentRepository) FindByID(_ context.Context, id string) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apt, ok := r.byID[id]
	if !ok {
		return nil, nil // Not found
	}
	out := *apt
	return &out, nil
}

// FindByUser retrieves the appointments owned by userID, in insertion order
func (r *memoryAppointmentRepository) FindByUser(_ context.Context, userID string) ([]model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Appointment
	for _, id := range r.order {
		if apt := r.byID[id]; apt.UserID == userID {
			out = append(out, *apt)
		}
	}
	return out, nil
}

// FindAll retrieves every appointment, optionally narrowed by a free-text
// search over customer name/email/service and an exact status match.
// Insertion order is preserved.
func (r *memoryAppointmentRepository) FindAll(_ context.Context, filters model.AppointmentFilters) ([]model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Appointment
	for _, id := range r.order {
		apt := r.byID[id]
		if !matchesFilters(apt, filters) {
			continue
		}
		out = append(out, *apt)
	}
	return out, nil
}

// Update merges the provided patch fields into the matching record.
// Fields absent from the patch are untouched; id, user_id and created_at
// are not patchable. (nil, nil) when the id is unknown.
func (r *memoryAppointmentRepository) Update(_ context.Context, id string, patch model.UpdateAppointmentRequest) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	apt, ok := r.byID[id]
	if !ok {
		return nil, nil // Not found
	}

	if patch.Service != nil {
		apt.Service = *patch.Service
	}
	if patch.Date != nil {
		apt.Date = *patch.Date
	}
	if patch.Time != nil {
		apt.Time = *patch.Time
	}
	if patch.Status != nil {
		apt.Status = *patch.Status
	}
	if patch.Notes != nil { // handles setting to ""
		apt.Notes = patch.Notes
	}

	out := *apt
	return &out, nil
}

// Delete removes the record with the matching id. Deleting an absent id is
// a no-op, so the operation is idempotent.
func (r *memoryAppointmentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func matchesFilters(apt *model.Appointment, filters model.AppointmentFilters) bool {
	if filters.Status != nil && *filters.Status != "" && apt.Status != *filters.Status {
		return false
	}
	if filters.Search != nil && *filters.Search != "" {
		if !containsFold(apt.UserName, *filters.Search) &&
			!containsFold(apt.UserEmail, *filters.Search) &&
			!containsFold(apt.Service, *filters.Search) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

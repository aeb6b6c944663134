package service

import (
	"context"
	"errors"
	"fmt"

	"losmecanics_booking/internal/model"
	"losmecanics_booking/internal/repository"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrForbidden           = errors.New("forbidden: session does not have permission for this action")
	ErrSessionRequired     = errors.New("a session is required to book an appointment")
)

// AppointmentService defines the appointment lifecycle operations. Every
// operation takes the caller's session and enforces ownership and role
// here rather than trusting the caller: a user-role session can only see
// and mutate its own appointments, an admin session the full collection.
type AppointmentService interface {
	Book(ctx context.Context, session *model.Session, draft model.CreateAppointmentRequest) (*model.Appointment, error)
	Get(ctx context.Context, session *model.Session, id string) (*model.Appointment, error)
	List(ctx context.Context, session *model.Session, filters model.AppointmentFilters) ([]model.Appointment, error)
	Upcoming(ctx context.Context, session *model.Session) ([]model.Appointment, error)
	History(ctx context.Context, session *model.Session) ([]model.Appointment, error)
	Update(ctx context.Context, session *model.Session, id string, patch model.UpdateAppointmentRequest) (*model.Appointment, error)
	Delete(ctx context.Context, session *model.Session, id string) error
	Stats(ctx context.Context, session *model.Session) (*model.AppointmentStats, error)
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

// Book creates a pending appointment owned by the session
func (s *appointmentService) Book(ctx context.Context, session *model.Session, draft model.CreateAppointmentRequest) (*model.Appointment, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}

	apt, err := s.repo.Create(ctx, draft, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment in repo: %w", err)
	}
	return apt, nil
}

func (s *appointmentService) Get(ctx context.Context, session *model.Session, id string) (*model.Appointment, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}

	apt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment by ID: %w", err)
	}
	if apt == nil {
		return nil, ErrAppointmentNotFound
	}
	if !session.IsAdmin() && apt.UserID != session.ID {
		return nil, ErrForbidden
	}
	return apt, nil
}

// List returns the appointments visible to the session, in insertion
// order. Admins see the whole collection, narrowed by the filters; users
// see their own appointments and only the status filter applies.
func (s *appointmentService) List(ctx context.Context, session *model.Session, filters model.AppointmentFilters) ([]model.Appointment, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}

	if session.IsAdmin() {
		apts, err := s.repo.FindAll(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("failed to list appointments: %w", err)
		}
		return apts, nil
	}

	apts, err := s.repo.FindByUser(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user appointments: %w", err)
	}
	if filters.Status != nil && *filters.Status != "" {
		filtered := apts[:0]
		for _, apt := range apts {
			if apt.Status == *filters.Status {
				filtered = append(filtered, apt)
			}
		}
		apts = filtered
	}
	return apts, nil
}

// Upcoming is the slice of List whose status is neither completed nor
// cancelled. Recomputed on every call, never materialized.
func (s *appointmentService) Upcoming(ctx context.Context, session *model.Session) ([]model.Appointment, error) {
	return s.listSplit(ctx, session, true)
}

// History is the complement of Upcoming.
func (s *appointmentService) History(ctx context.Context, session *model.Session) ([]model.Appointment, error) {
	return s.listSplit(ctx, session, false)
}

func (s *appointmentService) listSplit(ctx context.Context, session *model.Session, upcoming bool) ([]model.Appointment, error) {
	apts, err := s.List(ctx, session, model.AppointmentFilters{})
	if err != nil {
		return nil, err
	}
	var out []model.Appointment
	for _, apt := range apts {
		open := apt.Status != model.StatusCompleted && apt.Status != model.StatusCancelled
		if open == upcoming {
			out = append(out, apt)
		}
	}
	return out, nil
}

// Update merges the patch into the appointment. Admins may patch any
// appointment, owners only their own; id, user_id and created_at are
// never touched.
func (s *appointmentService) Update(ctx context.Context, session *model.Session, id string, patch model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment for update: %w", err)
	}
	if existing == nil {
		return nil, ErrAppointmentNotFound
	}
	if !session.IsAdmin() && existing.UserID != session.ID {
		return nil, ErrForbidden
	}

	apt, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment in repo: %w", err)
	}
	if apt == nil {
		return nil, ErrAppointmentNotFound
	}
	return apt, nil
}

// Delete removes the appointment after the same ownership check as Update
func (s *appointmentService) Delete(ctx context.Context, session *model.Session, id string) error {
	if session == nil {
		return ErrSessionRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find appointment for deletion: %w", err)
	}
	if existing == nil {
		return ErrAppointmentNotFound
	}
	if !session.IsAdmin() && existing.UserID != session.ID {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment in repo: %w", err)
	}
	return nil
}

// Stats computes the admin dashboard counters over the full collection
func (s *appointmentService) Stats(ctx context.Context, session *model.Session) (*model.AppointmentStats, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}
	if !session.IsAdmin() {
		return nil, ErrForbidden
	}

	apts, err := s.repo.FindAll(ctx, model.AppointmentFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for stats: %w", err)
	}

	stats := &model.AppointmentStats{Total: len(apts)}
	for _, apt := range apts {
		switch apt.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusConfirmed:
			stats.Confirmed++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

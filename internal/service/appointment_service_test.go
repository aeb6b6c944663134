package service

import (
	"context"
	"testing"

	"losmecanics_booking/internal/model"
	"losmecanics_booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminSession = &model.Session{ID: "admin", Email: testAdminEmail, Name: "admin", Role: model.RoleAdmin}
	janeSession  = &model.Session{ID: "jane-1", Email: "jane@example.com", Name: "Jane", Role: model.RoleUser}
	bobSession   = &model.Session{ID: "bob-1", Email: "bob@example.com", Name: "Bob", Role: model.RoleUser}
)

func newAppointmentService(t *testing.T, seed bool) AppointmentService {
	t.Helper()
	repo := repository.NewMemoryAppointmentRepository()
	if seed {
		require.NoError(t, repo.Seed(context.Background(), repository.SeedFixtures()))
	}
	return NewAppointmentService(repo)
}

func janeDraft() model.CreateAppointmentRequest {
	return model.CreateAppointmentRequest{
		UserName:  "Jane",
		UserEmail: "jane@example.com",
		UserPhone: "(555) 111-2222",
		Service:   "Brake Service",
		Date:      "2025-09-20",
		Time:      "10:00",
	}
}

func TestBook_RequiresSession(t *testing.T) {
	s := newAppointmentService(t, false)

	_, err := s.Book(context.Background(), nil, janeDraft())
	assert.ErrorIs(t, err, ErrSessionRequired)

	// Nothing was created.
	all, err := s.List(context.Background(), adminSession, model.AppointmentFilters{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBook_BindsAppointmentToSession(t *testing.T) {
	s := newAppointmentService(t, false)
	ctx := context.Background()

	apt, err := s.Book(ctx, janeSession, janeDraft())
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, apt.Status)
	assert.Equal(t, janeSession.ID, apt.UserID)

	mine, err := s.List(ctx, janeSession, model.AppointmentFilters{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, apt.ID, mine[0].ID)

	// Not visible to another user.
	theirs, err := s.List(ctx, bobSession, model.AppointmentFilters{})
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestList_AdminSeesFullCollection(t *testing.T) {
	s := newAppointmentService(t, true)
	ctx := context.Background()

	_, err := s.Book(ctx, janeSession, janeDraft())
	require.NoError(t, err)

	all, err := s.List(ctx, adminSession, model.AppointmentFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Users only ever see their own rows, even with filters set.
	search := "john"
	mine, err := s.List(ctx, janeSession, model.AppointmentFilters{Search: &search})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, janeSession.ID, mine[0].UserID)
}

func TestList_AdminFilters(t *testing.T) {
	s := newAppointmentService(t, true)
	ctx := context.Background()

	status := model.StatusConfirmed
	confirmed, err := s.List(ctx, adminSession, model.AppointmentFilters{Status: &status})
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, "John Doe", confirmed[0].UserName)
}

func TestUpcomingAndHistorySplit(t *testing.T) {
	s := newAppointmentService(t, false)
	ctx := context.Background()

	open, err := s.Book(ctx, janeSession, janeDraft())
	require.NoError(t, err)
	done, err := s.Book(ctx, janeSession, janeDraft())
	require.NoError(t, err)

	status := model.StatusCompleted
	_, err = s.Update(ctx, janeSession, done.ID, model.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)

	upcoming, err := s.Upcoming(ctx, janeSession)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, open.ID, upcoming[0].ID)

	history, err := s.History(ctx, janeSession)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, done.ID, history[0].ID)

	// The split is recomputed per query: cancelling moves the record over.
	status = model.StatusCancelled
	_, err = s.Update(ctx, janeSession, open.ID, model.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)

	upcoming, err = s.Upcoming(ctx, janeSession)
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	s := newAppointmentService(t, false)
	ctx := context.Background()

	apt, err := s.Book(ctx, janeSession, janeDraft())
	require.NoError(t, err)

	status := model.StatusConfirmed
	patch := model.UpdateAppointmentRequest{Status: &status}

	_, err = s.Update(ctx, bobSession, apt.ID, patch)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := s.Update(ctx, adminSession, apt.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, updated.Status)
	assert.Equal(t, apt.UserID, updated.UserID)
	assert.Equal(t, apt.Service, updated.Service)
}

func TestUpdate_UnknownIDSurfacesNotFound(t *testing.T) {
	s := newAppointmentService(t, false)

	status := model.StatusConfirmed
	_, err := s.Update(context.Background(), adminSession, "missing", model.UpdateAppointmentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	s := newAppointmentService(t, false)
	ctx := context.Background()

	apt, err := s.Book(ctx, janeSession, janeDraft())
	require.NoError(t, err)

	assert.ErrorIs(t, s.Delete(ctx, bobSession, apt.ID), ErrForbidden)
	assert.NoError(t, s.Delete(ctx, janeSession, apt.ID))
	assert.ErrorIs(t, s.Delete(ctx, janeSession, apt.ID), ErrAppointmentNotFound)
}

func TestCancelThenDeleteExcludesFromListing(t *testing.T) {
	s := newAppointmentService(t, true)
	ctx := context.Background()

	status := model.StatusCancelled
	_, err := s.Update(ctx, adminSession, "1", model.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, adminSession, "1"))

	all, err := s.List(ctx, adminSession, model.AppointmentFilters{})
	require.NoError(t, err)
	for _, apt := range all {
		assert.NotEqual(t, "1", apt.ID)
	}
}

func TestStats_AdminOnly(t *testing.T) {
	s := newAppointmentService(t, true)
	ctx := context.Background()

	_, err := s.Stats(ctx, janeSession)
	assert.ErrorIs(t, err, ErrForbidden)

	stats, err := s.Stats(ctx, adminSession)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 0, stats.Completed)
}

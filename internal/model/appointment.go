package model

import "time"

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// AppointmentStatuses lists every valid status, in lifecycle order.
var AppointmentStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	for _, known := range AppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment represents a scheduled service request for the shop
type Appointment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserPhone string    `json:"user_phone"`
	Service   string    `json:"service"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // e.g. "10:00"
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"` // Pointer for optional field
	CreatedAt time.Time `json:"created_at"`
}

// CreateAppointmentRequest is the draft used to book a new appointment.
// ID, status and created_at are assigned by the store.
type CreateAppointmentRequest struct {
	UserName  string  `json:"user_name" binding:"required"`
	UserEmail string  `json:"user_email" binding:"required,email"`
	UserPhone string  `json:"user_phone" binding:"required"`
	Service   string  `json:"service" binding:"required"`
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string  `json:"time" binding:"required"`
	Notes     *string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Service *string `json:"service,omitempty"` // Pointers to allow partial updates
	Date    *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Time    *string `json:"time,omitempty"`
	Status  *string `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed in-progress completed cancelled"`
	Notes   *string `json:"notes,omitempty"`
}

// AppointmentFilters contains the admin list narrowing parameters:
// free-text search over customer name/email/service, exact status match.
type AppointmentFilters struct {
	Search *string
	Status *string
}

// AppointmentStats holds the admin dashboard counters.
type AppointmentStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Confirmed  int `json:"confirmed"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

package view

import (
	"losmecanics_booking/internal/model"
)

// Resolution is the outcome of routing one navigation request.
type Resolution struct {
	Page       string `json:"page"`
	Redirected bool   `json:"redirected"`
}

// Resolve maps a requested page name plus the current session to the view
// that actually gets rendered. Pure function, one synchronous evaluation,
// highest-priority rule wins:
//
//  1. user-dashboard without a session forces the login page.
//  2. admin-dashboard without an admin session falls through to home.
//  3. login/signup with a live session redirects to that session's
//     dashboard instead of showing the auth page again.
//  4. Anything else renders verbatim; unknown page names default to home.
func Resolve(page string, session *model.Session) Resolution {
	switch page {
	case model.PageUserDashboard:
		if session == nil {
			return Resolution{Page: model.PageLogin, Redirected: true}
		}
	case model.PageAdminDashboard:
		if !session.IsAdmin() {
			return Resolution{Page: model.PageHome, Redirected: true}
		}
	case model.PageLogin, model.PageSignup:
		if session != nil {
			return Resolution{Page: DashboardFor(session), Redirected: true}
		}
	}

	if !model.KnownPage(page) {
		return Resolution{Page: model.PageHome}
	}
	return Resolution{Page: page}
}

// DashboardFor returns the landing page for a freshly resolved session.
func DashboardFor(session *model.Session) string {
	if session.IsAdmin() {
		return model.PageAdminDashboard
	}
	return model.PageUserDashboard
}

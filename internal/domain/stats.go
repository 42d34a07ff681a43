package domain

import "context"

// EventStats summarizes event counts for the dashboard.
type EventStats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Workshops int `json:"workshops"`
	Seminars  int `json:"seminars"`
}

// RegistrationStats summarizes workshop registration counts.
type RegistrationStats struct {
	Total           int `json:"total"`
	Confirmed       int `json:"confirmed"`
	PendingPayments int `json:"pending_payments"`
}

// ApplicationStats summarizes membership application counts.
type ApplicationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
}

// DashboardStats is the aggregate view shown on the admin dashboard.
// swagger:model DashboardStats
type DashboardStats struct {
	Events        EventStats        `json:"events"`
	Registrations RegistrationStats `json:"registrations"`
	Applications  ApplicationStats  `json:"applications"`
}

// StatsRepository computes dashboard aggregates directly from storage.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

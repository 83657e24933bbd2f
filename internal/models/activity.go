package models

// Activity is one line of the dashboard's recent-activity feed.
type Activity struct {
	ID          string `json:"id,omitempty"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Time        string `json:"time"`
	User        string `json:"user,omitempty"`
}

// Alerts holds the four dashboard alert figures. Stored under
// "dashboard_alerts" it acts as an override: non-zero fields win.
type Alerts struct {
	Inspections int     `json:"keuringen"`
	Documents   int     `json:"documenten"`
	Payments    float64 `json:"betalingen"`
	Stock       int     `json:"stock"`
}

package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/autohandel/backoffice/internal/models"
)

// MinQueryLength is the shortest query that produces results.
const MinQueryLength = 3

// ResultType names the collection a result came from.
type ResultType string

const (
	TypeVehicle  ResultType = "wagen"
	TypeStaff    ResultType = "medewerker"
	TypeReminder ResultType = "melding"
)

// Result is one hit of the global search.
type Result struct {
	Type     ResultType `json:"type"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Details  string     `json:"details"`
	ID       int64      `json:"id"`
}

// Snapshot is the data a search runs over.
type Snapshot struct {
	Vehicles  []models.Vehicle
	Staff     []models.StaffMember
	Reminders []models.Reminder
}

// Search scans the snapshot for query. Vehicles come first, then staff,
// then reminders, each in snapshot order. Queries shorter than
// MinQueryLength return nothing.
func Search(query string, snap Snapshot) []Result {
	results := []Result{}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return results
	}
	q := strings.ToLower(query)

	for _, v := range snap.Vehicles {
		if matchVehicle(q, v) {
			results = append(results, Result{
				Type:     TypeVehicle,
				Title:    v.DisplayName(),
				Subtitle: "Stocknummer: " + v.StockNumber,
				Details:  fmt.Sprintf("Keuringsstatus: %s, Status: %s", v.Inspection, v.Status),
				ID: v.ID,
			})
		}
	}
	for _, s := range snap.Staff {
		if contains(q, s.Name, s.Email, s.Role) {
			results = append(results, Result{
				Type:     TypeStaff,
				Title:    s.Name,
				Subtitle: s.Role,
				Details:  fmt.Sprintf("Email: %s, Status: %s", s.Email, s.Status),
				ID: s.ID,
			})
		}
	}
	for _, r := range snap.Reminders {
		if contains(q, r.Title, r.Description, r.RelatedItem) ||
			(strings.Contains(q, "openstaande") && r.Type == models.ReminderPayment) {
			results = append(results, Result{
				Type:  TypeReminder,
				Title: r.Title,
				Subtitle: fmt.Sprintf("Type: %s, Prioriteit: %s", r.Type, r.Priority),
				Details: r.Description,
				ID:      r.ID,
			})
		}
	}
	return results
}

func matchVehicle(q string, v models.Vehicle) bool {
	if contains(q, v.Brand, v.Model, v.ChassisNumber, v.LicensePlate, v.StockNumber) {
		return true
	}
	switch {
	case strings.Contains(q, "keuring") && v.Inspection == models.InspectionRed:
		return true
	case strings.Contains(q, "oldtimer") && v.Oldtimer:
		return true
	case strings.Contains(q, "documenten") && v.PaperworkMissing():
		return true
	}
	return false
}

// contains reports whether any field holds q; q is already lower-cased.
func contains(q string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

package aggregate

import (
	"time"

	"github.com/autohandel/backoffice/internal/models"
)

// DocumentStats are the counters above the document list.
type DocumentStats struct {
	Total        int `json:"totaal"`
	Missing      int `json:"ontbrekend"`
	Expired      int `json:"verlopen"`
	OCRProcessed int `json:"ocrVerwerkt"`
}

// Documents counts documents by state. A document is expired when its
// vervaldatum lies before today; missing or unparseable dates never expire.
func Documents(docs []models.Document, today time.Time) DocumentStats {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	s := DocumentStats{Total: len(docs)}
	for _, doc := range docs {
		if doc.Status == models.DocumentMissing {
			s.Missing++
		}
		if doc.OCRProcessed {
			s.OCRProcessed++
		}
		if doc.ExpiryDate == "" {
			continue
		}
		if due, err := time.Parse("2006-01-02", doc.ExpiryDate); err == nil && due.Before(start) {
			s.Expired++
		}
	}
	return s
}

// UrgentReminders returns the open high-priority reminders in stored order.
func UrgentReminders(rs []models.Reminder) []models.Reminder {
	out := []models.Reminder{}
	for _, r := range rs {
		if r.Priority == models.PriorityHigh && r.Status == models.ReminderOpen {
			out = append(out, r)
		}
	}
	return out
}

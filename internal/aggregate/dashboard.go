package aggregate

import "github.com/autohandel/backoffice/internal/models"

// DashboardAlerts derives the four dashboard figures from the current
// collections. Any non-zero field of override replaces the derived value.
func DashboardAlerts(vehicles []models.Vehicle, documents []models.Document, override models.Alerts) models.Alerts {
	a := models.Alerts{Payments: OutstandingTotal(SeedOutstandingPayments())}
	for _, v := range vehicles {
		if v.Inspection == models.InspectionRed {
			a.Inspections++
		}
		if v.Status == models.VehicleStock {
			a.Stock++
		}
	}
	for _, d := range documents {
		if d.Status != models.DocumentComplete {
			a.Documents++
		}
	}

	if override.Inspections != 0 {
		a.Inspections = override.Inspections
	}
	if override.Documents != 0 {
		a.Documents = override.Documents
	}
	if override.Payments != 0 {
		a.Payments = override.Payments
	}
	if override.Stock != 0 {
		a.Stock = override.Stock
	}
	return a
}

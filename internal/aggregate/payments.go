package aggregate

import (
	"math"

	"github.com/autohandel/backoffice/internal/models"
)

// SeedOutstandingPayments is placeholder data: no invoice or payment entity
// exists yet, so the outstanding figures cannot be derived from records.
// Replace with a real invoices collection before relying on these numbers.
func SeedOutstandingPayments() []models.OutstandingPayment {
	return []models.OutstandingPayment{
		{Customer: "Johnson B.V.", InvoiceNumber: "F-2024-0123", Amount: 8500, DueDate: "2024-12-01", DaysOverdue: 25},
		{Customer: "Smith Auto", InvoiceNumber: "F-2024-0118", Amount: 4250, DueDate: "2024-12-10", DaysOverdue: 16},
		{Customer: "Van Der Berg", InvoiceNumber: "F-2024-0130", Amount: 3000, DueDate: "2024-12-20", DaysOverdue: 6},
	}
}

// OutstandingTotal sums the open amounts.
func OutstandingTotal(ps []models.OutstandingPayment) float64 {
	var total float64
	for _, p := range ps {
		total += p.Amount
	}
	return total
}

// SeedSummonses is placeholder data for the same reason as
// SeedOutstandingPayments: no legal-case entity exists yet.
func SeedSummonses() []models.Summons {
	return []models.Summons{
		{Date: "2024-11-15", Customer: "Probleem Klant B.V.", Amount: 12000, Status: "in_behandeling", LegalCosts: 850},
	}
}

// AverageDaysOverdue is the mean of DaysOverdue rounded to whole days, or 0
// for an empty list.
func AverageDaysOverdue(ps []models.OutstandingPayment) int {
	if len(ps) == 0 {
		return 0
	}
	var sum int
	for _, p := range ps {
		sum += p.DaysOverdue
	}
	return int(math.Round(float64(sum) / float64(len(ps))))
}

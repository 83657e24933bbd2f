package backoffice

import (
	"context"
	"encoding/json"

	"github.com/autohandel/backoffice/internal/models"
)

// Built-in records shown while a collection is empty. Each call returns a
// fresh copy so callers may mutate the result.

func SeedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:            1,
			Brand:         "BMW",
			Model:         "320d",
			StockNumber:   "BMW001",
			ChassisNumber: "WBAVA31070PT09876",
			LicensePlate:  "1-ABC-123",
			Year:          2020,
			Color:         "Zwart",
			Mileage:       45000,
			Fuel:          "Diesel",
			Transmission:  "Automaat",
			Power:         140,
			Status:        models.VehicleStock,
			Inspection:    models.InspectionGreen,
			PurchasePrice: 25000,
			SalePrice:     32000,
			Documents: models.VehicleDocuments{
				Purchase: models.DocumentSet{Complete: true},
				Sale:     models.DocumentSet{Complete: false},
				Warranty: models.DocumentSet{Complete: true},
			},
		},
		{
			ID:            2,
			Brand:         "Mercedes",
			Model:         "A180",
			StockNumber:   "MER001",
			ChassisNumber: "WDD1760291J123456",
			LicensePlate:  "2-DEF-456",
			Year:          2019,
			Color:         "Wit",
			Mileage:       32000,
			Fuel:          "Benzine",
			Transmission:  "Handgeschakeld",
			Power:         100,
			Status:        models.VehicleConsignment,
			Inspection:    models.InspectionRed,
			PurchasePrice: 22000,
			SalePrice:     28000,
		},
	}
}

func SeedStaff() []models.StaffMember {
	return []models.StaffMember{
		{
			ID:        1,
			Name:      "Jan Janssen",
			Email:     "jan@autohandel.nl",
			Role:      "Verkoper",
			StartDate: "2023-01-15",
			Status:    models.StaffActive,
			Documents: []models.StaffPaper{
				{Type: PaperContract, Status: models.PaperComplete},
				{Type: PaperCV, Status: models.PaperComplete},
				{Type: PaperID, Status: models.PaperMissing},
			},
		},
		{
			ID:        2,
			Name:      "Marie Pieters",
			Email:     "marie@autohandel.nl",
			Role:      "Administratie",
			StartDate: "2023-03-01",
			Status:    models.StaffLeave,
			Documents: []models.StaffPaper{
				{Type: PaperContract, Status: models.PaperComplete},
				{Type: PaperCV, Status: models.PaperComplete},
				{Type: PaperID, Status: models.PaperComplete},
			},
		},
	}
}

func SeedDocuments() []models.Document {
	return []models.Document{
		{
			ID:           1,
			Name:         "BMW 320d Inschrijvingsbewijs deel 1",
			Type:         "inschrijving",
			Category:     models.CategoryVehicle,
			RelatedTo:    "BMW 320d (BMW001)",
			UploadDate:   "2024-12-15",
			Status:       models.DocumentComplete,
			OCRProcessed: true,
			FileSize:     "2.4 MB",
			FileType:     "PDF",
		},
		{
			ID:           2,
			Name:         "Jan Janssen Contract",
			Type:         "contract",
			Category:     models.CategoryStaff,
			RelatedTo:    "Jan Janssen",
			UploadDate:   "2024-01-15",
			ExpiryDate:   "2025-01-15",
			Status:       models.DocumentComplete,
			OCRProcessed: true,
			FileSize:     "1.8 MB",
			FileType:     "PDF",
		},
		{
			ID:        3,
			Name:      "Mercedes A180 Aankoopbordel",
			Type:      "contract",
			Category:  models.CategoryVehicle,
			RelatedTo: "Mercedes A180 (MER001)",
			Status:    models.DocumentMissing,
		},
	}
}

func SeedReminders() []models.Reminder {
	return []models.Reminder{
		{
			ID:          1,
			Title:       "Keuring vervalt binnenkort - BMW 320d",
			Description: "De keuring van de BMW 320d (stocknummer BMW001) verloopt over 5 dagen.",
			Type:        models.ReminderInspection,
			Priority:    models.PriorityHigh,
			Status:      models.ReminderOpen,
			DueDate:     "2024-12-31",
			AssignedTo:  "Jan Janssen",
			RelatedItem: "BMW 320d (BMW001)",
		},
		{
			ID:          2,
			Title:       "Documenten ontbreken - Mercedes A180",
			Description: "Aankoopbordel en marge-attest nog niet ontvangen.",
			Type:        models.ReminderDocuments,
			Priority:    models.PriorityNormal,
			Status:      models.ReminderOpen,
			DueDate:     "2025-01-05",
			AssignedTo:  "Marie Pieters",
			RelatedItem: "Mercedes A180 (MER001)",
		},
		{
			ID:          3,
			Title:       "Openstaande betaling Johnson B.V.",
			Description: "Factuur F-2024-0123 voor €8.500 is 25 dagen over tijd.",
			Type:        models.ReminderPayment,
			Priority:    models.PriorityHigh,
			Status:      models.ReminderOpen,
			DueDate:     "2024-12-01",
			AssignedTo:  "Administratie",
			RelatedItem: "Factuur F-2024-0123",
		},
	}
}

func SeedActivities() []models.Activity {
	return []models.Activity{
		{Icon: IconVehicle, Description: "Nieuwe wagen toegevoegd: BMW 320d", Time: "2 uur geleden"},
		{Icon: IconDocument, Description: "Document geüpload voor Mercedes A180", Time: "4 uur geleden"},
		{Icon: IconCost, Description: "Betaling ontvangen van klant Johnson", Time: "1 dag geleden"},
	}
}

// PersistSeeds writes the demo data into every collection that was never
// written, or into all of them when overwrite is set. It returns the keys
// it wrote.
func (s *Service) PersistSeeds(ctx context.Context, overwrite bool) []string {
	var written []string
	absent := func(key string) bool {
		var raw []json.RawMessage
		return !s.store.GetJSON(ctx, key, &raw)
	}
	if overwrite || absent(KeyVehicles) {
		s.Vehicles.SaveAll(ctx, SeedVehicles())
		written = append(written, KeyVehicles)
	}
	if overwrite || absent(KeyStaff) {
		s.Staff.SaveAll(ctx, SeedStaff())
		written = append(written, KeyStaff)
	}
	if overwrite || absent(KeyDocuments) {
		s.Documents.SaveAll(ctx, SeedDocuments())
		written = append(written, KeyDocuments)
	}
	if overwrite || absent(KeyReminders) {
		s.Reminders.SaveAll(ctx, SeedReminders())
		written = append(written, KeyReminders)
	}
	if overwrite || absent(KeyActivities) {
		s.store.Set(ctx, KeyActivities, SeedActivities())
		written = append(written, KeyActivities)
	}
	if len(written) > 0 {
		s.log.Infof("seeded %v", written)
	}
	return written
}

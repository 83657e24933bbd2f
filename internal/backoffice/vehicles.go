package backoffice

import (
	"context"
	"strings"

	"github.com/autohandel/backoffice/internal/aggregate"
	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/internal/sessions"
)

// VehicleChecklist is the paperwork checklist of the vehicle form. A group
// is complete only when every box of that group is ticked.
type VehicleChecklist struct {
	PurchaseDeed      bool `json:"doc_aankoopbordel" form:"doc_aankoopbordel"`
	MarginCertificate bool `json:"doc_marge_attest" form:"doc_marge_attest"`
	PurchaseInvoice   bool `json:"doc_factuur" form:"doc_factuur"`
	RegistrationOne   bool `json:"doc_inschrijving_1" form:"doc_inschrijving_1"`
	RegistrationTwo   bool `json:"doc_inschrijving_2" form:"doc_inschrijving_2"`
	COC               bool `json:"doc_coc" form:"doc_coc"`
	SaleContract      bool `json:"doc_verkoopcontract" form:"doc_verkoopcontract"`
	Transfer          bool `json:"doc_overdracht" form:"doc_overdracht"`
	Payment           bool `json:"doc_betaling" form:"doc_betaling"`
	WarrantyContract  bool `json:"doc_garantie_contract" form:"doc_garantie_contract"`
	WarrantyTerms     bool `json:"doc_garantie_voorwaarden" form:"doc_garantie_voorwaarden"`
	ServiceBook       bool `json:"doc_onderhoudsboek" form:"doc_onderhoudsboek"`
}

// Documents folds the checklist into the per-group completeness flags.
func (c VehicleChecklist) Documents() models.VehicleDocuments {
	return models.VehicleDocuments{
		Purchase: models.DocumentSet{Complete: c.PurchaseDeed && c.MarginCertificate && c.PurchaseInvoice &&
			c.RegistrationOne && c.RegistrationTwo && c.COC},
		Sale:     models.DocumentSet{Complete: c.SaleContract && c.Transfer && c.Payment},
		Warranty: models.DocumentSet{Complete: c.WarrantyContract && c.WarrantyTerms && c.ServiceBook},
	}
}

// VehicleForm is the create/edit input of a vehicle.
type VehicleForm struct {
	Brand             string  `json:"merk" form:"merk"`
	Model             string  `json:"model" form:"model"`
	StockNumber       string  `json:"stocknummer" form:"stocknummer"`
	ChassisNumber     string  `json:"chassisnummer" form:"chassisnummer"`
	LicensePlate      string  `json:"nummerplaat" form:"nummerplaat"`
	FirstRegistration string  `json:"eerste_inschrijving" form:"eerste_inschrijving"`
	Year              int     `json:"bouwjaar" form:"bouwjaar"`
	Color             string  `json:"kleur" form:"kleur"`
	Mileage           int     `json:"kmstand" form:"kmstand"`
	Fuel              string  `json:"brandstof" form:"brandstof"`
	Transmission      string  `json:"transmissie" form:"transmissie"`
	Power             int     `json:"vermogen" form:"vermogen"`
	Status            string  `json:"status" form:"status"`
	Inspection        string  `json:"keuringsstatus" form:"keuringsstatus"`
	Work              string  `json:"werkzaamheden" form:"werkzaamheden"`
	PurchasePrice     float64 `json:"inkoopprijs" form:"inkoopprijs"`
	SalePrice         float64 `json:"verkoopprijs" form:"verkoopprijs"`
	Oldtimer          bool    `json:"oldtimer" form:"oldtimer"`
	LightCommercial   bool    `json:"lichte_vracht" form:"lichte_vracht"`
	VehicleChecklist
}

func (f VehicleForm) validate() error {
	return requireFields("merk", f.Brand, "model", f.Model,
		"stocknummer", f.StockNumber, "chassisnummer", f.ChassisNumber)
}

// apply overwrites every form-backed field of v. The id is left alone.
func (f VehicleForm) apply(v *models.Vehicle) {
	v.Brand = strings.TrimSpace(f.Brand)
	v.Model = strings.TrimSpace(f.Model)
	v.StockNumber = strings.TrimSpace(f.StockNumber)
	v.ChassisNumber = strings.TrimSpace(f.ChassisNumber)
	v.LicensePlate = f.LicensePlate
	v.FirstRegistration = f.FirstRegistration
	v.Year = f.Year
	v.Color = f.Color
	v.Mileage = f.Mileage
	v.Fuel = f.Fuel
	v.Transmission = f.Transmission
	v.Power = f.Power
	v.Status = models.VehicleStatus(f.Status)
	if v.Status == "" {
		v.Status = models.VehicleStock
	}
	v.Inspection = models.InspectionStatus(f.Inspection)
	if v.Inspection == "" {
		v.Inspection = models.InspectionRed
	}
	v.Work = f.Work
	v.PurchasePrice = f.PurchasePrice
	v.SalePrice = f.SalePrice
	v.Oldtimer = f.Oldtimer
	v.LightCommercial = f.LightCommercial
	v.Documents = f.VehicleChecklist.Documents()
}

// Vehicle types accepted by VehicleFilter.Type.
const (
	VehicleTypeOldtimer   = "oldtimer"
	VehicleTypeCommercial = "lichte_vracht"
	VehicleTypePassenger  = "personenwagen"
)

// VehicleFilter narrows the vehicle list. Empty fields match everything.
type VehicleFilter struct {
	Status     string `form:"status"`
	Inspection string `form:"keuring"`
	Type       string `form:"type"`
	Query      string `form:"q"`
}

func (f VehicleFilter) match(v models.Vehicle) bool {
	if f.Status != "" && string(v.Status) != f.Status {
		return false
	}
	if f.Inspection != "" && string(v.Inspection) != f.Inspection {
		return false
	}
	switch f.Type {
	case VehicleTypeOldtimer:
		if !v.Oldtimer {
			return false
		}
	case VehicleTypeCommercial:
		if !v.LightCommercial {
			return false
		}
	case VehicleTypePassenger:
		if v.Oldtimer || v.LightCommercial {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		text := strings.ToLower(strings.Join([]string{
			v.Brand, v.Model, v.StockNumber, v.ChassisNumber, v.LicensePlate, v.Color,
		}, " "))
		if !strings.Contains(text, q) {
			return false
		}
	}
	return true
}

// VehicleView is a vehicle with its derived profit figures.
type VehicleView struct {
	models.Vehicle
	Profit    float64 `json:"winst"`
	MarginPct float64 `json:"marge"`
}

func vehicleView(v models.Vehicle) VehicleView {
	profit, pct := aggregate.Margin(v)
	return VehicleView{Vehicle: v, Profit: profit, MarginPct: pct}
}

// ListVehicles returns the vehicles matching filter in stored order.
func (s *Service) ListVehicles(ctx context.Context, filter VehicleFilter) []VehicleView {
	out := []VehicleView{}
	for _, v := range s.Vehicles.LoadAll(ctx) {
		if filter.match(v) {
			out = append(out, vehicleView(v))
		}
	}
	return out
}

// GetVehicle returns one vehicle with its derived figures.
func (s *Service) GetVehicle(ctx context.Context, id int64) (VehicleView, error) {
	v, err := s.Vehicles.Get(ctx, id)
	if err != nil {
		return VehicleView{}, err
	}
	return vehicleView(v), nil
}

// CreateVehicle validates form and appends a new vehicle.
func (s *Service) CreateVehicle(ctx context.Context, sess *sessions.Session, form VehicleForm) (models.Vehicle, error) {
	if err := form.validate(); err != nil {
		return models.Vehicle{}, err
	}
	var v models.Vehicle
	form.apply(&v)
	v = s.Vehicles.Create(ctx, v)
	s.log.Infof("vehicle %d created by %s", v.ID, actor(sess))
	s.RecordActivity(ctx, sess, IconVehicle, "Nieuwe wagen toegevoegd: "+v.DisplayName())
	return v, nil
}

// UpdateVehicle overwrites the vehicle with id from form. An unknown id is
// not an error: nothing is written and ok is false.
func (s *Service) UpdateVehicle(ctx context.Context, id int64, form VehicleForm) (models.Vehicle, bool, error) {
	if err := form.validate(); err != nil {
		return models.Vehicle{}, false, err
	}
	v, ok := s.Vehicles.Update(ctx, id, form.apply)
	return v, ok, nil
}

// DeleteVehicle removes the vehicle with id. Unknown ids are ignored.
func (s *Service) DeleteVehicle(ctx context.Context, sess *sessions.Session, id int64) bool {
	v, err := s.Vehicles.Get(ctx, id)
	if err != nil {
		return false
	}
	if !s.Vehicles.Remove(ctx, id) {
		return false
	}
	s.RecordActivity(ctx, sess, IconVehicle, "Wagen verwijderd: "+v.DisplayName())
	return true
}

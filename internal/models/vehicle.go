package models

// VehicleStatus is the stock position of a vehicle.
type VehicleStatus string

const (
	VehicleStock       VehicleStatus = "stock"
	VehicleConsignment VehicleStatus = "consignatie"
	VehicleSold        VehicleStatus = "verkocht"
	VehicleMaintenance VehicleStatus = "onderhoud"
)

// InspectionStatus is the traffic-light inspection state (keuringsstatus).
type InspectionStatus string

const (
	InspectionGreen  InspectionStatus = "groen"
	InspectionOrange InspectionStatus = "oranje"
	InspectionRed    InspectionStatus = "rood"
	InspectionBlack  InspectionStatus = "zwart"
)

// DocumentSet marks whether one group of vehicle paperwork is complete.
type DocumentSet struct {
	Complete bool `json:"compleet"`
}

// VehicleDocuments groups the purchase, sale and warranty paperwork.
type VehicleDocuments struct {
	Purchase DocumentSet `json:"aankoop"`
	Sale     DocumentSet `json:"verkoop"`
	Warranty DocumentSet `json:"garantie"`
}

// Vehicle (wagen) is one inventory record. Profit is derived, never stored.
type Vehicle struct {
	ID                int64            `json:"id"`
	Brand             string           `json:"merk"`
	Model             string           `json:"model"`
	StockNumber       string           `json:"stocknummer"`
	ChassisNumber     string           `json:"chassisnummer"`
	LicensePlate      string           `json:"nummerplaat"`
	FirstRegistration string           `json:"eerste_inschrijving,omitempty"`
	Year              int              `json:"bouwjaar,omitempty"`
	Color             string           `json:"kleur,omitempty"`
	Mileage           int              `json:"kmstand,omitempty"`
	Fuel              string           `json:"brandstof,omitempty"`
	Transmission      string           `json:"transmissie,omitempty"`
	Power             int              `json:"vermogen,omitempty"`
	Status            VehicleStatus    `json:"status"`
	Inspection        InspectionStatus `json:"keuringsstatus"`
	Work              string           `json:"werkzaamheden,omitempty"`
	PurchasePrice     float64          `json:"inkoopprijs"`
	SalePrice         float64          `json:"verkoopprijs"`
	Oldtimer          bool             `json:"oldtimer"`
	LightCommercial   bool             `json:"lichte_vracht"`
	Documents         VehicleDocuments `json:"documenten"`
}

func (v Vehicle) RecordID() int64        { return v.ID }
func (v *Vehicle) AssignID(id int64)     { v.ID = id }
func (v Vehicle) DisplayName() string    { return v.Brand + " " + v.Model }
func (v Vehicle) Profit() float64        { return v.SalePrice - v.PurchasePrice }
func (v Vehicle) PaperworkMissing() bool { return !v.Documents.Purchase.Complete || !v.Documents.Sale.Complete }

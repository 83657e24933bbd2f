package models

// DocumentCategory groups documents by what they belong to.
type DocumentCategory string

const (
	CategoryVehicle   DocumentCategory = "wagen"
	CategoryStaff     DocumentCategory = "personeel"
	CategoryFinancial DocumentCategory = "financieel"
	CategoryLegal     DocumentCategory = "juridisch"
)

// DocumentStatus is the completeness state of a document.
type DocumentStatus string

const (
	DocumentComplete DocumentStatus = "compleet"
	DocumentMissing  DocumentStatus = "ontbreekt"
	DocumentExpired  DocumentStatus = "verlopen"
)

// Document is metadata about an uploaded file. File bytes are never stored.
type Document struct {
	ID           int64            `json:"id"`
	Name         string           `json:"naam"`
	Type         string           `json:"type"`
	Category     DocumentCategory `json:"categorie"`
	RelatedTo    string           `json:"gerelateerd_aan"`
	UploadDate   string           `json:"upload_datum,omitempty"`
	ExpiryDate   string           `json:"vervaldatum,omitempty"`
	Status       DocumentStatus   `json:"status"`
	OCRProcessed bool             `json:"ocr_verwerkt"`
	FileName     string           `json:"bestandsnaam,omitempty"`
	FileSize     string           `json:"bestandsgrootte,omitempty"`
	FileType     string           `json:"bestandstype,omitempty"`
	UploadedBy   string           `json:"geupload_door,omitempty"`
}

func (d Document) RecordID() int64    { return d.ID }
func (d *Document) AssignID(id int64) { d.ID = id }

package models

// StaffStatus is the employment state of a staff member.
type StaffStatus string

const (
	StaffActive   StaffStatus = "actief"
	StaffLeave    StaffStatus = "verlof"
	StaffInactive StaffStatus = "inactief"
)

// PaperStatus is the state of one required HR document.
type PaperStatus string

const (
	PaperComplete PaperStatus = "compleet"
	PaperMissing  PaperStatus = "ontbreekt"
)

// StaffPaper is one entry of a staff member's document checklist.
type StaffPaper struct {
	Type   string      `json:"type"`
	Status PaperStatus `json:"status"`
}

// StaffMember (medewerker) is one personnel record.
type StaffMember struct {
	ID        int64        `json:"id"`
	Name      string       `json:"naam"`
	Email     string       `json:"email"`
	Phone     string       `json:"telefoon,omitempty"`
	Role      string       `json:"functie"`
	StartDate string       `json:"startdatum"`
	Address   string       `json:"adres,omitempty"`
	Status    StaffStatus  `json:"status"`
	Documents []StaffPaper `json:"documenten"`
}

func (s StaffMember) RecordID() int64    { return s.ID }
func (s *StaffMember) AssignID(id int64) { s.ID = id }

// Paper returns the status of the checklist entry with the given
// type, or PaperMissing when the entry is absent.
func (s StaffMember) Paper(typ string) PaperStatus {
	for _, p := range s.Documents {
		if p.Type == typ {
			return p.Status
		}
	}
	return PaperMissing
}

package backoffice

import (
	"context"
	"strings"

	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/internal/sessions"
)

// HR checklist entries, in display order.
const (
	PaperContract = "Contract"
	PaperCV       = "CV"
	PaperID       = "ID"
	PaperDiploma  = "Diploma"
)

// StaffForm is the create/edit input of a staff member.
type StaffForm struct {
	FirstName string `json:"voornaam" form:"voornaam"`
	LastName  string `json:"achternaam" form:"achternaam"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"telefoon" form:"telefoon"`
	Role      string `json:"functie" form:"functie"`
	StartDate string `json:"startdatum" form:"startdatum"`
	Address   string `json:"adres" form:"adres"`
	Status    string `json:"status" form:"status"`
	Contract  bool   `json:"doc_contract" form:"doc_contract"`
	CV        bool   `json:"doc_cv" form:"doc_cv"`
	Identity  bool   `json:"doc_identiteit" form:"doc_identiteit"`
	Diploma   bool   `json:"doc_diploma" form:"doc_diploma"`
}

func (f StaffForm) validate() error {
	return requireFields("voornaam", f.FirstName, "achternaam", f.LastName,
		"email", f.Email, "functie", f.Role, "startdatum", f.StartDate)
}

func paperStatus(done bool) models.PaperStatus {
	if done {
		return models.PaperComplete
	}
	return models.PaperMissing
}

// apply overwrites the form-backed fields of m. Status only changes when
// the form carries one.
func (f StaffForm) apply(m *models.StaffMember) {
	m.Name = strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName)
	m.Email = strings.TrimSpace(f.Email)
	m.Phone = f.Phone
	m.Role = f.Role
	m.StartDate = f.StartDate
	m.Address = f.Address
	if f.Status != "" {
		m.Status = models.StaffStatus(f.Status)
	}
	m.Documents = []models.StaffPaper{
		{Type: PaperContract, Status: paperStatus(f.Contract)},
		{Type: PaperCV, Status: paperStatus(f.CV)},
		{Type: PaperID, Status: paperStatus(f.Identity)},
		{Type: PaperDiploma, Status: paperStatus(f.Diploma)},
	}
}

// SplitName reverses the naam join for pre-filling an edit form: the first
// word is the first name, the rest the last name.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// EditForm returns the form that reproduces m when applied.
func EditForm(m models.StaffMember) StaffForm {
	first, last := SplitName(m.Name)
	return StaffForm{
		FirstName: first,
		LastName:  last,
		Email:     m.Email,
		Phone:     m.Phone,
		Role:      m.Role,
		StartDate: m.StartDate,
		Address:   m.Address,
		Status:    string(m.Status),
		Contract:  m.Paper(PaperContract) == models.PaperComplete,
		CV:        m.Paper(PaperCV) == models.PaperComplete,
		Identity:  m.Paper(PaperID) == models.PaperComplete,
		Diploma:   m.Paper(PaperDiploma) == models.PaperComplete,
	}
}

// ListStaff returns every staff member in stored order.
func (s *Service) ListStaff(ctx context.Context) []models.StaffMember {
	return s.Staff.LoadAll(ctx)
}

// CreateStaff validates form and appends an active staff member.
func (s *Service) CreateStaff(ctx context.Context, sess *sessions.Session, form StaffForm) (models.StaffMember, error) {
	if err := form.validate(); err != nil {
		return models.StaffMember{}, err
	}
	m := models.StaffMember{Status: models.StaffActive}
	form.Status = ""
	form.apply(&m)
	m = s.Staff.Create(ctx, m)
	s.log.Infof("staff member %d created by %s", m.ID, actor(sess))
	s.RecordActivity(ctx, sess, IconStaff, "Nieuw personeelslid toegevoegd: "+m.Name)
	return m, nil
}

// UpdateStaff overwrites the staff member with id from form. Unknown ids
// write nothing and report ok false.
func (s *Service) UpdateStaff(ctx context.Context, id int64, form StaffForm) (models.StaffMember, bool, error) {
	if err := form.validate(); err != nil {
		return models.StaffMember{}, false, err
	}
	m, ok := s.Staff.Update(ctx, id, form.apply)
	return m, ok, nil
}

// DeleteStaff removes the staff member with id. Unknown ids are ignored.
func (s *Service) DeleteStaff(ctx context.Context, sess *sessions.Session, id int64) bool {
	m, err := s.Staff.Get(ctx, id)
	if err != nil || !s.Staff.Remove(ctx, id) {
		return false
	}
	s.RecordActivity(ctx, sess, IconStaff, "Personeelslid verwijderd: "+m.Name)
	return true
}

package backoffice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/autohandel/backoffice/internal/aggregate"
	"github.com/autohandel/backoffice/internal/kv"
	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/internal/repository"
	"github.com/autohandel/backoffice/internal/search"
	"github.com/autohandel/backoffice/internal/sessions"
	"github.com/autohandel/backoffice/pkg/logger"
)

// Storage keys, one per collection.
const (
	KeyVehicles   = "wagens"
	KeyStaff      = "medewerkers"
	KeyDocuments  = "documenten"
	KeyReminders  = "meldingen"
	KeyCosts      = "kosten"
	KeyAlerts     = "dashboard_alerts"
	KeyActivities = "recent_activities"
)

// Notices shown to the user when a form is rejected.
const (
	NoticeRequiredFields = "Vul alle verplichte velden in"
	NoticeFileRequired   = "Selecteer een bestand om te uploaden"
)

// ValidationError is returned when a form misses required input. Nothing is
// written when an operation fails validation.
type ValidationError struct {
	Notice string
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Notice
	}
	return fmt.Sprintf("validation failed: missing %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is a form validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// requireFields checks name/value pairs and reports every empty value.
func requireFields(pairs ...string) error {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Notice: NoticeRequiredFields, Fields: missing}
	}
	return nil
}

// Service holds one repository per collection and implements the module
// operations on top of them.
type Service struct {
	Vehicles  *repository.Repository[models.Vehicle, *models.Vehicle]
	Staff     *repository.Repository[models.StaffMember, *models.StaffMember]
	Documents *repository.Repository[models.Document, *models.Document]
	Reminders *repository.Repository[models.Reminder, *models.Reminder]
	Costs     *repository.Ledger[models.Cost]

	store *kv.Store
	feed  sync.Mutex
	now   func() time.Time
	log   *logger.Component
}

// NewService wires the collections onto store. All repositories share the
// process-wide id generator.
func NewService(store *kv.Store) *Service {
	return &Service{
		Vehicles:  repository.New[models.Vehicle](store, KeyVehicles, SeedVehicles, nil),
		Staff:     repository.New[models.StaffMember](store, KeyStaff, SeedStaff, nil),
		Documents: repository.New[models.Document](store, KeyDocuments, SeedDocuments, nil),
		Reminders: repository.New[models.Reminder](store, KeyReminders, SeedReminders, nil),
		Costs:     repository.NewLedger[models.Cost](store, KeyCosts, nil),
		store:     store,
		now:       time.Now,
		log:       logger.Named("backoffice"),
	}
}

// actor is the username stamped on audit fields.
func actor(sess *sessions.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Username
}

func (s *Service) today() string     { return s.now().Format("2006-01-02") }
func (s *Service) timestamp() string { return s.now().UTC().Format(time.RFC3339) }

// Search runs the global search over the current collections.
func (s *Service) Search(ctx context.Context, query string) []search.Result {
	if utf8.RuneCountInString(query) < search.MinQueryLength {
		return []search.Result{}
	}
	return search.Search(query, search.Snapshot{
		Vehicles:  s.Vehicles.LoadAll(ctx),
		Staff:     s.Staff.LoadAll(ctx),
		Reminders: s.Reminders.LoadAll(ctx),
	})
}

// Finance builds the finance summary. period is echoed back only.
func (s *Service) Finance(ctx context.Context, period string) aggregate.FinanceSummary {
	return aggregate.Finance(s.Vehicles.LoadAll(ctx), s.Costs.LoadAll(ctx), period)
}

// CostForm is the input of a new cost entry.
type CostForm struct {
	Date        string   `json:"datum" form:"datum"`
	Description string   `json:"beschrijving" form:"beschrijving"`
	Category    string   `json:"categorie" form:"categorie"`
	Amount      *float64 `json:"bedrag" form:"bedrag"`
	Vehicle     string   `json:"wagen" form:"wagen"`
}

// AddCost appends a cost entry to the ledger.
func (s *Service) AddCost(ctx context.Context, sess *sessions.Session, form CostForm) (models.Cost, error) {
	amount := ""
	if form.Amount != nil {
		amount = "set"
	}
	if err := requireFields("datum", form.Date, "beschrijving", form.Description,
		"categorie", form.Category, "bedrag", amount); err != nil {
		return models.Cost{}, err
	}
	c := models.Cost{
		Date:        form.Date,
		Description: strings.TrimSpace(form.Description),
		Category:    form.Category,
		Amount:      *form.Amount,
		Vehicle:     form.Vehicle,
	}
	s.Costs.Append(ctx, c)
	s.RecordActivity(ctx, sess, IconCost, "Kost toegevoegd: "+c.Description)
	return c, nil
}

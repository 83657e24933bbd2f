package backoffice

import (
	"context"
	"strings"

	"github.com/autohandel/backoffice/internal/aggregate"
	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/internal/sessions"
)

// ReminderForm is the input of a new reminder.
type ReminderForm struct {
	Title       string `json:"titel" form:"titel"`
	Description string `json:"beschrijving" form:"beschrijving"`
	Type        string `json:"type" form:"type"`
	Priority    string `json:"prioriteit" form:"prioriteit"`
	DueDate     string `json:"vervaldatum" form:"vervaldatum"`
	AssignedTo  string `json:"toegewezen_aan" form:"toegewezen_aan"`
	RelatedItem string `json:"gerelateerd_item" form:"gerelateerd_item"`
}

// ReminderFilter narrows the reminder list. Empty fields match everything.
type ReminderFilter struct {
	Type     string `form:"type"`
	Priority string `form:"prioriteit"`
	Status   string `form:"status"`
}

func (f ReminderFilter) match(r models.Reminder) bool {
	return (f.Type == "" || string(r.Type) == f.Type) &&
		(f.Priority == "" || string(r.Priority) == f.Priority) &&
		(f.Status == "" || string(r.Status) == f.Status)
}

// ListReminders returns the reminders matching filter in stored order.
func (s *Service) ListReminders(ctx context.Context, filter ReminderFilter) []models.Reminder {
	out := []models.Reminder{}
	for _, r := range s.Reminders.LoadAll(ctx) {
		if filter.match(r) {
			out = append(out, r)
		}
	}
	return out
}

// UrgentReminders returns the open high-priority reminders, unaffected by
// any list filter.
func (s *Service) UrgentReminders(ctx context.Context) []models.Reminder {
	return aggregate.UrgentReminders(s.Reminders.LoadAll(ctx))
}

// CreateReminder validates form and appends an open reminder stamped with
// its creator.
func (s *Service) CreateReminder(ctx context.Context, sess *sessions.Session, form ReminderForm) (models.Reminder, error) {
	if err := requireFields("titel", form.Title, "type", form.Type,
		"prioriteit", form.Priority, "vervaldatum", form.DueDate); err != nil {
		return models.Reminder{}, err
	}
	r := s.Reminders.Create(ctx, models.Reminder{
		Title:       strings.TrimSpace(form.Title),
		Description: form.Description,
		Type:        models.ReminderType(form.Type),
		Priority:    models.Priority(form.Priority),
		Status:      models.ReminderOpen,
		DueDate:     form.DueDate,
		AssignedTo:  form.AssignedTo,
		RelatedItem: form.RelatedItem,
		CreatedBy:   actor(sess),
		CreatedAt:   s.timestamp(),
	})
	s.RecordActivity(ctx, sess, IconReminder, "Herinnering aangemaakt: "+r.Title)
	return r, nil
}

// CompleteReminder marks the reminder with id as done by the session user.
func (s *Service) CompleteReminder(ctx context.Context, sess *sessions.Session, id int64) (models.Reminder, bool) {
	return s.Reminders.Update(ctx, id, func(r *models.Reminder) {
		r.Status = models.ReminderDone
		r.CompletedBy = actor(sess)
		r.CompletedAt = s.timestamp()
	})
}

// MarkAllRead flags every open reminder as read and returns how many
// changed.
func (s *Service) MarkAllRead(ctx context.Context, sess *sessions.Session) int {
	at := s.timestamp()
	return s.Reminders.UpdateWhere(ctx,
		func(r models.Reminder) bool { return r.Status == models.ReminderOpen },
		func(r *models.Reminder) {
			r.Read = true
			r.ReadBy = actor(sess)
			r.ReadAt = at
		})
}

// DeleteReminder removes the reminder with id. Unknown ids are ignored.
func (s *Service) DeleteReminder(ctx context.Context, sess *sessions.Session, id int64) bool {
	r, err := s.Reminders.Get(ctx, id)
	if err != nil || !s.Reminders.Remove(ctx, id) {
		return false
	}
	s.RecordActivity(ctx, sess, IconReminder, "Herinnering verwijderd: "+r.Title)
	return true
}

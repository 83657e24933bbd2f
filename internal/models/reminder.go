package models

// ReminderType classifies a reminder (melding).
type ReminderType string

const (
	ReminderInspection  ReminderType = "keuring"
	ReminderDocuments   ReminderType = "documenten"
	ReminderPayment     ReminderType = "betaling"
	ReminderMaintenance ReminderType = "onderhoud"
	ReminderLeave       ReminderType = "verlof"
	ReminderGeneral     ReminderType = "algemeen"
)

// Priority of a reminder.
type Priority string

const (
	PriorityHigh   Priority = "hoog"
	PriorityNormal Priority = "normaal"
	PriorityLow    Priority = "laag"
)

// ReminderStatus is the lifecycle state of a reminder.
type ReminderStatus string

const (
	ReminderOpen      ReminderStatus = "open"
	ReminderDone      ReminderStatus = "voltooid"
	ReminderPostponed ReminderStatus = "uitgesteld"
)

// Reminder (melding) is a follow-up item with audit stamps.
type Reminder struct {
	ID          int64          `json:"id"`
	Title       string         `json:"titel"`
	Description string         `json:"beschrijving"`
	Type        ReminderType   `json:"type"`
	Priority    Priority       `json:"prioriteit"`
	Status      ReminderStatus `json:"status"`
	DueDate     string         `json:"vervaldatum"`
	AssignedTo  string         `json:"toegewezen_aan"`
	RelatedItem string         `json:"gerelateerd_item,omitempty"`
	CreatedBy   string         `json:"aangemaakt_door,omitempty"`
	CreatedAt   string         `json:"aangemaakt_op,omitempty"`
	CompletedBy string         `json:"voltooid_door,omitempty"`
	CompletedAt string         `json:"voltooid_op,omitempty"`
	Read        bool           `json:"gelezen,omitempty"`
	ReadBy      string         `json:"gelezen_door,omitempty"`
	ReadAt      string         `json:"gelezen_op,omitempty"`
}

func (r Reminder) RecordID() int64    { return r.ID }
func (r *Reminder) AssignID(id int64) { r.ID = id }

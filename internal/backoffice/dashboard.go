package backoffice

import (
	"context"

	"github.com/autohandel/backoffice/internal/aggregate"
	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/internal/sessions"
	"github.com/google/uuid"
)

// maxActivities caps the recent-activity feed.
const maxActivities = 20

// Activity icons.
const (
	IconVehicle  = "fa-car"
	IconStaff    = "fa-user"
	IconDocument = "fa-file-alt"
	IconReminder = "fa-bell"
	IconCost     = "fa-euro-sign"
)

// Dashboard is the view model of the dashboard module.
type Dashboard struct {
	Alerts     models.Alerts     `json:"alerts"`
	Activities []models.Activity `json:"recenteActiviteiten"`
}

// Dashboard computes the alerts and returns the activity feed.
func (s *Service) Dashboard(ctx context.Context) Dashboard {
	var override models.Alerts
	s.store.GetJSON(ctx, KeyAlerts, &override)
	return Dashboard{
		Alerts:     aggregate.DashboardAlerts(s.Vehicles.LoadAll(ctx), s.Documents.LoadAll(ctx), override),
		Activities: s.RecentActivities(ctx),
	}
}

// SetAlertOverrides stores figures that replace the derived alerts. Zero
// fields keep the derived value.
func (s *Service) SetAlertOverrides(ctx context.Context, a models.Alerts) {
	s.store.Set(ctx, KeyAlerts, a)
	s.log.Infof("dashboard alert overrides set: %+v", a)
}

// RecentActivities returns the feed, newest first, or the seed feed when
// nothing was recorded yet.
func (s *Service) RecentActivities(ctx context.Context) []models.Activity {
	var out []models.Activity
	if !s.store.GetJSON(ctx, KeyActivities, &out) {
		return SeedActivities()
	}
	return out
}

// RecordActivity prepends an entry to the feed and trims it to maxActivities.
func (s *Service) RecordActivity(ctx context.Context, sess *sessions.Session, icon, description string) models.Activity {
	a := models.Activity{
		ID:          uuid.NewString(),
		Icon:        icon,
		Description: description,
		Time:        s.timestamp(),
		User:        actor(sess),
	}

	s.feed.Lock()
	defer s.feed.Unlock()
	var feed []models.Activity
	s.store.GetJSON(ctx, KeyActivities, &feed)
	feed = append([]models.Activity{a}, feed...)
	if len(feed) > maxActivities {
		feed = feed[:maxActivities]
	}
	s.store.Set(ctx, KeyActivities, feed)
	return a
}

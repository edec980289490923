package services

import (
	"fmt"
	"slices"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/internal/config"
	"github.com/jakechorley/crewsync/pkg/core/model"
)

// ShiftSeriesStore defines the store operations needed for stamping a template onto an event
type ShiftSeriesStore interface {
	GetEvent(id string) (model.Event, bool)
	CreateShift(shift model.Shift) (model.Shift, error)
}

// CreateShiftSeries expands the template's recurrence rule from the given day and creates
// one open shift per occurrence, at most maxOccurrences of them. Occurrences earlier than
// from are skipped. The shift location falls back to the event's.
func CreateShiftSeries(
	store ShiftSeriesStore,
	logger *zap.Logger,
	eventID string,
	tmpl config.ShiftTemplate,
	from time.Time,
	maxOccurrences int,
) ([]model.Shift, error) {
	if maxOccurrences <= 0 {
		return nil, invalid("occurrence limit must be positive, got %d", maxOccurrences)
	}

	event, ok := store.GetEvent(eventID)
	if !ok {
		return nil, invalid("event %s does not exist", eventID)
	}

	occurrences, err := expandTemplate(tmpl, from, maxOccurrences)
	if err != nil {
		return nil, err
	}

	logger.Debug("Expanded shift template",
		zap.String("template", tmpl.Name),
		zap.String("rrule", tmpl.RRule),
		zap.Int("occurrences", len(occurrences)))

	location := tmpl.Location
	if location == "" {
		location = event.Location
	}

	created := make([]model.Shift, 0, len(occurrences))
	for _, start := range occurrences {
		shift, err := store.CreateShift(model.Shift{
			EventID:            event.ID,
			Title:              tmpl.Title,
			Description:        tmpl.Description,
			StartTime:          start,
			EndTime:            start.Add(tmpl.Duration()),
			RequiredVolunteers: tmpl.RequiredVolunteers,
			AssignedVolunteers: []string{},
			Skills:             slices.Clone(tmpl.Skills),
			Location:           location,
			Status:             model.ShiftOpen,
		})
		if err != nil {
			return created, fmt.Errorf("failed to create shift for %s: %w", start.Format(time.RFC3339), err)
		}
		created = append(created, shift)
	}

	logger.Info("Shift series created",
		zap.String("event_id", event.ID),
		zap.String("template", tmpl.Name),
		zap.Int("shift_count", len(created)))
	return created, nil
}

// expandTemplate anchors the rule at the template's start time on from's calendar day
func expandTemplate(tmpl config.ShiftTemplate, from time.Time, limit int) ([]time.Time, error) {
	clock, err := time.Parse("15:04", tmpl.StartTime)
	if err != nil {
		return nil, invalid("template %s start time %q must be HH:MM", tmpl.Name, tmpl.StartTime)
	}

	rule, err := rrule.StrToRRule(tmpl.RRule)
	if err != nil {
		return nil, invalid("template %s has an invalid rrule: %v", tmpl.Name, err)
	}

	y, m, d := from.Date()
	rule.DTStart(time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, from.Location()))

	var occurrences []time.Time
	next := rule.Iterator()
	for len(occurrences) < limit {
		t, ok := next()
		if !ok {
			break
		}
		if t.Before(from) {
			continue
		}
		occurrences = append(occurrences, t)
	}
	return occurrences, nil
}

package providers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ao561/cues-hackathon/models"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleCalendarProvider answers free/busy queries against Google Calendar
// using a service account. Token handling belongs to the Google client.
type GoogleCalendarProvider struct {
	svc *calendar.Service
}

// NewGoogleCalendarProvider builds a calendar provider from a service
// account credentials file.
func NewGoogleCalendarProvider(ctx context.Context, serviceAccountFile string) (*GoogleCalendarProvider, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(serviceAccountFile),
		option.WithScopes(calendar.CalendarReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleCalendarProvider{svc: svc}, nil
}

// FreeBusy returns the participant's free intervals inside the query window,
// ordered and non-overlapping.
func (p *GoogleCalendarProvider) FreeBusy(ctx context.Context, participant models.Participant, window models.TimeInterval) ([]models.TimeInterval, error) {
	if participant.CalendarID == "" {
		return nil, NewProviderError(models.FailureInvalidQuery,
			fmt.Errorf("participant %s has no calendar configured", participant.ID))
	}

	req := &calendar.FreeBusyRequest{
		TimeMin:  window.Start.UTC().Format(time.RFC3339),
		TimeMax:  window.End.UTC().Format(time.RFC3339),
		TimeZone: "UTC",
		Items:    []*calendar.FreeBusyRequestItem{{Id: participant.CalendarID}},
	}

	resp, err := p.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, classifyGoogleError(err)
	}

	cal, ok := resp.Calendars[participant.CalendarID]
	if !ok {
		return nil, NewProviderError(models.FailureInvalidQuery,
			fmt.Errorf("calendar %s missing from free/busy response", participant.CalendarID))
	}

	busy := make([]models.TimeInterval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			continue
		}
		busy = append(busy, models.TimeInterval{Start: start, End: end})
	}

	return FreeGaps(window, busy), nil
}

// FreeGaps converts a busy list into the ordered free intervals left inside
// the window. Busy blocks outside the window or with no duration carve
// nothing out, so the result never contains back-to-back fragments.
func FreeGaps(window models.TimeInterval, busy []models.TimeInterval) []models.TimeInterval {
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })

	free := []models.TimeInterval{}
	cursor := window.Start
	for _, b := range busy {
		blocked, ok := window.Intersect(b)
		if !ok {
			continue
		}
		if cursor.Before(blocked.Start) {
			free = append(free, models.TimeInterval{Start: cursor, End: blocked.Start})
		}
		if blocked.End.After(cursor) {
			cursor = blocked.End
		}
	}
	if cursor.Before(window.End) {
		free = append(free, models.TimeInterval{Start: cursor, End: window.End})
	}
	return free
}

// classifyGoogleError maps Google API client errors onto failure reasons.
func classifyGoogleError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return NewProviderError(reasonFromStatus(gerr.Code), err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewProviderError(models.FailureTimeout, err)
	}
	return NewProviderError(models.FailureUnavailable, err)
}

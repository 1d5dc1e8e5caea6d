// Package convert turns a parsed trip itinerary into canonical calendar
// events: it classifies raw plan items, resolves multi-day stay boundaries,
// matches ticketed special events against operating hours, and emits stable
// deterministic event records.
package convert

import (
	"errors"
	"fmt"
	"time"

	"tripcal/internal/dateextract"
	appLog "tripcal/internal/log"
	"tripcal/internal/model"
)

// DefaultParkTimezone is the fixed venue timezone. The feed carries naive
// local times; every park in the itinerary operates in this zone.
const DefaultParkTimezone = "America/New_York"

const (
	// Dining bookings carry no end time; block a fixed allowance.
	feedingAllowance = 90 * time.Minute
	// Same for activities (tours, dessert parties, ...).
	activityAllowance = 2 * time.Hour
)

// Config controls a Converter. Zero values select defaults.
type Config struct {
	// Location overrides the park timezone.
	Location *time.Location

	// Extractor overrides the title date extraction used by special-event
	// matching.
	Extractor dateextract.Extractor

	// Now supplies the fallback reference year for title dates when the
	// itinerary has no days to anchor on. Defaults to time.Now.
	Now func() time.Time
}

// Converter runs one itinerary-to-events conversion. It is stateless across
// runs; the same input always produces the same output.
type Converter struct {
	loc     *time.Location
	extract dateextract.Extractor
	now     func() time.Time
}

func New(cfg Config) (*Converter, error) {
	loc := cfg.Location
	if loc == nil {
		var err error
		loc, err = time.LoadLocation(DefaultParkTimezone)
		if err != nil {
			return nil, fmt.Errorf("convert: load timezone %s: %w", DefaultParkTimezone, err)
		}
	}
	ex := cfg.Extractor
	if ex == nil {
		ex = dateextract.New()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Converter{loc: loc, extract: ex, now: now}, nil
}

// DaySummary reports how many plan items one itinerary day contained.
type DaySummary struct {
	Date      string
	PlanCount int
}

// Result is the assembled output of one conversion: special-event ticket
// events first, then per-day plan events in source order.
type Result struct {
	Events []model.Event
	Days   []DaySummary
}

// Convert walks the itinerary and assembles the ordered event list. Any
// attendee reference that does not resolve through the guest directory
// aborts the run with an *UnknownGuestError.
func (c *Converter) Convert(it *model.Itinerary) (*Result, error) {
	if it == nil {
		return nil, errors.New("convert: nil itinerary")
	}

	dir := BuildGuestDirectory(it.Guests)
	res := &Result{}

	// Ticket matching runs once, independent of the day walk.
	res.Events = append(res.Events, c.matchSpecialEvents(it)...)

	for _, day := range it.Days {
		res.Days = append(res.Days, DaySummary{Date: day.Date, PlanCount: len(day.Plans)})
		for _, item := range day.Plans {
			ev, ok, err := c.classify(dir, item, it.Days)
			if err != nil {
				return nil, err
			}
			if ok {
				res.Events = append(res.Events, ev)
			}
		}
	}

	appLog.Info("conversion completed",
		"day_count", len(res.Days),
		"event_count", len(res.Events),
	)
	return res, nil
}

// classify routes one plan item to its builder, or discards it. Unknown
// types are discarded silently so unknown future feed categories do not
// break conversion.
func (c *Converter) classify(dir GuestDirectory, item model.PlanItem, days []model.Day) (model.Event, bool, error) {
	switch item.Type {
	case model.TypeParkHours:
		// Park open/close records are matched against tickets, never
		// emitted on their own.
		return model.Event{}, false, nil

	case model.TypeResort:
		// The check-in record carries the full stay; checkout and the
		// per-day stay records are redundant with it.
		if !item.HasSubType(model.SubTypeRoomCheckIn) {
			return model.Event{}, false, nil
		}
		ev, err := c.buildLodging(dir, item, days)
		return ev, err == nil, err

	case model.TypeDining:
		ev, err := c.buildDining(dir, item)
		return ev, err == nil, err

	case model.TypeActivity:
		ev, err := c.buildActivity(dir, item)
		return ev, err == nil, err

	case model.TypeParkReservation:
		ev, err := c.buildParkPass(dir, item)
		return ev, err == nil, err

	case model.TypeFastPass:
		// Older feeds encode park reservations under FASTPASS.
		if !item.HasSubType(model.SubTypeParkReservation) {
			return model.Event{}, false, nil
		}
		ev, err := c.buildParkPass(dir, item)
		return ev, err == nil, err

	default:
		appLog.Debug("discarding unrecognized plan item", "id", item.ID, "type", item.Type)
		return model.Event{}, false, nil
	}
}

// parseDate parses a feed date ("2006-01-02"). Whole-day events are
// timezone-less, so dates live in UTC.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("convert: bad date %q: %w", s, err)
	}
	return t, nil
}

// parseDateTime combines a feed date with a naive time of day in the park
// timezone.
func (c *Converter) parseDateTime(date, tod string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, date+" "+tod, c.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("convert: bad time %q on %s", tod, date)
}

// tripRef anchors extracted year-less title dates to the trip itself rather
// than to whenever the converter happens to run.
func (c *Converter) tripRef(it *model.Itinerary) time.Time {
	for _, day := range it.Days {
		if t, err := parseDate(day.Date); err == nil {
			return t
		}
	}
	return c.now()
}

package convert

import (
	"fmt"
	"strings"

	"tripcal/internal/model"
)

// buildLodging turns a resort check-in record into a whole-day event
// spanning the stay. The boundary day follows the continuity rule: the
// final leg of a stay extends one day past checkout (exclusive-end, so the
// checkout day renders as part of the stay), while a leg that continues
// into another reservation ends on the raw checkout date so the two blocks
// tile without overlap.
func (c *Converter) buildLodging(dir GuestDirectory, item model.PlanItem, days []model.Day) (model.Event, error) {
	start, err := parseDate(item.StartDate)
	if err != nil {
		return model.Event{}, err
	}
	checkout, ok := item.EndDate.Get()
	if !ok {
		return model.Event{}, fmt.Errorf("convert: check-in %s has no endDate", item.ID)
	}
	end, err := parseDate(checkout)
	if err != nil {
		return model.Event{}, err
	}
	if stayIsFinalLeg(item, days) {
		end = end.AddDate(0, 0, 1)
	}

	attendees, err := dir.ResolveAll(item.Guests)
	if err != nil {
		return model.Event{}, err
	}

	var desc []string
	if cn, ok := item.ConfirmationNumber.Get(); ok {
		desc = append(desc, "Confirmation: "+cn)
	}
	if rt, ok := item.RoomType.Get(); ok {
		desc = append(desc, "Room: "+rt)
	}

	return model.Event{
		UID:         EventUID(item.ID),
		AllDay:      true,
		Start:       start,
		End:         end,
		Summary:     "Staying at " + item.Title,
		Description: strings.Join(desc, "\n"),
		URL:         item.FinderURL().OrElse(""),
		Attendees:   attendees,
	}, nil
}

// buildDining turns a dining booking into a timed event. The feed carries
// no end time, so a fixed feeding allowance is blocked.
func (c *Converter) buildDining(dir GuestDirectory, item model.PlanItem) (model.Event, error) {
	startTime, ok := item.StartTime.Get()
	if !ok {
		return model.Event{}, fmt.Errorf("convert: dining %s has no startTime", item.ID)
	}
	start, err := c.parseDateTime(item.StartDate, startTime)
	if err != nil {
		return model.Event{}, err
	}

	attendees, err := dir.ResolveAll(item.Guests)
	if err != nil {
		return model.Event{}, err
	}

	var desc []string
	if cn, ok := item.ConfirmationNumber.Get(); ok {
		desc = append(desc, "Confirmation: "+cn)
	}
	if ph, ok := item.FacilityPhoneNumber.Get(); ok {
		desc = append(desc, "Phone: "+formatPhone(ph))
	}

	return model.Event{
		UID:         EventUID(item.ID),
		Start:       start,
		End:         start.Add(feedingAllowance),
		Summary:     item.Title,
		Description: strings.Join(desc, "\n"),
		Location:    item.Location.OrElse(""),
		URL:         item.FinderURL().OrElse(""),
		Attendees:   attendees,
	}, nil
}

// buildActivity turns a tour or scheduled activity into a timed event with
// a fixed duration allowance (the feed carries no duration field).
func (c *Converter) buildActivity(dir GuestDirectory, item model.PlanItem) (model.Event, error) {
	startTime, ok := item.StartTime.Get()
	if !ok {
		return model.Event{}, fmt.Errorf("convert: activity %s has no startTime", item.ID)
	}
	start, err := c.parseDateTime(item.StartDate, startTime)
	if err != nil {
		return model.Event{}, err
	}

	attendees, err := dir.ResolveAll(item.Guests)
	if err != nil {
		return model.Event{}, err
	}

	return model.Event{
		UID:       EventUID(item.ID),
		Start:     start,
		End:       start.Add(activityAllowance),
		Summary:   item.Title,
		URL:       item.FinderURL().OrElse(""),
		Attendees: attendees,
	}, nil
}

// buildParkPass turns a park-admission reservation into a date-only event.
// No time of day is attached (a pass should not block the whole calendar
// day), and the UID is keyed by date rather than the record's backend id,
// which gets reassigned when the party swaps plans around.
func (c *Converter) buildParkPass(dir GuestDirectory, item model.PlanItem) (model.Event, error) {
	start, err := parseDate(item.StartDate)
	if err != nil {
		return model.Event{}, err
	}

	attendees, err := dir.ResolveAll(item.Guests)
	if err != nil {
		return model.Event{}, err
	}

	park := item.Location.OrElse(item.Title)

	return model.Event{
		UID:       EventUID(parkPassKey(item.StartDate)),
		AllDay:    true,
		Start:     start,
		Summary:   park + " Park Pass",
		URL:       item.FinderURL().OrElse(""),
		Attendees: attendees,
	}, nil
}

// formatPhone renders a NANP facility number as (xxx) xxx-xxxx; anything
// else passes through untouched.
func formatPhone(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("(%s) %s-%s", digits[1:4], digits[4:7], digits[7:])
	default:
		return raw
	}
}

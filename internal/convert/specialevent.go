package convert

import (
	"strings"

	appLog "tripcal/internal/log"
	"tripcal/internal/model"
)

// matchSpecialEvents cross-references ticketed special events against the
// operating-hours records in the day list. The matching is pure: running it
// twice over the same itinerary yields identical events.
//
// Skip policy per ticket:
//   - not a special-event admission: ignore
//   - no reassignableTo: companion ticket, the primary holder's ticket
//     already produced the event
//   - no date extractable from the title: warn and skip
//   - no operating-hours record for that date/park: skip silently (the
//     event did not occur, or the feed is inconsistent)
func (c *Converter) matchSpecialEvents(it *model.Itinerary) []model.Event {
	ref := c.tripRef(it)
	var out []model.Event

	for _, ticket := range it.TicketAdmissions {
		if ticket.Type != model.TypeParkAdmission || ticket.SubType != model.SubTypeSpecialEvent {
			continue
		}
		if ticket.ReassignableTo.IsAbsent() {
			continue
		}

		date, ok := c.extract.Extract(ticket.Title, ref)
		if !ok {
			appLog.Warn("special event ticket title has no recognizable date; skipping",
				"ticket_id", ticket.ID, "title", ticket.Title)
			continue
		}

		if ev, ok := c.buildSpecialEvent(ticket, date.Format("2006-01-02"), it.Days); ok {
			out = append(out, ev)
		}
	}
	return out
}

// buildSpecialEvent finds the PARK_HOURS record for the ticket's date whose
// venue title appears in the ticket title (several parks can operate on the
// same date) and spans the event across that record's special-event window.
// After-hours events end past midnight, so the end time lands on the next
// calendar day.
func (c *Converter) buildSpecialEvent(ticket model.Ticket, date string, days []model.Day) (model.Event, bool) {
	for _, day := range days {
		if day.Date != date {
			continue
		}
		for _, p := range day.Plans {
			if p.Type != model.TypeParkHours {
				continue
			}
			if p.Title == "" || !strings.Contains(ticket.Title, p.Title) {
				continue
			}
			startAt, okStart := p.SpecialEventStartAt.Get()
			endAt, okEnd := p.SpecialEventEndAt.Get()
			if !okStart || !okEnd {
				continue
			}

			start, err := c.parseDateTime(day.Date, startAt)
			if err != nil {
				appLog.Warn("operating hours record has unparsable special event window; skipping",
					"plan_id", p.ID, "value", startAt)
				continue
			}
			end, err := c.parseDateTime(day.Date, endAt)
			if err != nil {
				appLog.Warn("operating hours record has unparsable special event window; skipping",
					"plan_id", p.ID, "value", endAt)
				continue
			}

			return model.Event{
				UID:      EventUID(ticket.ID),
				Start:    start,
				End:      end.AddDate(0, 0, 1),
				Summary:  ticket.Title,
				Location: p.Title,
			}, true
		}
	}
	return model.Event{}, false
}

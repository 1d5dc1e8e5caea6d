package convert

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcal/internal/model"
)

func specialEventItinerary() *model.Itinerary {
	return &model.Itinerary{
		Guests: testGuests(),
		Days: []model.Day{
			{Date: "2024-03-03", Plans: []model.PlanItem{
				{
					ID:                  "hours-other",
					Type:                model.TypeParkHours,
					StartDate:           "2024-03-03",
					Title:               "Crystal Springs",
					SpecialEventStartAt: mo.Some("19:00:00"),
					SpecialEventEndAt:   mo.Some("23:00:00"),
				},
				{
					ID:                  "hours-match",
					Type:                model.TypeParkHours,
					StartDate:           "2024-03-03",
					Title:               "Grand Meadow",
					SpecialEventStartAt: mo.Some("21:00:00"),
					SpecialEventEndAt:   mo.Some("01:00:00"),
				},
			}},
		},
		TicketAdmissions: []model.Ticket{{
			ID:             "tkt-1",
			Type:           model.TypeParkAdmission,
			SubType:        model.SubTypeSpecialEvent,
			Title:          "Grand Meadow After Hours - March 3",
			ReassignableTo: mo.Some("g2"),
		}},
	}
}

func TestMatchSpecialEvent(t *testing.T) {
	c := newTestConverter(t)
	it := specialEventItinerary()

	events := c.matchSpecialEvents(it)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, EventUID("tkt-1"), ev.UID)
	assert.Equal(t, "Grand Meadow After Hours - March 3", ev.Summary)
	assert.Equal(t, "Grand Meadow", ev.Location, "must match the park named in the title, not the first park of the day")

	assert.Equal(t, time.Date(2024, 3, 3, 21, 0, 0, 0, c.loc), ev.Start)
	// After-hours events end past midnight, on the next calendar day.
	assert.Equal(t, time.Date(2024, 3, 4, 1, 0, 0, 0, c.loc), ev.End)
}

func TestMatchSpecialEventIdempotent(t *testing.T) {
	c := newTestConverter(t)
	it := specialEventItinerary()

	first := c.matchSpecialEvents(it)
	second := c.matchSpecialEvents(it)
	assert.Equal(t, first, second)
}

func TestMatchSpecialEventSkipsCompanionTicket(t *testing.T) {
	// A ticket without reassignableTo was reassigned from the primary
	// holder; the primary's ticket already produced the event.
	c := newTestConverter(t)
	it := specialEventItinerary()
	it.TicketAdmissions[0].ReassignableTo = mo.None[string]()

	assert.Empty(t, c.matchSpecialEvents(it))
}

func TestMatchSpecialEventSkipsUndatedTitle(t *testing.T) {
	c := newTestConverter(t)
	it := specialEventItinerary()
	it.TicketAdmissions[0].Title = "Grand Meadow After Hours"

	assert.Empty(t, c.matchSpecialEvents(it))
}

func TestMatchSpecialEventSkipsWithoutOperatingHours(t *testing.T) {
	c := newTestConverter(t)
	it := specialEventItinerary()
	it.TicketAdmissions[0].Title = "Crystal Cove After Hours - March 3"

	assert.Empty(t, c.matchSpecialEvents(it))
}

func TestMatchSpecialEventIgnoresRegularAdmissions(t *testing.T) {
	c := newTestConverter(t)
	it := specialEventItinerary()
	it.TicketAdmissions[0].SubType = "STANDARD"

	assert.Empty(t, c.matchSpecialEvents(it))
}

func TestMatchSpecialEventYearAnchoredToTrip(t *testing.T) {
	// The title says "March 3" with no year; the trip's own days supply
	// it, so conversion is stable no matter when it runs.
	c, err := New(Config{
		Location: time.FixedZone("Park", -5*60*60),
		Now:      func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	events := c.matchSpecialEvents(specialEventItinerary())
	require.Len(t, events, 1)
	assert.Equal(t, 2024, events[0].Start.Year())
}

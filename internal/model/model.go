package model

import (
	"encoding/json"
	"time"

	"github.com/samber/mo"
)

// Plan item types and sub-types as they appear in the itinerary feed.
// Unknown values are tolerated by the classifier, so this list is not
// exhaustive.
const (
	TypeParkHours       = "PARK_HOURS"
	TypeResort          = "RESORT"
	TypeDining          = "DINING"
	TypeActivity        = "ACTIVITY"
	TypeParkReservation = "PARK_RESERVATION"
	TypeFastPass        = "FASTPASS"
	TypeParkAdmission   = "PARK_ADMISSION"

	SubTypeRoomCheckIn     = "RESORT_ROOM_CHECKIN"
	SubTypeRoomCheckOut    = "RESORT_ROOM_CHECKOUT"
	SubTypeResortStay      = "RESORT_STAY"
	SubTypeParkReservation = "PARK_RESERVATION"
	SubTypeSpecialEvent    = "SPECIAL_EVENT"
)

// LinkFinder is the key of the public deep-link entry in a plan item's
// link collection.
const LinkFinder = "finder"

// Itinerary is the full trip document as fetched from the itinerary API:
// the party, the day-by-day plans, and any ticketed admissions.
type Itinerary struct {
	Guests           []Guest  `json:"guests"`
	Days             []Day    `json:"days"`
	TicketAdmissions []Ticket `json:"ticketAdmissions"`
}

// Guest is one member of the travelling party.
type Guest struct {
	ID   string    `json:"id"`
	Name GuestName `json:"name"`
}

type GuestName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Day groups the plan items scheduled on a single calendar date
// ("2006-01-02" form).
type Day struct {
	Date  string     `json:"date"`
	Plans []PlanItem `json:"plans"`
}

// PlanItem is one raw scheduled entry within a day: a reservation, a
// booking, an activity, or an operating-hours record. Optional feed fields
// are mo.Option values so that builders branch on presence instead of
// probing zero values.
type PlanItem struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	SubType   mo.Option[string] `json:"subType"`
	StartDate string            `json:"startDate"`
	EndDate   mo.Option[string] `json:"endDate"`
	StartTime mo.Option[string] `json:"startTime"`

	CheckInTime  mo.Option[string] `json:"checkInTime"`
	CheckOutTime mo.Option[string] `json:"checkOutTime"`

	Title    string            `json:"title"`
	Location mo.Option[string] `json:"location"`

	ConfirmationNumber  mo.Option[string] `json:"confirmationNumber"`
	RoomType            mo.Option[string] `json:"roomType"`
	FacilityPhoneNumber mo.Option[string] `json:"facilityPhoneNumber"`
	FinanceURL          mo.Option[string] `json:"financeUrl"`

	// Operating-hours records carry the special-event window as
	// times of day.
	SpecialEventStartAt mo.Option[string] `json:"specialEventStartAt"`
	SpecialEventEndAt   mo.Option[string] `json:"specialEventEndAt"`

	Links  map[string]Link `json:"links"`
	Guests []GuestRef      `json:"guests"`
}

// Link is one entry of a plan item's link collection.
type Link struct {
	Href string `json:"href"`
}

// FinderURL returns the public deep link for this plan item, if the feed
// included one.
func (p PlanItem) FinderURL() mo.Option[string] {
	if l, ok := p.Links[LinkFinder]; ok && l.Href != "" {
		return mo.Some(l.Href)
	}
	return mo.None[string]()
}

// HasSubType reports whether the item carries exactly the given sub-type.
func (p PlanItem) HasSubType(sub string) bool {
	return p.SubType.OrElse("") == sub
}

// GuestRef is a normalized reference to a party member. The feed uses two
// shapes depending on the plan category: a direct {"id": ...} object and a
// nested {"guest": {"id": ...}} object. Both decode into the same type so
// builders never branch on shape.
type GuestRef struct {
	ID string
}

func (r *GuestRef) UnmarshalJSON(data []byte) error {
	var direct struct {
		ID    string `json:"id"`
		Guest struct {
			ID string `json:"id"`
		} `json:"guest"`
	}
	if err := json.Unmarshal(data, &direct); err != nil {
		return err
	}
	if direct.ID != "" {
		r.ID = direct.ID
	} else {
		r.ID = direct.Guest.ID
	}
	return nil
}

func (r GuestRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID string `json:"id"`
	}{ID: r.ID})
}

// Ticket is one admission record from the itinerary's ticket list.
// ReassignableTo is only present on the primary ticket of a party's ticket
// group; companion tickets omit it.
type Ticket struct {
	ID             string            `json:"id"`
	Type           string            `json:"type"`
	SubType        string            `json:"subType"`
	Title          string            `json:"title"`
	ReassignableTo mo.Option[string] `json:"reassignableTo"`
}

// Event is the canonical calendar event produced by the conversion engine.
// Instances are built once and never mutated; they are handed straight to
// the calendar encoder.
type Event struct {
	// UID is a pure function of the source record's natural id, stable
	// across runs so calendar clients update in place instead of
	// accumulating duplicates.
	UID string

	// AllDay events carry date-only Start/End with exclusive end
	// semantics (an event covering D1..D2 inclusive ends at D2+1).
	AllDay bool

	Start time.Time
	// End is optional; the zero value means no end is emitted.
	End time.Time

	Summary     string
	Description string
	Location    string
	URL         string

	// Attendees are resolved display names, in feed order.
	Attendees []string
}

// Package ics encodes converted events into an iCalendar document.
package ics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	ical "github.com/arran4/golang-ical"

	"tripcal/internal/model"
)

// Extension is the calendar file extension used for derived output paths.
const Extension = ".ics"

// OutputPath derives the calendar filename from the input document path by
// replacing its extension.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + Extension
}

// Encode serializes events into a single VCALENDAR document, preserving
// their order.
func Encode(events []model.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//tripcal//itinerary//EN")

	for _, ev := range events {
		if ev.UID == "" {
			return nil, errors.New("ics: event without UID")
		}
		ve := cal.AddEvent(ev.UID)

		// DTSTAMP pinned to the event start so repeated conversions of
		// the same itinerary produce byte-identical output.
		ve.SetDtStampTime(ev.Start.UTC())

		if ev.AllDay {
			ve.SetAllDayStartAt(ev.Start)
			if !ev.End.IsZero() {
				ve.SetAllDayEndAt(ev.End)
			}
		} else {
			ve.SetStartAt(ev.Start)
			if !ev.End.IsZero() {
				ve.SetEndAt(ev.End)
			}
		}

		ve.SetSummary(ev.Summary)
		if ev.Description != "" {
			ve.SetDescription(ev.Description)
		}
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.URL != "" {
			ve.SetURL(ev.URL)
		}
		for _, name := range ev.Attendees {
			// Attendees are display names, not addresses; emit the
			// plain value rather than a mailto: form.
			ve.AddProperty(ical.ComponentPropertyAttendee, name)
		}
	}

	return []byte(cal.Serialize()), nil
}

// WriteFile encodes events and writes the calendar document to path.
func WriteFile(path string, events []model.Event) error {
	data, err := Encode(events)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

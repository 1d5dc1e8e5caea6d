package ics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcal/internal/model"
)

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "plans.ics", OutputPath("plans.json"))
	assert.Equal(t, "trips/march.ics", OutputPath("trips/march.json"))
	assert.Equal(t, "plans.ics", OutputPath("plans"))
}

func TestEncode(t *testing.T) {
	loc := time.FixedZone("Park", -5*60*60)
	events := []model.Event{
		{
			UID:       "uid-special",
			Start:     time.Date(2024, 3, 3, 21, 0, 0, 0, loc),
			End:       time.Date(2024, 3, 4, 1, 0, 0, 0, loc),
			Summary:   "After Hours",
			Location:  "Grand Meadow",
			Attendees: []string{"Mickey Mouse"},
		},
		{
			UID:     "uid-stay",
			AllDay:  true,
			Start:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			Summary: "Staying at Pine Key Lodge",
			URL:     "https://example.com/resort",
		},
		{
			UID:     "uid-pass",
			AllDay:  true,
			Start:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			Summary: "Grand Meadow Park Pass",
		},
	}

	data, err := Encode(events)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "UID:uid-special")
	assert.Contains(t, out, "SUMMARY:After Hours")
	assert.Contains(t, out, "LOCATION:Grand Meadow")
	assert.Contains(t, out, "ATTENDEE:Mickey Mouse")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240301")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240306")
	assert.Contains(t, out, "URL:https://example.com/resort")

	// The date-only pass carries no end.
	passBlock := out[strings.Index(out, "UID:uid-pass"):]
	passBlock = passBlock[:strings.Index(passBlock, "END:VEVENT")]
	assert.NotContains(t, passBlock, "DTEND")

	// Source order is preserved.
	assert.Less(t, strings.Index(out, "UID:uid-special"), strings.Index(out, "UID:uid-stay"))
	assert.Less(t, strings.Index(out, "UID:uid-stay"), strings.Index(out, "UID:uid-pass"))
}

func TestEncodeDeterministic(t *testing.T) {
	events := []model.Event{{
		UID:     "uid-1",
		AllDay:  true,
		Start:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Summary: "Stay",
	}}

	a, err := Encode(events)
	require.NoError(t, err)
	b, err := Encode(events)
	require.NoError(t, err)
	assert.Equal(t, a, b, "re-encoding the same events must be byte-identical")
}

func TestEncodeRejectsMissingUID(t *testing.T) {
	_, err := Encode([]model.Event{{Summary: "no uid"}})
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.ics")
	events := []model.Event{{
		UID:     "uid-1",
		AllDay:  true,
		Start:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Summary: "Stay",
	}}

	require.NoError(t, WriteFile(path, events))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VEVENT")
}

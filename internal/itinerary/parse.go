package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	appLog "tripcal/internal/log"
	"tripcal/internal/model"
)

var (
	ErrMissingGuests = errors.New("itinerary has no top-level guests field")
	ErrMissingDays   = errors.New("itinerary has no top-level days field")
)

// Parse decodes a raw itinerary document and validates its top-level
// structure. A missing guests or days field is fatal: without them no
// meaningful conversion is possible.
func Parse(body []byte) (*model.Itinerary, error) {
	if len(body) == 0 {
		return nil, errors.New("empty itinerary body")
	}

	var it model.Itinerary
	if err := json.Unmarshal(body, &it); err != nil {
		return nil, fmt.Errorf("itinerary: invalid JSON: %w", err)
	}

	// nil means the key was absent; an empty list is a valid (if dull)
	// itinerary.
	if it.Guests == nil {
		return nil, ErrMissingGuests
	}
	if it.Days == nil {
		return nil, ErrMissingDays
	}

	appLog.Debug("itinerary parsed",
		"guest_count", len(it.Guests),
		"day_count", len(it.Days),
		"ticket_count", len(it.TicketAdmissions),
	)
	return &it, nil
}

// Load reads and parses the itinerary document at path.
func Load(path string) (*model.Itinerary, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("itinerary: read %s: %w", path, err)
	}
	return Parse(body)
}

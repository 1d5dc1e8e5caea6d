package convert

import (
	"fmt"

	"tripcal/internal/model"
)

// GuestDirectory maps guest ids to display names. It is built once per
// conversion run and read-only afterwards; builders receive it explicitly
// instead of reaching into shared state.
type GuestDirectory map[string]string

// BuildGuestDirectory indexes the itinerary's guest list. Source ids are
// expected unique; a duplicate id overwrites the earlier name.
func BuildGuestDirectory(guests []model.Guest) GuestDirectory {
	dir := make(GuestDirectory, len(guests))
	for _, g := range guests {
		dir[g.ID] = g.Name.First + " " + g.Name.Last
	}
	return dir
}

// UnknownGuestError is a data-integrity failure: a plan item references a
// guest id that the itinerary's own guest list does not contain. It aborts
// the conversion rather than silently dropping the attendee.
type UnknownGuestError struct {
	ID string
}

func (e *UnknownGuestError) Error() string {
	return fmt.Sprintf("plan references unknown guest id %q", e.ID)
}

// Resolve returns the display name for a guest id.
func (d GuestDirectory) Resolve(id string) (string, error) {
	name, ok := d[id]
	if !ok {
		return "", &UnknownGuestError{ID: id}
	}
	return name, nil
}

// ResolveAll resolves a plan item's guest references in feed order.
func (d GuestDirectory) ResolveAll(refs []model.GuestRef) ([]string, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		name, err := d.Resolve(r.ID)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

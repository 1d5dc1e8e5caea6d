package convert

import "github.com/google/uuid"

// eventNamespace is the fixed namespace for event identity. Changing it
// would re-key every previously synced event, so it is a constant of the
// format, not configuration.
var eventNamespace = uuid.MustParse("8f9e3b6c-1d52-4a78-b041-59c0de7a2f16")

// EventUID derives the calendar UID for a source record id: a SHA-1 digest
// of the id under a fixed namespace, rendered as a version-5 UUID. The same
// source id always yields the same UID, across runs and hosts, so calendar
// clients update events in place instead of accumulating duplicates.
func EventUID(sourceID string) string {
	return uuid.NewSHA1(eventNamespace, []byte(sourceID)).String()
}

// parkPassKey is the synthetic identity for a park-admission record. The
// backend reassigns ids to admission records for the same logical
// reservation, so the pass is keyed by its date instead.
func parkPassKey(startDate string) string {
	return "parkpass-" + startDate
}

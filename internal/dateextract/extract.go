// Package dateextract pulls calendar dates out of free-form text.
//
// Ticketed special events only reference their date inside a marketing
// title ("Park X After Hours — March 3"), so extraction is best effort:
// callers get a found/not-found answer and decide their own skip policy.
package dateextract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Extractor finds a calendar date inside free text. The reference time
// supplies the year when the text omits one.
type Extractor interface {
	Extract(text string, ref time.Time) (time.Time, bool)
}

// New returns the default extractor. It recognizes ISO dates, month-name
// forms with or without a year ("March 3", "Mar 3rd, 2024", "3 March"),
// and slash-separated numeric dates.
func New() Extractor {
	return titleExtractor{}
}

type titleExtractor struct{}

var (
	isoRe = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)

	monthPat = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
		`jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

	// "March 3", "Mar. 3rd, 2024"
	monthDayRe = regexp.MustCompile(`(?i)\b` + monthPat + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	// "3 March", "3rd of March 2024"
	dayMonthRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?(?:\s+of)?\s+` + monthPat + `(?:,?\s+(\d{4}))?\b`)
	// "3/14/2024" (month first, as the feed's market writes it)
	slashRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
)

func (titleExtractor) Extract(text string, ref time.Time) (time.Time, bool) {
	if m := isoRe.FindStringSubmatch(text); m != nil {
		return makeDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
	}
	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		if mon, ok := monthByName(m[1]); ok {
			return makeDate(yearOr(m[3], ref), mon, atoi(m[2]))
		}
	}
	if m := dayMonthRe.FindStringSubmatch(text); m != nil {
		if mon, ok := monthByName(m[2]); ok {
			return makeDate(yearOr(m[3], ref), mon, atoi(m[1]))
		}
	}
	if m := slashRe.FindStringSubmatch(text); m != nil {
		return makeDate(atoi(m[3]), time.Month(atoi(m[1])), atoi(m[2]))
	}
	return time.Time{}, false
}

func yearOr(s string, ref time.Time) int {
	if s == "" {
		return ref.Year()
	}
	return atoi(s)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func monthByName(name string) (time.Month, bool) {
	switch strings.ToLower(name)[:3] {
	case "jan":
		return time.January, true
	case "feb":
		return time.February, true
	case "mar":
		return time.March, true
	case "apr":
		return time.April, true
	case "may":
		return time.May, true
	case "jun":
		return time.June, true
	case "jul":
		return time.July, true
	case "aug":
		return time.August, true
	case "sep":
		return time.September, true
	case "oct":
		return time.October, true
	case "nov":
		return time.November, true
	case "dec":
		return time.December, true
	}
	return 0, false
}

// makeDate builds a UTC date and rejects out-of-range components (time.Date
// would silently normalize "February 31" into March).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

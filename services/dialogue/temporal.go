// File: services/dialogue/temporal.go
package dialogue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var (
	ddmmyyyyRe = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	yyyymmddRe = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	ddmmyyRe   = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{2})$`)
	ddmmmRe    = regexp.MustCompile(`^(\d{1,2})\s+([a-z]{3,})$`)
)

// ParseDate converts a natural-language date to YYYY-MM-DD relative to now.
// Weekday names resolve to the next occurrence, never today. Unrecognized
// input is returned unchanged; callers must validate before using it.
func ParseDate(text string, now time.Time) string {
	t := strings.TrimSpace(strings.ToLower(text))

	switch t {
	case "today", "tonight":
		return now.Format("2006-01-02")
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	if wd, ok := weekdays[t]; ok {
		delta := (int(wd) - int(now.Weekday()) + 7) % 7
		if delta == 0 {
			delta = 7
		}
		return now.AddDate(0, 0, delta).Format("2006-01-02")
	}

	if m := ddmmyyyyRe.FindStringSubmatch(t); m != nil {
		return isoDate(atoi(m[3]), atoi(m[2]), atoi(m[1]), text)
	}
	if m := yyyymmddRe.FindStringSubmatch(t); m != nil {
		return isoDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), text)
	}
	if m := ddmmyyRe.FindStringSubmatch(t); m != nil {
		year := atoi(m[3])
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
		return isoDate(year, atoi(m[2]), atoi(m[1]), text)
	}
	if m := ddmmmRe.FindStringSubmatch(t); m != nil {
		if month, ok := monthNames[m[2][:3]]; ok {
			return isoDate(now.Year(), int(month), atoi(m[1]), text)
		}
	}

	return text
}

// isoDate formats a date, falling back to the raw input when the components
// do not form a real calendar date.
func isoDate(year, month, day int, raw string) string {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return raw
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month {
		return raw
	}
	return d.Format("2006-01-02")
}

var (
	timeMeridiemMinRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)$`)
	timeMeridiemRe    = regexp.MustCompile(`^(\d{1,2})\s*(am|pm)$`)
	timeColonRe       = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	timeBareRe        = regexp.MustCompile(`^(\d{1,2})$`)
)

// To24Hour converts a time expression to canonical "HH:MM". Bare hours with
// no AM/PM marker go through assumeEveningHour. Unrecognized input is
// returned unchanged.
func To24Hour(text string) string {
	t := strings.TrimSpace(strings.ToLower(text))

	if m := timeMeridiemMinRe.FindStringSubmatch(t); m != nil {
		return clockString(applyMeridiem(atoi(m[1]), m[3]), atoi(m[2]))
	}
	if m := timeMeridiemRe.FindStringSubmatch(t); m != nil {
		return clockString(applyMeridiem(atoi(m[1]), m[2]), 0)
	}
	if m := timeColonRe.FindStringSubmatch(t); m != nil {
		return clockString(assumeEveningHour(atoi(m[1])), atoi(m[2]))
	}
	if m := timeBareRe.FindStringSubmatch(t); m != nil {
		return clockString(assumeEveningHour(atoi(m[1])), 0)
	}

	return text
}

func applyMeridiem(hour int, marker string) int {
	hour = hour % 12
	if marker == "pm" {
		hour += 12
	}
	return hour
}

func clockString(hour, minute int) string {
	if hour > 23 || minute > 59 {
		return fmt.Sprintf("%02d:%02d", hour%24, minute%60)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Extraction pattern lists are ordered most specific first and the first
// match wins. The ordering is part of the contract: reordering changes
// extraction precedence.

var partySizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:party|group)\s+of\s+(\d{1,2})`),
	regexp.MustCompile(`(?:table|book(?:ing)?|reserv[a-z]*)\s+for\s+(\d{1,2})\b`),
	regexp.MustCompile(`for\s+(\d{1,2})\s+(?:people|persons|person|guests|pax)`),
	regexp.MustCompile(`(\d{1,2})\s+(?:people|persons|person|guests|pax)`),
}

// ExtractPartySize returns the first party size found in the text. Range
// validation is the workflow's job, not the extractor's.
func ExtractPartySize(text string) (int, bool) {
	for _, re := range partySizePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return atoi(m[1]), true
		}
	}
	return 0, false
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(\d{1,2}:\d{2}\s*(?:am|pm))\b`),
	regexp.MustCompile(`\b(\d{1,2}\s*(?:am|pm))\b`),
	regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`),
	regexp.MustCompile(`\bat\s+(\d{1,2})\b`),
}

// ExtractTime returns the first time expression found, canonicalized to HH:MM.
func ExtractTime(text string) (string, bool) {
	for _, re := range timePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return To24Hour(m[1]), true
		}
	}
	return "", false
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(today|tonight|tomorrow)\b`),
	regexp.MustCompile(`\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`),
	regexp.MustCompile(`\b(\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`),
	regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`),
	regexp.MustCompile(`\b(\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*)\b`),
}

// ExtractDate returns the first date expression found, canonicalized to
// YYYY-MM-DD when recognized.
func ExtractDate(text string, now time.Time) (string, bool) {
	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return ParseDate(m[1], now), true
		}
	}
	return "", false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

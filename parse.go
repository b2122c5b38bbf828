package tempo

import (
	"regexp"
	"strconv"
	"time"

	"github.com/obskit/tempo/internal/instant"
)

// Accepted textual forms. Both expose the same capture groups, so the
// compact legacy form needs no separate handling past the match.
var (
	isoExtendedRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(\.\d+)?Z?$`)
	isoCompactRe  = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})T(\d{2})(\d{2})(\d{2})(\.\d+)?Z$`)
)

// Parse builds a DateTime from ISO-8601 text, always read as UTC. Two forms
// are accepted: the extended form YYYY-MM-DDTHH:MM:SS[.fraction][Z] and the
// compact legacy form YYYYMMDDTHHMMSS[.fraction]Z. Fractional digits beyond
// nanosecond resolution are truncated, not rounded.
func Parse(text string) (DateTime, error) {
	civil, err := parseCivil(text)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{i: utcToTAI(civil)}, nil
}

// parseCivil maps ISO-8601 text to the Unix-style instant of its civil
// reading, with no timescale applied yet.
func parseCivil(text string) (instant.Instant, error) {
	m := isoExtendedRe.FindStringSubmatch(text)
	if m == nil {
		m = isoCompactRe.FindStringSubmatch(text)
	}
	if m == nil {
		return instant.Instant{}, newParseError(text, "not an ISO-8601 date-time")
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	min, _ := strconv.Atoi(m[5])
	sec, _ := strconv.Atoi(m[6])

	if err := validateCalendar(year, month, day, hour, min, sec); err != nil {
		return instant.Instant{}, newParseError(text, "impossible calendar date")
	}

	var frac int64
	if m[7] != "" {
		digits := m[7][1:] // strip the dot
		if len(digits) > 9 {
			digits = digits[:9] // truncate to nanosecond resolution
		}
		frac, _ = strconv.ParseInt(digits, 10, 64)
		for i := len(digits); i < 9; i++ {
			frac *= 10
		}
	}

	unix := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC).Unix()
	return instant.New(unix, frac), nil
}

// validateCalendar checks the six calendar fields against their proleptic
// Gregorian ranges.
func validateCalendar(year, month, day, hour, min, sec int) error {
	switch {
	case year < 1 || year > 9999:
		return newRangeError("year must be in 1..9999")
	case month < 1 || month > 12:
		return newRangeError("month must be in 1..12")
	case day < 1 || day > daysIn(year, month):
		return newRangeError("day must be in 1.." + strconv.Itoa(daysIn(year, month)))
	case hour < 0 || hour > 23:
		return newRangeError("hour must be in 0..23")
	case min < 0 || min > 59:
		return newRangeError("minute must be in 0..59")
	case sec < 0 || sec > 59:
		return newRangeError("second must be in 0..59")
	}
	return nil
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/en16931/cii2ubl/cii"
)

// DefaultDateFormat is assumed when a date carries no format qualifier
const DefaultDateFormat = "102"

const ublDateLayout = "2006-01-02"

// UNTDID 2379 qualifiers mapped to Go layouts. 103 (week based) has no
// layout and is handled separately.
var dateLayouts = map[string]string{
	"2":   "020106",   // DDMMYY
	"3":   "010206",   // MMDDYY
	"4":   "02012006", // DDMMCCYY
	"101": "060102",   // YYMMDD
	"102": "20060102", // CCYYMMDD
	"105": "06002",    // YYDDD
}

// ParseDate parses a CII date string according to its format qualifier
func ParseDate(format, value string) (time.Time, error) {
	format = strings.TrimSpace(format)
	value = strings.TrimSpace(value)
	if format == "" {
		format = DefaultDateFormat
	}

	if format == "103" {
		return parseWeekDate(value)
	}

	layout, ok := dateLayouts[format]
	if !ok {
		return time.Time{}, fmt.Errorf("unsupported date format qualifier '%s'", format)
	}
	if len(value) != len(layout) {
		return time.Time{}, fmt.Errorf("date '%s' does not match format %s", value, format)
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s' does not match format %s: %w", value, format, err)
	}
	return t, nil
}

// parseWeekDate parses YYWWD: two digit year, ISO week and day of the week
// starting with Monday as 1
func parseWeekDate(value string) (time.Time, error) {
	if len(value) != 5 {
		return time.Time{}, fmt.Errorf("date '%s' does not match format 103", value)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return time.Time{}, fmt.Errorf("date '%s' does not match format 103", value)
	}

	yy, week, day := n/1000, (n/10)%100, n%10
	if week < 1 || week > 53 || day < 1 || day > 7 {
		return time.Time{}, fmt.Errorf("date '%s' is not a valid week date", value)
	}

	// Same century pivot as the 06 layout element
	year := 2000 + yy
	if yy >= 69 {
		year = 1900 + yy
	}

	// Monday of ISO week 1 is the Monday on or before January 4th
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	week1 := jan4.AddDate(0, 0, -offset)

	t := week1.AddDate(0, 0, (week-1)*7+day-1)
	if y, w := t.ISOWeek(); y != year || w != week {
		return time.Time{}, fmt.Errorf("date '%s' is not a valid week date", value)
	}
	return t, nil
}

// FormatDate converts a CII date string into the UBL xs:date form
func FormatDate(format, value string) (string, error) {
	t, err := ParseDate(format, value)
	if err != nil {
		return "", err
	}
	return t.Format(ublDateLayout), nil
}

// date converts a CII date-time for term. Absent dates are reported as
// missing, unparseable ones as errors; both yield "".
func (c *conversion) date(term string, dt *cii.DateTime) string {
	if dt == nil {
		c.missing(term)
		return ""
	}
	return c.dateString(term, dt.DateTimeString)
}

func (c *conversion) dateString(term string, ds *cii.DateTimeString) string {
	if ds == nil || strings.TrimSpace(ds.Value) == "" {
		c.missing(term)
		return ""
	}
	out, err := FormatDate(ds.Format, ds.Value)
	if err != nil {
		c.errorf(term, "%s", err)
		return ""
	}
	return out
}

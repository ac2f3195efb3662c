package gnss

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultDate is the fixed sentinel used to complete a time-of-day field
// when the sentence carries no date of its own (GGA, GLL, GNS). It is a
// contract, not the host clock: see spec.md §4.3. AIS type 5's ETA is not
// completed with it: the ais package exposes the ETA only as separate
// month, day, hour and minute fields.
var DefaultDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Coordinate converts an NMEA DDDMM.MMMM field plus a hemisphere letter
// ("N"/"S"/"E"/"W") into signed decimal degrees. An empty raw value
// returns (0, false) meaning absent.
func Coordinate(raw, hemisphere string) (float64, bool, error) {
	if raw == "" {
		return 0, false, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid coordinate %q: %w", raw, err)
	}

	degrees := float64(int(value / 100))
	minutes := value - degrees*100
	decimal := degrees + minutes/60

	switch hemisphere {
	case "S", "W":
		decimal = -decimal
	case "N", "E", "":
		// leave as-is
	default:
		return 0, false, fmt.Errorf("invalid hemisphere %q", hemisphere)
	}

	return decimal, true, nil
}

// TimeOfDay parses an HHMMSS or HHMMSS.sss field into hour/minute/second
// components. An empty raw value returns ok=false. Out-of-range values
// fail.
func TimeOfDay(raw string) (hour, minute int, second float64, ok bool, err error) {
	if raw == "" {
		return 0, 0, 0, false, nil
	}
	if len(raw) < 6 {
		return 0, 0, 0, false, fmt.Errorf("time field %q too short", raw)
	}

	hour, errH := strconv.Atoi(raw[0:2])
	minute, errM := strconv.Atoi(raw[2:4])
	seconds, errS := strconv.ParseFloat(raw[4:], 64)
	if errH != nil || errM != nil || errS != nil {
		return 0, 0, 0, false, fmt.Errorf("invalid time field %q", raw)
	}

	if hour < 0 || hour > 23 {
		return 0, 0, 0, false, fmt.Errorf("hour %d out of range in %q", hour, raw)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, 0, false, fmt.Errorf("minute %d out of range in %q", minute, raw)
	}
	if seconds < 0 || seconds >= 60 {
		return 0, 0, 0, false, fmt.Errorf("seconds %v out of range in %q", seconds, raw)
	}

	return hour, minute, seconds, true, nil
}

// Date parses a DDMMYY field. Two-digit years 0-69 map to 2000-2069;
// 70-99 map to 1970-1999.
func Date(raw string) (year, month, day int, ok bool, err error) {
	if raw == "" {
		return 0, 0, 0, false, nil
	}
	if len(raw) != 6 {
		return 0, 0, 0, false, fmt.Errorf("date field %q is not 6 characters", raw)
	}

	day, errD := strconv.Atoi(raw[0:2])
	month, errM := strconv.Atoi(raw[2:4])
	yy, errY := strconv.Atoi(raw[4:6])
	if errD != nil || errM != nil || errY != nil {
		return 0, 0, 0, false, fmt.Errorf("invalid date field %q", raw)
	}

	if month < 1 || month > 12 {
		return 0, 0, 0, false, fmt.Errorf("month %d out of range in %q", month, raw)
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, false, fmt.Errorf("day %d out of range in %q", day, raw)
	}

	if yy <= 69 {
		year = 2000 + yy
	} else {
		year = 1900 + yy
	}

	return year, month, day, true, nil
}

// ComposeTimestamp builds a UTC time.Time from a date (or DefaultDate when
// dateOK is false) and a time-of-day.
func ComposeTimestamp(year, month, day int, dateOK bool, hour, minute int, second float64) time.Time {
	if !dateOK {
		year, month, day = DefaultDate.Year(), int(DefaultDate.Month()), DefaultDate.Day()
	}
	wholeSeconds := int(second)
	nanos := int((second - float64(wholeSeconds)) * 1e9)
	return time.Date(year, time.Month(month), day, hour, minute, wholeSeconds, nanos, time.UTC)
}

// OptionalFloat parses a numeric field; an empty string is absent.
func OptionalFloat(raw string) (float64, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid numeric field %q: %w", raw, err)
	}
	return v, true, nil
}

// OptionalInt parses an integer field; an empty string is absent.
func OptionalInt(raw string) (int, bool, error) {
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("invalid integer field %q: %w", raw, err)
	}
	return v, true, nil
}

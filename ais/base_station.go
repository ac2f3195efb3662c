package ais

import "github.com/goblimey/go-nmea-ais/ais/bits"

// decodeBaseStationReport decodes types 4 and 11 (base station report /
// UTC and date response), which share a schema.
func decodeBaseStationReport(r *bits.Reader) (*BaseStationReport, error) {
	year, err := r.Uint(14)
	if err != nil {
		return nil, err
	}
	month, err := r.Uint(4)
	if err != nil {
		return nil, err
	}
	day, err := r.Uint(5)
	if err != nil {
		return nil, err
	}
	hour, err := r.Uint(5)
	if err != nil {
		return nil, err
	}
	minute, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	second, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	accuracy, err := r.Bool()
	if err != nil {
		return nil, err
	}
	lonRaw, err := r.Int(28)
	if err != nil {
		return nil, err
	}
	latRaw, err := r.Int(27)
	if err != nil {
		return nil, err
	}
	epfs, err := r.Uint(4)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(10); err != nil { // spare
		return nil, err
	}
	raim, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(19); err != nil { // radio status, not surfaced
		return nil, err
	}

	lat, lon := latLonFromRaw(latRaw, lonRaw)

	return &BaseStationReport{
		Year:              int(year),
		Month:             int(month),
		Day:               int(day),
		Hour:              int(hour),
		Minute:            int(minute),
		Second:            int(second),
		Latitude:          lat,
		Longitude:         lon,
		PositionAccurate:  accuracy,
		EPFSType:          int(epfs),
		RAIM:              raim,
	}, nil
}

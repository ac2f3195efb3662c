package ais

import "github.com/goblimey/go-nmea-ais/ais/bits"

// decodeClassAPositionReport decodes types 1, 2 and 3 (the class A
// position report schemas, which are identical except for the type
// field already consumed by the caller).
func decodeClassAPositionReport(r *bits.Reader, msgType int) (*VesselDynamicData, error) {
	navStatusRaw, err := r.Uint(4)
	if err != nil {
		return nil, err
	}
	rotRaw, err := r.Int(8)
	if err != nil {
		return nil, err
	}
	sogRaw, err := r.Uint(10)
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
	cogRaw, err := r.Uint(12)
	if err != nil {
		return nil, err
	}
	headingRaw, err := r.Uint(9)
	if err != nil {
		return nil, err
	}
	utcSecRaw, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	manoeuvre, err := r.Uint(2)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(3); err != nil { // spare
		return nil, err
	}
	raim, err := r.Bool()
	if err != nil {
		return nil, err
	}
	radioStatus, err := r.Uint(19)
	if err != nil {
		return nil, err
	}

	lat, lon := latLonFromRaw(latRaw, lonRaw)
	dir, degPerMin, turnOK := rateOfTurn(rotRaw)
	rs := uint32(radioStatus)

	return &VesselDynamicData{
		NavStatus:          NavStatus(navStatusRaw),
		HasNavStatus:       true,
		RateOfTurnRaw:      int(rotRaw),
		TurnDirection:      dir,
		TurnDegreesPerMin:  degPerMin,
		TurnDegPerMinOK:    turnOK,
		SOGKnots:           sogFromRaw(sogRaw),
		PositionAccurate:   accuracy,
		Latitude:           lat,
		Longitude:          lon,
		COG:                cogFromRaw(cogRaw),
		TrueHeading:        headingFromRaw(headingRaw),
		UTCSecond:          int(utcSecRaw),
		UTCSecondStatus:    utcSecondStatus(int(utcSecRaw)),
		ManoeuvreIndicator: int(manoeuvre),
		RAIM:               raim,
		RadioStatus:        &rs,
	}, nil
}

// decodeClassBPositionReport decodes type 18 (standard class B position
// report).
func decodeClassBPositionReport(r *bits.Reader) (*VesselDynamicData, error) {
	if _, err := r.Uint(8); err != nil { // reserved
		return nil, err
	}
	sogRaw, err := r.Uint(10)
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
	cogRaw, err := r.Uint(12)
	if err != nil {
		return nil, err
	}
	headingRaw, err := r.Uint(9)
	if err != nil {
		return nil, err
	}
	utcSecRaw, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(2); err != nil { // regional reserved
		return nil, err
	}
	if _, err := r.Uint(4); err != nil { // CS/display/DSC/band flags
		return nil, err
	}
	if _, err := r.Uint(1); err != nil { // message22 flag
		return nil, err
	}
	if _, err := r.Uint(1); err != nil { // assigned flag
		return nil, err
	}
	raim, err := r.Bool()
	if err != nil {
		return nil, err
	}
	radioStatus, err := r.Uint(20)
	if err != nil {
		return nil, err
	}

	lat, lon := latLonFromRaw(latRaw, lonRaw)
	rs := uint32(radioStatus)

	return &VesselDynamicData{
		ClassBFlags:      true,
		SOGKnots:         sogFromRaw(sogRaw),
		PositionAccurate: accuracy,
		Latitude:         lat,
		Longitude:        lon,
		COG:              cogFromRaw(cogRaw),
		TrueHeading:      headingFromRaw(headingRaw),
		UTCSecond:        int(utcSecRaw),
		UTCSecondStatus:  utcSecondStatus(int(utcSecRaw)),
		RAIM:             raim,
		RadioStatus:      &rs,
	}, nil
}

// decodeExtendedClassBPositionReport decodes type 19, which folds
// vessel name and basic static fields into the same sentence as the
// dynamic report (spec.md's VesselDynamicData entry for type 19).
func decodeExtendedClassBPositionReport(r *bits.Reader) (*VesselDynamicData, error) {
	if _, err := r.Uint(8); err != nil { // reserved
		return nil, err
	}
	sogRaw, err := r.Uint(10)
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
	cogRaw, err := r.Uint(12)
	if err != nil {
		return nil, err
	}
	headingRaw, err := r.Uint(9)
	if err != nil {
		return nil, err
	}
	utcSecRaw, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(4); err != nil { // regional reserved
		return nil, err
	}
	name, err := r.SixBitASCII(20)
	if err != nil {
		return nil, err
	}
	shipType, err := r.Uint(8)
	if err != nil {
		return nil, err
	}
	bow, err := r.Uint(9)
	if err != nil {
		return nil, err
	}
	stern, err := r.Uint(9)
	if err != nil {
		return nil, err
	}
	port, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	starboard, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	epfs, err := r.Uint(4)
	if err != nil {
		return nil, err
	}
	raim, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(1); err != nil { // DTE
		return nil, err
	}
	if _, err := r.Uint(1); err != nil { // assigned
		return nil, err
	}

	lat, lon := latLonFromRaw(latRaw, lonRaw)

	return &VesselDynamicData{
		ClassBFlags:      true,
		SOGKnots:         sogFromRaw(sogRaw),
		PositionAccurate: accuracy,
		Latitude:         lat,
		Longitude:        lon,
		COG:              cogFromRaw(cogRaw),
		TrueHeading:      headingFromRaw(headingRaw),
		UTCSecond:        int(utcSecRaw),
		UTCSecondStatus:  utcSecondStatus(int(utcSecRaw)),
		RAIM:             raim,
		Extended: &ExtendedClassBStatic{
			Name:          name,
			ShipType:      int(shipType),
			ShipTypeLabel: shipTypeLookup(int(shipType)),
			DimBow:        int(bow),
			DimStern:      int(stern),
			DimPort:       int(port),
			DimStarboard:  int(starboard),
			EPFSType:      int(epfs),
		},
	}, nil
}

// decodeLongRangePositionReport decodes type 27 (long-range AIS
// broadcast message, a reduced-precision schema for satellite reception).
func decodeLongRangePositionReport(r *bits.Reader) (*VesselDynamicData, error) {
	accuracy, err := r.Bool()
	if err != nil {
		return nil, err
	}
	raim, err := r.Bool()
	if err != nil {
		return nil, err
	}
	navStatusRaw, err := r.Uint(4)
	if err != nil {
		return nil, err
	}
	lonRaw, err := r.Int(18)
	if err != nil {
		return nil, err
	}
	latRaw, err := r.Int(17)
	if err != nil {
		return nil, err
	}
	sogRaw, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	cogRaw, err := r.Uint(9)
	if err != nil {
		return nil, err
	}
	gnssFlag, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(1); err != nil { // spare
		return nil, err
	}

	var lat, lon *float64
	lonDeg := float64(lonRaw) / 600.0
	latDeg := float64(latRaw) / 600.0
	if lonDeg >= -180 && lonDeg <= 180 {
		lon = &lonDeg
	}
	if latDeg >= -90 && latDeg <= 90 {
		lat = &latDeg
	}

	var sog *float64
	if sogRaw != 63 {
		v := float64(sogRaw)
		sog = &v
	}
	var cog *float64
	if cogRaw != 511 {
		v := float64(cogRaw)
		cog = &v
	}

	return &VesselDynamicData{
		NavStatus:        NavStatus(navStatusRaw),
		HasNavStatus:     true,
		PositionAccurate: accuracy,
		Latitude:         lat,
		Longitude:        lon,
		SOGKnots:         sog,
		COG:              cog,
		RAIM:             raim,
		CurrentGNSSFix:   gnssFlag,
	}, nil
}

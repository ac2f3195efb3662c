package ais

import "github.com/goblimey/go-nmea-ais/ais/bits"

// decodeInterrogation decodes type 15. The schema allows up to two
// interrogated stations with up to two requested message ids each; this
// decoder surfaces the first station unconditionally and the second
// when the bit stream has enough bits left for it.
func decodeInterrogation(r *bits.Reader) (*InterrogationMessage, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	station1, err := r.Uint(30)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(6); err != nil { // message 1.1 type
		return nil, err
	}
	if _, err := r.Uint(12); err != nil { // offset 1.1
		return nil, err
	}

	msg := &InterrogationMessage{Station1MMSI: uint32(station1)}

	if r.Remaining() < 32 {
		return msg, nil
	}
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	if _, err := r.Uint(6); err != nil { // message 1.2 type, if present
		return nil, err
	}
	if _, err := r.Uint(12); err != nil { // offset 1.2
		return nil, err
	}

	if r.Remaining() < 30 {
		return msg, nil
	}
	station2, err := r.Uint(30)
	if err != nil {
		return msg, nil
	}
	s2 := uint32(station2)
	msg.Station2MMSI = &s2
	return msg, nil
}

// decodeAssignmentMode decodes type 16.
func decodeAssignmentMode(r *bits.Reader) (*AssignmentModeCommand, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	destA, err := r.Uint(30)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(12); err != nil { // offset A
		return nil, err
	}
	if _, err := r.Uint(10); err != nil { // increment A
		return nil, err
	}

	cmd := &AssignmentModeCommand{DestinationAMMSI: uint32(destA)}
	if r.Remaining() < 52 {
		return cmd, nil
	}
	destB, err := r.Uint(30)
	if err != nil {
		return cmd, nil
	}
	if _, err := r.Uint(12); err != nil { // offset B
		return cmd, nil
	}
	if _, err := r.Uint(10); err != nil { // increment B
		return cmd, nil
	}
	b := uint32(destB)
	cmd.DestinationBMMSI = &b
	return cmd, nil
}

// decodeDGNSSBroadcast decodes type 17 (DGNSS broadcast binary message).
func decodeDGNSSBroadcast(r *bits.Reader) (*DGNSSBroadcast, error) {
	if _, err := r.Uint(2); err != nil { // spare
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
	if _, err := r.Uint(5); err != nil { // spare
		return nil, err
	}

	data, err := readRemainingBits(r)
	if err != nil {
		return nil, err
	}

	var lon, lat *float64
	lonDeg := float64(lonRaw) / 600.0
	latDeg := float64(latRaw) / 600.0
	if lonDeg >= -180 && lonDeg <= 180 {
		lon = &lonDeg
	}
	if latDeg >= -90 && latDeg <= 90 {
		lat = &latDeg
	}

	return &DGNSSBroadcast{Latitude: lat, Longitude: lon, Data: data}, nil
}

// decodeDataLinkManagement decodes type 20, counting the number of
// 30-bit reservation blocks present (up to 4).
func decodeDataLinkManagement(r *bits.Reader) (*DataLinkManagement, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	count := 0
	for r.Remaining() >= 30 && count < 4 {
		if _, err := r.Uint(30); err != nil {
			return nil, err
		}
		count++
	}
	return &DataLinkManagement{Reservations: count}, nil
}

// decodeAidToNavigation decodes type 21 (aid-to-navigation report).
func decodeAidToNavigation(r *bits.Reader) (*AidToNavigationReport, error) {
	aidType, err := r.Uint(5)
	if err != nil {
		return nil, err
	}
	name, err := r.SixBitASCII(20)
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
	utcSec, err := r.Uint(6)
	if err != nil {
		return nil, err
	}
	offPosition, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(8); err != nil { // regional reserved
		return nil, err
	}
	raim, err := r.Bool()
	if err != nil {
		return nil, err
	}
	virtual, err := r.Bool()
	if err != nil {
		return nil, err
	}

	lat, lon := latLonFromRaw(latRaw, lonRaw)

	_ = raim
	return &AidToNavigationReport{
		AidType:          int(aidType),
		Name:             name,
		PositionAccurate: accuracy,
		Latitude:         lat,
		Longitude:        lon,
		DimBow:           int(bow),
		DimStern:         int(stern),
		DimPort:          int(port),
		DimStarboard:     int(starboard),
		EPFSType:         int(epfs),
		UTCSecond:        int(utcSec),
		OffPosition:      offPosition,
		VirtualAid:       virtual,
	}, nil
}

// decodeChannelManagement decodes type 22. Only the channel assignment
// and power fields are extracted; reading stops after the power bit, so
// the region/address tail (mutually-exclusive geographic box or
// addressed MMSI pair) is neither read nor length-checked, and the
// Addressed and Zone fields are left at their zero values.
func decodeChannelManagement(r *bits.Reader) (*ChannelManagement, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	chanA, err := r.Uint(12)
	if err != nil {
		return nil, err
	}
	chanB, err := r.Uint(12)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(4); err != nil { // tx/rx mode
		return nil, err
	}
	power, err := r.Bool()
	if err != nil {
		return nil, err
	}

	return &ChannelManagement{
		ChannelA: int(chanA),
		ChannelB: int(chanB),
		Power:    power,
	}, nil
}

// decodeGroupAssignment decodes type 23.
func decodeGroupAssignment(r *bits.Reader) (*GroupAssignment, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	if _, err := r.Uint(18); err != nil { // NE longitude
		return nil, err
	}
	if _, err := r.Uint(17); err != nil { // NE latitude
		return nil, err
	}
	if _, err := r.Uint(18); err != nil { // SW longitude
		return nil, err
	}
	if _, err := r.Uint(17); err != nil { // SW latitude
		return nil, err
	}
	stationType, err := r.Uint(4)
	if err != nil {
		return nil, err
	}
	shipType, err := r.Uint(8)
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(22); err != nil { // spare
		return nil, err
	}
	txRxMode, err := r.Uint(2)
	if err != nil {
		return nil, err
	}

	return &GroupAssignment{
		StationType: int(stationType),
		ShipType:    int(shipType),
		TxRxMode:    int(txRxMode),
	}, nil
}

package ais

import "github.com/goblimey/go-nmea-ais/ais/bits"

// decodeAcknowledge decodes types 7 and 13 (acknowledge / safety-related
// acknowledge), which share a schema: up to four destination MMSIs each
// followed by the sequence number being acknowledged (not surfaced).
func decodeAcknowledge(r *bits.Reader) (*Acknowledge, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}

	ack := &Acknowledge{}
	slots := []**uint32{&ack.DestMMSI1, &ack.DestMMSI2, &ack.DestMMSI3, &ack.DestMMSI4}
	for _, slot := range slots {
		if r.Remaining() < 32 {
			break
		}
		mmsi, err := r.Uint(30)
		if err != nil {
			return nil, err
		}
		if _, err := r.Uint(2); err != nil { // sequence number
			return nil, err
		}
		m := uint32(mmsi)
		*slot = &m
	}
	return ack, nil
}

// decodeSARAircraftPosition decodes type 9.
func decodeSARAircraftPosition(r *bits.Reader) (*StandardSARAircraftPosition, error) {
	altRaw, err := r.Uint(12)
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
	utcSec, err := r.Uint(6)
	if err != nil {
		return nil, err
	}

	var alt *int
	if altRaw != 4095 {
		v := int(altRaw)
		alt = &v
	}

	lat, lon := latLonFromRaw(latRaw, lonRaw)

	return &StandardSARAircraftPosition{
		AltitudeMetres:   alt,
		SOGKnots:         sogFromRaw(sogRaw),
		PositionAccurate: accuracy,
		Latitude:         lat,
		Longitude:        lon,
		COG:              cogFromRaw(cogRaw),
		UTCSecond:        int(utcSec),
	}, nil
}

// decodeUTCInquiry decodes type 10.
func decodeUTCInquiry(r *bits.Reader) (*UTCInquiryMessage, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	dest, err := r.Uint(30)
	if err != nil {
		return nil, err
	}
	return &UTCInquiryMessage{DestMMSI: uint32(dest)}, nil
}

// decodeSingleSlotBinary decodes type 25 (single slot binary message).
func decodeSingleSlotBinary(r *bits.Reader) (*SingleSlotBinary, error) {
	addressed, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Bool(); err != nil { // structured flag, not surfaced
		return nil, err
	}

	msg := &SingleSlotBinary{Addressed: addressed}
	if addressed {
		if r.Remaining() < 30 {
			return msg, nil
		}
		dest, err := r.Uint(30)
		if err != nil {
			return nil, err
		}
		d := uint32(dest)
		msg.DestinationMMSI = &d
	}

	data, err := readRemainingBits(r)
	if err != nil {
		return nil, err
	}
	msg.ApplicationBits = data
	return msg, nil
}

// decodeMultipleSlotBinary decodes type 26 (multiple slot binary
// message).
func decodeMultipleSlotBinary(r *bits.Reader) (*MultipleSlotBinary, error) {
	addressed, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Bool(); err != nil { // structured flag, not surfaced
		return nil, err
	}

	msg := &MultipleSlotBinary{Addressed: addressed}
	if addressed {
		if r.Remaining() < 30 {
			return msg, nil
		}
		dest, err := r.Uint(30)
		if err != nil {
			return nil, err
		}
		d := uint32(dest)
		msg.DestinationMMSI = &d
	}

	// The final 20 bits are a communication state field, tolerated but
	// not decoded in detail; everything before it is application data.
	if r.Remaining() > 20 {
		appLen := r.Remaining() - 20
		dataBits := appLen
		buf := make([]byte, 0, (dataBits+7)/8)
		for dataBits > 0 {
			take := dataBits
			if take > 8 {
				take = 8
			}
			v, err := r.Uint(take)
			if err != nil {
				return nil, err
			}
			buf = append(buf, byte(v<<(8-take)))
			dataBits -= take
		}
		msg.ApplicationBits = buf
	}
	if _, err := readRemainingBits(r); err != nil { // drain communication state
		return nil, err
	}
	return msg, nil
}

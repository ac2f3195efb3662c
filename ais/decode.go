package ais

import (
	"fmt"

	"github.com/goblimey/go-nmea-ais/ais/bits"
	"github.com/goblimey/go-nmea-ais/ais/lookup"
)

// commonHeader is the 6-bit type, 2-bit repeat indicator and 30-bit MMSI
// shared by every AIS payload type (spec.md §4.7 step 2).
type commonHeader struct {
	Type  int
	MMSI  uint32
}

func readCommonHeader(r *bits.Reader) (commonHeader, error) {
	t, err := r.Uint(6)
	if err != nil {
		return commonHeader{}, err
	}
	if _, err := r.Uint(2); err != nil { // repeat indicator, not surfaced on the variants
		return commonHeader{}, err
	}
	mmsi, err := r.Uint(30)
	if err != nil {
		return commonHeader{}, err
	}
	return commonHeader{Type: int(t), MMSI: uint32(mmsi)}, nil
}

// Decode turns an assembled AIS bit vector into a Message. bitsBuf holds
// numBits significant bits (see ais.decodeArmor); channel is the radio
// channel the fragments arrived on.
func Decode(bitsBuf []byte, numBits uint, channel byte) (*Message, error) {
	r := bits.NewReader(bitsBuf, numBits)
	hdr, err := readCommonHeader(r)
	if err != nil {
		return nil, fmt.Errorf("reading AIS common header: %w", err)
	}

	msg := &Message{Type: hdr.Type, Channel: channel, MMSI: hdr.MMSI}

	switch hdr.Type {
	case 1, 2, 3:
		d, err := decodeClassAPositionReport(r, hdr.Type)
		if err != nil {
			return nil, err
		}
		msg.VesselDynamic = d
	case 18:
		d, err := decodeClassBPositionReport(r)
		if err != nil {
			return nil, err
		}
		msg.VesselDynamic = d
	case 19:
		d, err := decodeExtendedClassBPositionReport(r)
		if err != nil {
			return nil, err
		}
		msg.VesselDynamic = d
	case 27:
		d, err := decodeLongRangePositionReport(r)
		if err != nil {
			return nil, err
		}
		msg.VesselDynamic = d
	case 5:
		a, b, err := decodeStaticAndVoyageData(r)
		if err != nil {
			return nil, err
		}
		msg.VesselStaticA = a
		msg.VesselStaticB = b
	case 24:
		a, b, err := decodeStaticDataReport(r, hdr.MMSI)
		if err != nil {
			return nil, err
		}
		msg.VesselStaticA = a
		msg.VesselStaticB = b
	case 4, 11:
		d, err := decodeBaseStationReport(r)
		if err != nil {
			return nil, err
		}
		msg.BaseStation = d
	case 6:
		d, err := decodeBinaryAddressedMessage(r)
		if err != nil {
			return nil, err
		}
		msg.Binary = d
	case 8:
		d, err := decodeBinaryBroadcastMessage(r)
		if err != nil {
			return nil, err
		}
		msg.Binary = d
	case 12:
		d, err := decodeAddressedSafety(r)
		if err != nil {
			return nil, err
		}
		msg.Safety = d
	case 14:
		d, err := decodeSafetyBroadcast(r)
		if err != nil {
			return nil, err
		}
		msg.Safety = d
	case 15:
		d, err := decodeInterrogation(r)
		if err != nil {
			return nil, err
		}
		msg.Interrogation = d
	case 16:
		d, err := decodeAssignmentMode(r)
		if err != nil {
			return nil, err
		}
		msg.Assignment = d
	case 17:
		d, err := decodeDGNSSBroadcast(r)
		if err != nil {
			return nil, err
		}
		msg.DGNSS = d
	case 20:
		d, err := decodeDataLinkManagement(r)
		if err != nil {
			return nil, err
		}
		msg.DataLinkMgmt = d
	case 21:
		d, err := decodeAidToNavigation(r)
		if err != nil {
			return nil, err
		}
		msg.AidToNav = d
	case 22:
		d, err := decodeChannelManagement(r)
		if err != nil {
			return nil, err
		}
		msg.ChannelMgmt = d
	case 23:
		d, err := decodeGroupAssignment(r)
		if err != nil {
			return nil, err
		}
		msg.GroupAssign = d
	case 7, 13:
		d, err := decodeAcknowledge(r)
		if err != nil {
			return nil, err
		}
		msg.Ack = d
	case 9:
		d, err := decodeSARAircraftPosition(r)
		if err != nil {
			return nil, err
		}
		msg.SARAircraft = d
	case 10:
		d, err := decodeUTCInquiry(r)
		if err != nil {
			return nil, err
		}
		msg.UTCInquiry = d
	case 25:
		d, err := decodeSingleSlotBinary(r)
		if err != nil {
			return nil, err
		}
		msg.SingleSlot = d
	case 26:
		d, err := decodeMultipleSlotBinary(r)
		if err != nil {
			return nil, err
		}
		msg.MultiSlot = d
	default:
		return nil, fmt.Errorf("%w: type %d", ErrUnsupportedType, hdr.Type)
	}

	return msg, nil
}

// ErrUnsupportedType is returned (wrapped) when the message type is
// syntactically valid but this module has no schema for it.
var ErrUnsupportedType = fmt.Errorf("AIS message type not recognised")

// DecodeArmoredPayload decodes an already-assembled armored payload
// string into a Message: it unarmors the characters, builds the bit
// vector and dispatches to the per-type decoder in one step.
func DecodeArmoredPayload(payload string, fillBits int, channel byte) (*Message, error) {
	buf, numBits, err := decodeArmor(payload, fillBits)
	if err != nil {
		return nil, err
	}
	return Decode(buf, numBits, channel)
}

// --- sentinel conventions (spec.md §4.7 step 4) ---

func sogFromRaw(raw uint64) *float64 {
	if raw == 1023 {
		return nil
	}
	v := float64(raw) / 10.0
	return &v
}

func cogFromRaw(raw uint64) *float64 {
	if raw == 3600 {
		return nil
	}
	v := float64(raw) / 10.0
	return &v
}

func headingFromRaw(raw uint64) *int {
	if raw == 511 {
		return nil
	}
	v := int(raw)
	return &v
}

// rateOfTurn converts the raw signed ROT field into degrees/min plus a
// direction tag, per spec.md §4.7 step 4.
func rateOfTurn(raw int64) (dir TurnDirection, degPerMin float64, ok bool) {
	switch raw {
	case -128:
		return TurnNoInfo, 0, false
	case 0:
		return TurnNotTurning, 0, true
	case 127:
		return TurnStarboard, 0, false // >= 5 deg/30s, magnitude not resolvable
	case -127:
		return TurnPort, 0, false
	}
	sign := 1.0
	if raw < 0 {
		sign = -1.0
		dir = TurnPort
	} else {
		dir = TurnStarboard
	}
	mag := float64(raw)
	if mag < 0 {
		mag = -mag
	}
	degPerMin = sign * (mag / 4.733) * (mag / 4.733)
	return dir, degPerMin, true
}

func latLonFromRaw(latRaw, lonRaw int64) (*float64, *float64) {
	var lat, lon *float64
	if latRaw != 0x3412140 {
		v := float64(latRaw) / 600000.0
		if v >= -90 && v <= 90 {
			lat = &v
		}
	}
	if lonRaw != 0x6791AC0 {
		v := float64(lonRaw) / 600000.0
		if v >= -180 && v <= 180 {
			lon = &v
		}
	}
	return lat, lon
}

func utcSecondStatus(raw int) UTCSecondStatus {
	switch raw {
	case 60:
		return UTCSecondNotAvailable
	case 61:
		return UTCSecondManual
	case 62:
		return UTCSecondDeadReckoning
	case 63:
		return UTCSecondInoperative
	default:
		return UTCSecondNormal
	}
}

func draughtFromRaw(raw uint64) *float64 {
	if raw == 0 {
		return nil
	}
	v := float64(raw) / 10.0
	return &v
}

// isAuxiliaryMMSI reports whether mmsi falls in the range used by
// auxiliary craft of a parent ship (98MIDxxxx), which changes how type
// 24 part B's mothership/dimension field is interpreted.
func isAuxiliaryMMSI(mmsi uint32) bool {
	return mmsi/10000000 == 98
}

func shipTypeLookup(code int) string {
	return lookup.ShipTypeLabel(code)
}

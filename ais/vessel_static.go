package ais

import (
	"fmt"

	"github.com/goblimey/go-nmea-ais/ais/bits"
)

// decodeStaticAndVoyageData decodes type 5 (static and voyage-related
// data), which carries both VesselStaticDataA and VesselStaticDataB
// shaped fields in a single sentence.
func decodeStaticAndVoyageData(r *bits.Reader) (*VesselStaticDataA, *VesselStaticDataB, error) {
	version, err := r.Uint(2)
	if err != nil {
		return nil, nil, err
	}
	imo, err := r.Uint(30)
	if err != nil {
		return nil, nil, err
	}
	callSign, err := r.SixBitASCII(7)
	if err != nil {
		return nil, nil, err
	}
	name, err := r.SixBitASCII(20)
	if err != nil {
		return nil, nil, err
	}
	shipType, err := r.Uint(8)
	if err != nil {
		return nil, nil, err
	}
	bow, err := r.Uint(9)
	if err != nil {
		return nil, nil, err
	}
	stern, err := r.Uint(9)
	if err != nil {
		return nil, nil, err
	}
	port, err := r.Uint(6)
	if err != nil {
		return nil, nil, err
	}
	starboard, err := r.Uint(6)
	if err != nil {
		return nil, nil, err
	}
	epfs, err := r.Uint(4)
	if err != nil {
		return nil, nil, err
	}
	etaMonth, err := r.Uint(4)
	if err != nil {
		return nil, nil, err
	}
	etaDay, err := r.Uint(5)
	if err != nil {
		return nil, nil, err
	}
	etaHour, err := r.Uint(5)
	if err != nil {
		return nil, nil, err
	}
	etaMinute, err := r.Uint(6)
	if err != nil {
		return nil, nil, err
	}
	draughtRaw, err := r.Uint(8)
	if err != nil {
		return nil, nil, err
	}
	destination, err := r.SixBitASCII(20)
	if err != nil {
		return nil, nil, err
	}
	dte, err := r.Bool()
	if err != nil {
		return nil, nil, err
	}

	a := &VesselStaticDataA{
		AISVersion: int(version),
		IMONumber:  uint32(imo),
		CallSign:   callSign,
		Name:       name,
	}
	b := &VesselStaticDataB{
		ShipType:      int(shipType),
		ShipTypeLabel: shipTypeLookup(int(shipType)),
		DimBow:        int(bow),
		DimStern:      int(stern),
		DimPort:       int(port),
		DimStarboard:  int(starboard),
		EPFSType:      int(epfs),
		ETAMonth:      int(etaMonth),
		ETADay:        int(etaDay),
		ETAHour:       int(etaHour),
		ETAMinute:     int(etaMinute),
		DraughtMetres: draughtFromRaw(draughtRaw),
		Destination:   destination,
		DTE:           dte,
	}
	return a, b, nil
}

// decodeStaticDataReport decodes type 24, dispatching on the part number
// immediately following the MMSI (spec.md §4.7 step 5).
func decodeStaticDataReport(r *bits.Reader, mmsi uint32) (*VesselStaticDataA, *VesselStaticDataB, error) {
	part, err := r.Uint(2)
	if err != nil {
		return nil, nil, err
	}
	switch part {
	case 0:
		name, err := r.SixBitASCII(20)
		if err != nil {
			return nil, nil, err
		}
		return &VesselStaticDataA{PartNumber: 0, Name: name}, nil, nil
	case 1:
		b, err := decodeStaticDataReportPartB(r, mmsi)
		if err != nil {
			return nil, nil, err
		}
		return nil, b, nil
	default:
		return nil, nil, fmt.Errorf("%w: type 24 part number %d", ErrUnsupportedType, part)
	}
}

func decodeStaticDataReportPartB(r *bits.Reader, mmsi uint32) (*VesselStaticDataB, error) {
	shipType, err := r.Uint(8)
	if err != nil {
		return nil, err
	}
	if _, err := r.SixBitASCII(3); err != nil { // vendor id
		return nil, err
	}
	if _, err := r.Uint(4); err != nil { // unit model code
		return nil, err
	}
	if _, err := r.Uint(20); err != nil { // serial number
		return nil, err
	}
	callSign, err := r.SixBitASCII(7)
	if err != nil {
		return nil, err
	}

	b := &VesselStaticDataB{
		PartNumber:    1,
		CallSign:      callSign,
		ShipType:      int(shipType),
		ShipTypeLabel: shipTypeLookup(int(shipType)),
	}

	// Dimensions and mothership MMSI share the same 30 bits; which is
	// meant depends on the reporting MMSI's range (auxiliary craft use
	// the field for their parent ship's MMSI instead of dimensions).
	if isAuxiliaryMMSI(mmsi) {
		mothership, err := r.Uint(30)
		if err != nil {
			return nil, err
		}
		m := uint32(mothership)
		b.MothershipMMSI = &m
	} else {
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
		b.DimBow = int(bow)
		b.DimStern = int(stern)
		b.DimPort = int(port)
		b.DimStarboard = int(starboard)
	}

	if _, err := r.Uint(6); err != nil { // spare
		return nil, err
	}

	return b, nil
}

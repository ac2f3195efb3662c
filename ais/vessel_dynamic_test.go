package ais

import (
	"fmt"
	"testing"

	"github.com/goblimey/go-nmea-ais/ais/bits"
	"github.com/kylelemons/godebug/diff"
)

// dumpDynamic renders a VesselDynamicData with its pointer fields
// dereferenced (or "nil"), so two instances can be compared with
// diff.Diff without the comparison depending on pointer identity.
func dumpDynamic(d *VesselDynamicData) string {
	deref := func(f *float64) string {
		if f == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", *f)
	}
	derefInt := func(i *int) string {
		if i == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", *i)
	}
	derefU32 := func(u *uint32) string {
		if u == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", *u)
	}
	return fmt.Sprintf(
		"NavStatus:%v HasNavStatus:%v TurnDirection:%v TurnDegreesPerMin:%v TurnDegPerMinOK:%v "+
			"SOGKnots:%s PositionAccurate:%v Latitude:%s Longitude:%s COG:%s TrueHeading:%s "+
			"UTCSecond:%v UTCSecondStatus:%v ManoeuvreIndicator:%v RAIM:%v RadioStatus:%s "+
			"CurrentGNSSFix:%v ClassBFlags:%v",
		d.NavStatus, d.HasNavStatus, d.TurnDirection, d.TurnDegreesPerMin, d.TurnDegPerMinOK,
		deref(d.SOGKnots), d.PositionAccurate, deref(d.Latitude), deref(d.Longitude),
		deref(d.COG), derefInt(d.TrueHeading), d.UTCSecond, d.UTCSecondStatus,
		d.ManoeuvreIndicator, d.RAIM, derefU32(d.RadioStatus), d.CurrentGNSSFix, d.ClassBFlags,
	)
}

// bitField is one value to pack, MSB-first, into a test bit stream.
type bitField struct {
	value uint64
	width uint
}

// packBits lays out fields MSB-first into a byte slice, the same
// convention bits.Reader reads in, and returns the buffer plus the
// total number of significant bits written.
func packBits(fields []bitField) ([]byte, uint) {
	var total uint
	for _, f := range fields {
		total += f.width
	}
	buf := make([]byte, (total+7)/8)
	var pos uint
	for _, f := range fields {
		for i := uint(0); i < f.width; i++ {
			bit := (f.value >> (f.width - 1 - i)) & 1
			if bit == 1 {
				buf[pos/8] |= 1 << (7 - pos%8)
			}
			pos++
		}
	}
	return buf, total
}

func TestDecodeClassAPositionReportAllSentinels(t *testing.T) {
	buf, n := packBits([]bitField{
		{0, 4},            // nav status: under way using engine
		{0x80, 8},         // rate of turn: -128, no info
		{1023, 10},        // SOG: absent
		{1, 1},            // position accuracy
		{0x6791AC0, 28},   // longitude: absent sentinel
		{0x3412140, 27},   // latitude: absent sentinel
		{3600, 12},        // COG: absent
		{511, 9},          // heading: absent
		{60, 6},           // UTC second: not available
		{0, 2},            // manoeuvre indicator
		{0, 3},            // spare
		{0, 1},            // RAIM
		{0, 19},           // radio status
	})
	r := bits.NewReader(buf, n)
	d, err := decodeClassAPositionReport(r, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.NavStatus != NavUnderWayUsingEngine {
		t.Errorf("NavStatus = %v, want NavUnderWayUsingEngine", d.NavStatus)
	}
	if d.TurnDirection != TurnNoInfo || d.TurnDegPerMinOK {
		t.Errorf("rate of turn = %v (ok=%v), want TurnNoInfo/not ok", d.TurnDirection, d.TurnDegPerMinOK)
	}
	if d.SOGKnots != nil {
		t.Errorf("SOGKnots = %v, want nil (absent)", *d.SOGKnots)
	}
	if !d.PositionAccurate {
		t.Errorf("PositionAccurate = false, want true")
	}
	if d.Latitude != nil || d.Longitude != nil {
		t.Errorf("lat/lon = %v/%v, want nil/nil (sentinels)", d.Latitude, d.Longitude)
	}
	if d.COG != nil {
		t.Errorf("COG = %v, want nil (absent)", *d.COG)
	}
	if d.TrueHeading != nil {
		t.Errorf("TrueHeading = %v, want nil (absent)", *d.TrueHeading)
	}
	if d.UTCSecondStatus != UTCSecondNotAvailable {
		t.Errorf("UTCSecondStatus = %v, want UTCSecondNotAvailable", d.UTCSecondStatus)
	}
	if d.RadioStatus == nil || *d.RadioStatus != 0 {
		t.Errorf("RadioStatus = %v, want 0", d.RadioStatus)
	}
}

func TestDecodeClassAPositionReportOrdinaryValues(t *testing.T) {
	// Latitude 10.0 deg north = 10.0*600000 = 6000000; longitude -20.0
	// deg = -20.0*600000 = -12000000, encoded as 28-bit two's complement.
	const latRaw = 6000000
	lonRaw := int64(-12000000)
	buf, n := packBits([]bitField{
		{1, 4},                   // nav status: at anchor
		{0, 8},                   // rate of turn: not turning
		{100, 10},                // SOG: 10.0 knots
		{1, 1},                   // position accuracy
		{uint64(int64(lonRaw)) & (1<<28 - 1), 28},
		{uint64(int64(latRaw)) & (1<<27 - 1), 27},
		{1800, 12}, // COG: 180.0 deg
		{90, 9},    // heading: 90 deg
		{30, 6},    // UTC second: 30, normal
		{0, 2},
		{0, 3},
		{1, 1}, // RAIM true
		{0, 19},
	})
	r := bits.NewReader(buf, n)
	d, err := decodeClassAPositionReport(r, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sog, lat, lon, cog := 10.0, 10.0, -20.0, 180.0
	heading := 90
	radioStatus := uint32(0)
	want := &VesselDynamicData{
		NavStatus:          NavAtAnchor,
		HasNavStatus:       true,
		TurnDirection:      TurnNotTurning,
		TurnDegPerMinOK:    true,
		SOGKnots:           &sog,
		PositionAccurate:   true,
		Latitude:           &lat,
		Longitude:          &lon,
		COG:                &cog,
		TrueHeading:        &heading,
		UTCSecond:          30,
		UTCSecondStatus:    UTCSecondNormal,
		ManoeuvreIndicator: 0,
		RAIM:               true,
		RadioStatus:        &radioStatus,
	}

	if delta := diff.Diff(dumpDynamic(want), dumpDynamic(d)); delta != "" {
		t.Errorf("VesselDynamicData mismatch:\n%s", delta)
	}
}

func TestDecodeLongRangePositionReportSentinels(t *testing.T) {
	buf, n := packBits([]bitField{
		{1, 1}, // accuracy
		{0, 1}, // raim
		{0, 4},  // nav status
		{0, 18}, // lon
		{0, 17}, // lat
		{63, 6}, // SOG: absent
		{511, 9}, // COG: absent
		{1, 1},   // current GNSS fix
		{0, 1},   // spare
	})
	r := bits.NewReader(buf, n)
	d, err := decodeLongRangePositionReport(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.SOGKnots != nil {
		t.Errorf("SOGKnots = %v, want nil (absent)", *d.SOGKnots)
	}
	if d.COG != nil {
		t.Errorf("COG = %v, want nil (absent)", *d.COG)
	}
	if !d.CurrentGNSSFix {
		t.Errorf("CurrentGNSSFix = false, want true")
	}
	if !d.PositionAccurate {
		t.Errorf("PositionAccurate = false, want true")
	}
}

func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

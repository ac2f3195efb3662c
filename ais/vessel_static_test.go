package ais

import (
	"fmt"
	"testing"

	"github.com/goblimey/go-nmea-ais/ais/bits"
	"github.com/kylelemons/godebug/diff"
)

// dumpStaticB renders a VesselStaticDataB with its pointer fields
// dereferenced (or "nil"), for the same reason dumpDynamic exists.
func dumpStaticB(b *VesselStaticDataB) string {
	deref := func(f *float64) string {
		if f == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", *f)
	}
	derefU32 := func(u *uint32) string {
		if u == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", *u)
	}
	return fmt.Sprintf(
		"PartNumber:%v CallSign:%q ShipType:%v ShipTypeLabel:%q DimBow:%v DimStern:%v "+
			"DimPort:%v DimStarboard:%v EPFSType:%v ETAMonth:%v ETADay:%v ETAHour:%v ETAMinute:%v "+
			"DraughtMetres:%s Destination:%q DTE:%v MothershipMMSI:%s",
		b.PartNumber, b.CallSign, b.ShipType, b.ShipTypeLabel, b.DimBow, b.DimStern,
		b.DimPort, b.DimStarboard, b.EPFSType, b.ETAMonth, b.ETADay, b.ETAHour, b.ETAMinute,
		deref(b.DraughtMetres), b.Destination, b.DTE, derefU32(b.MothershipMMSI),
	)
}

func sixBitValue(c byte) uint64 {
	if c >= 'A' && c <= 'Z' {
		return uint64(c - 'A' + 1)
	}
	return uint64(c)
}

func packSixBitText(s string, width int) []bitField {
	fields := make([]bitField, 0, width)
	for i := 0; i < width; i++ {
		if i < len(s) {
			fields = append(fields, bitField{sixBitValue(s[i]), 6})
		} else {
			fields = append(fields, bitField{0, 6}) // '@' filler
		}
	}
	return fields
}

func TestDecodeStaticAndVoyageData(t *testing.T) {
	fields := []bitField{
		{0, 2},           // AIS version
		{9074729, 30},    // IMO number
	}
	fields = append(fields, packSixBitText("PROGUY", 7)...)
	fields = append(fields, packSixBitText("TESTSHIP", 20)...)
	fields = append(fields, []bitField{
		{70, 8},  // ship type
		{100, 9}, // bow
		{20, 9},  // stern
		{10, 6},  // port
		{10, 6},  // starboard
		{1, 4},   // EPFS
		{6, 4},   // ETA month
		{15, 5},  // ETA day
		{12, 5},  // ETA hour
		{30, 6},  // ETA minute
		{50, 8},  // draught: 5.0m
	}...)
	fields = append(fields, packSixBitText("ROTTERDAM", 20)...)
	fields = append(fields, bitField{1, 1}) // DTE

	buf, n := packBits(fields)
	r := bits.NewReader(buf, n)
	a, b, err := decodeStaticAndVoyageData(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantA := &VesselStaticDataA{
		AISVersion: 0,
		IMONumber:  9074729,
		CallSign:   "PROGUY",
		Name:       "TESTSHIP",
		PartNumber: 0,
	}
	if d := diff.Diff(fmt.Sprintf("%+v", wantA), fmt.Sprintf("%+v", a)); d != "" {
		t.Errorf("VesselStaticDataA mismatch:\n%s", d)
	}

	draught := 5.0
	wantB := &VesselStaticDataB{
		ShipType:      70,
		ShipTypeLabel: shipTypeLookup(70),
		DimBow:        100,
		DimStern:      20,
		DimPort:       10,
		DimStarboard:  10,
		EPFSType:      1,
		ETAMonth:      6,
		ETADay:        15,
		ETAHour:       12,
		ETAMinute:     30,
		DraughtMetres: &draught,
		Destination:   "ROTTERDAM",
		DTE:           true,
	}
	if d := diff.Diff(dumpStaticB(wantB), dumpStaticB(b)); d != "" {
		t.Errorf("VesselStaticDataB mismatch:\n%s", d)
	}
}

func TestDecodeStaticDataReportPartAAndB(t *testing.T) {
	fieldsA := []bitField{{0, 2}}
	fieldsA = append(fieldsA, packSixBitText("TESTSHIP", 20)...)
	bufA, nA := packBits(fieldsA)
	a, b, err := decodeStaticDataReport(bits.NewReader(bufA, nA), 235012345)
	if err != nil {
		t.Fatalf("unexpected error decoding part A: %v", err)
	}
	if b != nil {
		t.Errorf("part B = %+v, want nil", b)
	}
	if a.Name != "TESTSHIP" {
		t.Errorf("Name = %q, want %q", a.Name, "TESTSHIP")
	}

	fieldsB := []bitField{{1, 2}, {70, 8}}
	fieldsB = append(fieldsB, packSixBitText("ABC", 3)...)  // vendor id
	fieldsB = append(fieldsB, bitField{0, 4})               // unit model
	fieldsB = append(fieldsB, bitField{0, 20})               // serial number
	fieldsB = append(fieldsB, packSixBitText("CALLME", 7)...)
	fieldsB = append(fieldsB,
		bitField{100, 9}, bitField{20, 9}, bitField{10, 6}, bitField{10, 6},
		bitField{0, 6}, // spare
	)
	bufB, nB := packBits(fieldsB)
	_, partB, err := decodeStaticDataReport(bits.NewReader(bufB, nB), 235012345)
	if err != nil {
		t.Fatalf("unexpected error decoding part B: %v", err)
	}
	if partB.CallSign != "CALLME" {
		t.Errorf("CallSign = %q, want %q", partB.CallSign, "CALLME")
	}
	if partB.DimBow != 100 || partB.MothershipMMSI != nil {
		t.Errorf("expected dimensions, not mothership MMSI, for a non-auxiliary MMSI: %+v", partB)
	}
}

func TestDecodeStaticDataReportPartBAuxiliaryCraft(t *testing.T) {
	const auxMMSI = 982351234 // MID 235 under the 98-prefix auxiliary range

	fieldsB := []bitField{{1, 2}, {70, 8}}
	fieldsB = append(fieldsB, packSixBitText("ABC", 3)...)
	fieldsB = append(fieldsB, bitField{0, 4})
	fieldsB = append(fieldsB, bitField{0, 20})
	fieldsB = append(fieldsB, packSixBitText("CALLME", 7)...)
	fieldsB = append(fieldsB, bitField{235012345, 30}, bitField{0, 6})

	buf, n := packBits(fieldsB)
	_, partB, err := decodeStaticDataReport(bits.NewReader(buf, n), auxMMSI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if partB.MothershipMMSI == nil || *partB.MothershipMMSI != 235012345 {
		t.Errorf("MothershipMMSI = %v, want 235012345", partB.MothershipMMSI)
	}
	if partB.DimBow != 0 {
		t.Errorf("DimBow = %d, want 0 (field reinterpreted as mothership MMSI)", partB.DimBow)
	}
}

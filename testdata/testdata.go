// Package testdata holds canonical NMEA/AIS fixtures shared across
// package tests, mirroring the teacher's own testdata.go literals: known
// good sentence lines plus their already-split field slices, so tests in
// different packages exercise the same inputs instead of hand-copying
// strings from each other.
package testdata

// GGAGalileoLine is a Galileo fix with a full set of optional fields
// present.
const GGAGalileoLine = "$GAGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*56"

// GGAGalileoFields is GGAGalileoLine's field list, as envelope.Tokenise
// would split it (talker/sentence id/checksum already stripped).
var GGAGalileoFields = []string{
	"123519", "4807.038", "N", "01131.000", "E", "1", "08",
	"0.9", "545.4", "M", "46.9", "M", "", "",
}

// GGAAbsentPositionLine has no checksum and an empty lat/lon fix.
const GGAAbsentPositionLine = "$GPGGA,123519,,,,,1,08,0.9,545.4,M,46.9,M,,"

// RMCSouthernHemisphereLine is a GPS fix south and east of the equator
// and the Greenwich meridian.
const RMCSouthernHemisphereLine = "$GPRMC,081836,A,3751.65,S,14507.36,E,000.0,360.0,130998,011.3,E*62"

// RMCSouthernHemisphereFields is RMCSouthernHemisphereLine's field list.
var RMCSouthernHemisphereFields = []string{
	"081836", "A", "3751.65", "S", "14507.36", "E",
	"000.0", "360.0", "130998", "011.3", "E",
}

// AISType24PartALine and AISType24PartBLine are the two fragments of a
// real two-part type 24 static data report for MMSI 271041815.
const (
	AISType24PartALine = "!AIVDM,1,1,,A,H42O55i18tMET00000000000000,2*6D"
	AISType24PartBLine = "!AIVDM,1,1,,A,H42O55lti4hhhilD3nink000?050,0*40"
)

// AISChecksumMismatchLine repeats AISType24PartALine's payload with a
// corrupted checksum, for exercising checksum validation.
const AISChecksumMismatchLine = "!AIVDM,1,1,,A,H42O55i18tMET00000000000000,2*00"

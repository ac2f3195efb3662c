package gnss

import (
	"fmt"
	"strings"
)

// field returns fields[i], or "" if the field list is too short. NMEA
// senders sometimes omit trailing optional fields entirely rather than
// leaving them as empty strings between commas; both are treated as
// absent.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// Decode decodes the fields of a single GNSS sentence, given its talker
// and sentence id (as returned by envelope.Tokenise). It returns an
// error when id isn't one of the supported sentence ids; nmea.Parse
// checks Supported first and reports such sentences as Unsupported
// rather than as an error.
func Decode(talker, id string, fields []string) (*Result, error) {
	source := ResolveSystem(talker)

	switch SentenceID(id) {
	case GGA:
		f, err := decodeGGA(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: GGA, Source: source, GGAFields: f}, nil
	case RMC:
		f, err := decodeRMC(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: RMC, Source: source, RMCFields: f}, nil
	case GSA:
		f, err := decodeGSA(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: GSA, Source: source, GSAFields: f}, nil
	case GSV:
		f, err := decodeGSV(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: GSV, Source: source, GSVFields: f}, nil
	case VTG:
		f, err := decodeVTG(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: VTG, Source: source, VTGFields: f}, nil
	case GLL:
		f, err := decodeGLL(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: GLL, Source: source, GLLFields: f}, nil
	case GNS:
		f, err := decodeGNS(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: GNS, Source: source, GNSFields: f}, nil
	case HDT:
		f, err := decodeHDT(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: HDT, Source: source, HDTFields: f}, nil
	case VHW:
		f, err := decodeVHW(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: VHW, Source: source, VHWFields: f}, nil
	case MWV:
		f, err := decodeMWV(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: MWV, Source: source, MWVFields: f}, nil
	case MTW:
		f, err := decodeMTW(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: MTW, Source: source, MTWFields: f}, nil
	case DBS:
		f, err := decodeDBS(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: DBS, Source: source, DBSFields: f}, nil
	case DPT:
		f, err := decodeDPT(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: DPT, Source: source, DPTFields: f}, nil
	case ALM:
		f, err := decodeALM(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: ALM, Source: source, ALMFields: f}, nil
	case DTM:
		f, err := decodeDTM(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: DTM, Source: source, DTMFields: f}, nil
	case MSS:
		f, err := decodeMSS(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: MSS, Source: source, MSSFields: f}, nil
	case STN:
		f, err := decodeSTN(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: STN, Source: source, STNFields: f}, nil
	case VBW:
		f, err := decodeVBW(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: VBW, Source: source, VBWFields: f}, nil
	case ZDA:
		f, err := decodeZDA(fields)
		if err != nil {
			return nil, err
		}
		return &Result{ID: ZDA, Source: source, ZDAFields: f}, nil
	default:
		return nil, fmt.Errorf("unsupported GNSS sentence id %q", id)
	}
}

func decodeGGA(fields []string) (*GGAFields, error) {
	hour, minute, second, _, err := TimeOfDay(field(fields, 0))
	if err != nil {
		return nil, err
	}
	lat, latOK, err := Coordinate(field(fields, 1), field(fields, 2))
	if err != nil {
		return nil, err
	}
	lon, lonOK, err := Coordinate(field(fields, 3), field(fields, 4))
	if err != nil {
		return nil, err
	}
	quality, _, err := OptionalInt(field(fields, 5))
	if err != nil {
		return nil, err
	}
	satellites, _, err := OptionalInt(field(fields, 6))
	if err != nil {
		return nil, err
	}
	hdop, hdopOK, err := OptionalFloat(field(fields, 7))
	if err != nil {
		return nil, err
	}
	alt, altOK, err := OptionalFloat(field(fields, 8))
	if err != nil {
		return nil, err
	}
	geoidSep, geoidOK, err := OptionalFloat(field(fields, 10))
	if err != nil {
		return nil, err
	}
	dgpsAge, dgpsAgeOK, err := OptionalFloat(field(fields, 12))
	if err != nil {
		return nil, err
	}

	return &GGAFields{
		Time:              ComposeTimestamp(0, 0, 0, false, hour, minute, second),
		Latitude:          lat,
		LatitudeOK:        latOK,
		Longitude:         lon,
		LongitudeOK:       lonOK,
		Quality:           quality,
		Satellites:        satellites,
		HDOP:              hdop,
		HDOPOK:            hdopOK,
		Altitude:          alt,
		AltitudeOK:        altOK,
		AltitudeUnit:      field(fields, 9),
		GeoidSeparation:   geoidSep,
		GeoidSeparationOK: geoidOK,
		GeoidUnit:         field(fields, 11),
		DGPSAge:           dgpsAge,
		DGPSAgeOK:         dgpsAgeOK,
		DGPSStationID:     field(fields, 13),
	}, nil
}

func decodeRMC(fields []string) (*RMCFields, error) {
	hour, minute, second, _, err := TimeOfDay(field(fields, 0))
	if err != nil {
		return nil, err
	}
	lat, latOK, err := Coordinate(field(fields, 2), field(fields, 3))
	if err != nil {
		return nil, err
	}
	lon, lonOK, err := Coordinate(field(fields, 4), field(fields, 5))
	if err != nil {
		return nil, err
	}
	sog, sogOK, err := OptionalFloat(field(fields, 6))
	if err != nil {
		return nil, err
	}
	bearing, bearingOK, err := OptionalFloat(field(fields, 7))
	if err != nil {
		return nil, err
	}
	year, month, day, dateOK, err := Date(field(fields, 8))
	if err != nil {
		return nil, err
	}
	magvar, magvarOK, err := OptionalFloat(field(fields, 9))
	if err != nil {
		return nil, err
	}
	if magvarOK && field(fields, 10) == "W" {
		magvar = -magvar
	}

	return &RMCFields{
		Timestamp:         ComposeTimestamp(year, month, day, dateOK, hour, minute, second),
		Status:            field(fields, 1),
		Latitude:          lat,
		LatitudeOK:        latOK,
		Longitude:         lon,
		LongitudeOK:       lonOK,
		SOGKnots:          sog,
		SOGKnotsOK:        sogOK,
		Bearing:           bearing,
		BearingOK:         bearingOK,
		MagneticVariation: magvar,
		MagneticVarOK:     magvarOK,
		Mode:              field(fields, 11),
	}, nil
}

func decodeGSA(fields []string) (*GSAFields, error) {
	mode2, _, err := OptionalInt(field(fields, 1))
	if err != nil {
		return nil, err
	}

	var sats []string
	for i := 2; i <= 13; i++ {
		sv := field(fields, i)
		if sv != "" {
			sats = append(sats, sv)
		}
	}

	pdop, pdopOK, err := OptionalFloat(field(fields, 14))
	if err != nil {
		return nil, err
	}
	hdop, hdopOK, err := OptionalFloat(field(fields, 15))
	if err != nil {
		return nil, err
	}
	vdop, vdopOK, err := OptionalFloat(field(fields, 16))
	if err != nil {
		return nil, err
	}

	return &GSAFields{
		Mode1:      field(fields, 0),
		Mode2:      mode2,
		Satellites: sats,
		PDOP:       pdop,
		PDOPOK:     pdopOK,
		HDOP:       hdop,
		HDOPOK:     hdopOK,
		VDOP:       vdop,
		VDOPOK:     vdopOK,
	}, nil
}

func decodeGSV(fields []string) (*GSVFields, error) {
	total, _, err := OptionalInt(field(fields, 0))
	if err != nil {
		return nil, err
	}
	num, _, err := OptionalInt(field(fields, 1))
	if err != nil {
		return nil, err
	}
	inView, _, err := OptionalInt(field(fields, 2))
	if err != nil {
		return nil, err
	}

	var sats []GSVSatellite
	for i := 3; i < len(fields); i += 4 {
		prnRaw := field(fields, i)
		if prnRaw == "" {
			break
		}
		prn, _, err := OptionalInt(prnRaw)
		if err != nil {
			return nil, err
		}
		elev, elevOK, err := OptionalInt(field(fields, i+1))
		if err != nil {
			return nil, err
		}
		az, azOK, err := OptionalInt(field(fields, i+2))
		if err != nil {
			return nil, err
		}
		snr, snrOK, err := OptionalInt(field(fields, i+3))
		if err != nil {
			return nil, err
		}
		sats = append(sats, GSVSatellite{
			PRN: prn, Elevation: elev, ElevationOK: elevOK,
			Azimuth: az, AzimuthOK: azOK, SNR: snr, SNROK: snrOK,
		})
	}

	return &GSVFields{
		TotalMessages:    total,
		MessageNumber:    num,
		SatellitesInView: inView,
		Satellites:       sats,
	}, nil
}

func decodeVTG(fields []string) (*VTGFields, error) {
	trackTrue, trackTrueOK, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	trackMag, trackMagOK, err := OptionalFloat(field(fields, 2))
	if err != nil {
		return nil, err
	}
	sogKnots, sogKnotsOK, err := OptionalFloat(field(fields, 4))
	if err != nil {
		return nil, err
	}
	sogKmh, sogKmhOK, err := OptionalFloat(field(fields, 6))
	if err != nil {
		return nil, err
	}

	return &VTGFields{
		TrackTrue:       trackTrue,
		TrackTrueOK:     trackTrueOK,
		TrackMagnetic:   trackMag,
		TrackMagneticOK: trackMagOK,
		SOGKnots:        sogKnots,
		SOGKnotsOK:      sogKnotsOK,
		SOGKmh:          sogKmh,
		SOGKmhOK:        sogKmhOK,
		Mode:            field(fields, 8),
	}, nil
}

func decodeGLL(fields []string) (*GLLFields, error) {
	lat, latOK, err := Coordinate(field(fields, 0), field(fields, 1))
	if err != nil {
		return nil, err
	}
	lon, lonOK, err := Coordinate(field(fields, 2), field(fields, 3))
	if err != nil {
		return nil, err
	}
	hour, minute, second, _, err := TimeOfDay(field(fields, 4))
	if err != nil {
		return nil, err
	}

	return &GLLFields{
		Latitude:    lat,
		LatitudeOK:  latOK,
		Longitude:   lon,
		LongitudeOK: lonOK,
		Time:        ComposeTimestamp(0, 0, 0, false, hour, minute, second),
		Status:      field(fields, 5),
		Mode:        field(fields, 6),
	}, nil
}

func decodeGNS(fields []string) (*GNSFields, error) {
	hour, minute, second, _, err := TimeOfDay(field(fields, 0))
	if err != nil {
		return nil, err
	}
	lat, latOK, err := Coordinate(field(fields, 1), field(fields, 2))
	if err != nil {
		return nil, err
	}
	lon, lonOK, err := Coordinate(field(fields, 3), field(fields, 4))
	if err != nil {
		return nil, err
	}
	satellites, _, err := OptionalInt(field(fields, 6))
	if err != nil {
		return nil, err
	}
	hdop, hdopOK, err := OptionalFloat(field(fields, 7))
	if err != nil {
		return nil, err
	}
	alt, altOK, err := OptionalFloat(field(fields, 8))
	if err != nil {
		return nil, err
	}
	geoidSep, geoidOK, err := OptionalFloat(field(fields, 9))
	if err != nil {
		return nil, err
	}
	dgpsAge, dgpsAgeOK, err := OptionalFloat(field(fields, 10))
	if err != nil {
		return nil, err
	}

	return &GNSFields{
		Time:              ComposeTimestamp(0, 0, 0, false, hour, minute, second),
		Latitude:          lat,
		LatitudeOK:        latOK,
		Longitude:         lon,
		LongitudeOK:       lonOK,
		PosMode:           field(fields, 5),
		Satellites:        satellites,
		HDOP:              hdop,
		HDOPOK:            hdopOK,
		Altitude:          alt,
		AltitudeOK:        altOK,
		GeoidSeparation:   geoidSep,
		GeoidSeparationOK: geoidOK,
		DGPSAge:           dgpsAge,
		DGPSAgeOK:         dgpsAgeOK,
		DGPSStationID:     field(fields, 11),
		NavStatus:         field(fields, 12),
	}, nil
}

func decodeHDT(fields []string) (*HDTFields, error) {
	heading, ok, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	return &HDTFields{HeadingTrue: heading, HeadingTrueOK: ok}, nil
}

func decodeVHW(fields []string) (*VHWFields, error) {
	headingTrue, headingTrueOK, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	headingMag, headingMagOK, err := OptionalFloat(field(fields, 2))
	if err != nil {
		return nil, err
	}
	speedKnots, speedKnotsOK, err := OptionalFloat(field(fields, 4))
	if err != nil {
		return nil, err
	}
	speedKmh, speedKmhOK, err := OptionalFloat(field(fields, 6))
	if err != nil {
		return nil, err
	}
	return &VHWFields{
		HeadingTrue: headingTrue, HeadingTrueOK: headingTrueOK,
		HeadingMagnetic: headingMag, HeadingMagOK: headingMagOK,
		SpeedKnots: speedKnots, SpeedKnotsOK: speedKnotsOK,
		SpeedKmh: speedKmh, SpeedKmhOK: speedKmhOK,
	}, nil
}

func decodeMWV(fields []string) (*MWVFields, error) {
	angle, angleOK, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	speed, speedOK, err := OptionalFloat(field(fields, 2))
	if err != nil {
		return nil, err
	}
	return &MWVFields{
		WindAngle: angle, WindAngleOK: angleOK,
		Reference: field(fields, 1),
		WindSpeed: speed, WindSpeedOK: speedOK,
		SpeedUnit: field(fields, 3),
		Status:    field(fields, 4),
	}, nil
}

func decodeMTW(fields []string) (*MTWFields, error) {
	temp, ok, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	return &MTWFields{Temperature: temp, TemperatureOK: ok, Unit: field(fields, 1)}, nil
}

func decodeDBS(fields []string) (*DBSFields, error) {
	feet, feetOK, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	meters, metersOK, err := OptionalFloat(field(fields, 2))
	if err != nil {
		return nil, err
	}
	fathoms, fathomsOK, err := OptionalFloat(field(fields, 4))
	if err != nil {
		return nil, err
	}
	return &DBSFields{
		DepthFeet: feet, DepthFeetOK: feetOK,
		DepthMeters: meters, DepthMetersOK: metersOK,
		DepthFathoms: fathoms, DepthFathomsOK: fathomsOK,
	}, nil
}

func decodeDPT(fields []string) (*DPTFields, error) {
	depth, depthOK, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	offset, offsetOK, err := OptionalFloat(field(fields, 1))
	if err != nil {
		return nil, err
	}
	maxRange, maxRangeOK, err := OptionalFloat(field(fields, 2))
	if err != nil {
		return nil, err
	}
	return &DPTFields{
		Depth: depth, DepthOK: depthOK,
		Offset: offset, OffsetOK: offsetOK,
		MaxRange: maxRange, MaxRangeOK: maxRangeOK,
	}, nil
}

func decodeALM(fields []string) (*ALMFields, error) {
	total, _, err := OptionalInt(field(fields, 0))
	if err != nil {
		return nil, err
	}
	num, _, err := OptionalInt(field(fields, 1))
	if err != nil {
		return nil, err
	}
	prn, _, err := OptionalInt(field(fields, 2))
	if err != nil {
		return nil, err
	}
	week, _, err := OptionalInt(field(fields, 3))
	if err != nil {
		return nil, err
	}
	return &ALMFields{
		TotalMessages: total, MessageNumber: num, SatellitePRN: prn, GPSWeek: week,
		SVHealth:             field(fields, 4),
		Eccentricity:         field(fields, 5),
		AlmanacReferenceTime: field(fields, 6),
		InclinationAngle:     field(fields, 7),
		RateOfRightAscension: field(fields, 8),
		RootOfSemiMajorAxis:  field(fields, 9),
		ArgumentOfPerigee:    field(fields, 10),
		LongitudeOfAscNode:   field(fields, 11),
		MeanAnomaly:          field(fields, 12),
		AF0:                  field(fields, 13),
		AF1:                  field(fields, 14),
	}, nil
}

func decodeDTM(fields []string) (*DTMFields, error) {
	latOffset, latOK, err := OptionalFloat(field(fields, 2))
	if err != nil {
		return nil, err
	}
	if latOK && field(fields, 3) == "S" {
		latOffset = -latOffset
	}
	lonOffset, lonOK, err := OptionalFloat(field(fields, 4))
	if err != nil {
		return nil, err
	}
	if lonOK && field(fields, 5) == "W" {
		lonOffset = -lonOffset
	}
	altOffset, altOK, err := OptionalFloat(field(fields, 6))
	if err != nil {
		return nil, err
	}
	return &DTMFields{
		LocalDatumCode:    field(fields, 0),
		LocalDatumSubcode: field(fields, 1),
		LatOffset:         latOffset, LatOffsetOK: latOK,
		LonOffset: lonOffset, LonOffsetOK: lonOK,
		AltOffset: altOffset, AltOffsetOK: altOK,
		ReferenceDatum: field(fields, 7),
	}, nil
}

func decodeMSS(fields []string) (*MSSFields, error) {
	strength, strengthOK, err := OptionalFloat(field(fields, 0))
	if err != nil {
		return nil, err
	}
	snr, snrOK, err := OptionalFloat(field(fields, 1))
	if err != nil {
		return nil, err
	}
	freq, freqOK, err := OptionalFloat(field(fields, 2))
	if err != nil {
		return nil, err
	}
	bitRate, bitRateOK, err := OptionalFloat(field(fields, 3))
	if err != nil {
		return nil, err
	}
	channel, channelOK, err := OptionalInt(field(fields, 4))
	if err != nil {
		return nil, err
	}
	return &MSSFields{
		SignalStrength: strength, SignalStrengthOK: strengthOK,
		SNR: snr, SNROK: snrOK,
		BeaconFrequency: freq, BeaconFreqOK: freqOK,
		BeaconBitRate: bitRate, BeaconBitRateOK: bitRateOK,
		ChannelNumber: channel, ChannelNumberOK: channelOK,
	}, nil
}

func decodeSTN(fields []string) (*STNFields, error) {
	num, ok, err := OptionalInt(field(fields, 0))
	if err != nil {
		return nil, err
	}
	return &STNFields{StationNumber: num, StationNumberOK: ok}, nil
}

func decodeVBW(fields []string) (*VBWFields, error) {
	get := func(i int) (float64, bool, error) { return OptionalFloat(field(fields, i)) }

	longWater, longWaterOK, err := get(0)
	if err != nil {
		return nil, err
	}
	transWater, transWaterOK, err := get(1)
	if err != nil {
		return nil, err
	}
	longGround, longGroundOK, err := get(3)
	if err != nil {
		return nil, err
	}
	transGround, transGroundOK, err := get(4)
	if err != nil {
		return nil, err
	}
	sternWater, sternWaterOK, err := get(6)
	if err != nil {
		return nil, err
	}
	sternGround, sternGroundOK, err := get(8)
	if err != nil {
		return nil, err
	}

	return &VBWFields{
		LongWaterSpeed: longWater, LongWaterSpeedOK: longWaterOK,
		TransWaterSpeed: transWater, TransWaterSpeedOK: transWaterOK,
		WaterSpeedStatus: field(fields, 2),
		LongGroundSpeed:  longGround, LongGroundSpeedOK: longGroundOK,
		TransGroundSpeed: transGround, TransGroundSpeedOK: transGroundOK,
		GroundSpeedStatus: field(fields, 5),
		SternWaterSpeed:   sternWater, SternWaterSpeedOK: sternWaterOK,
		SternWaterStatus:  field(fields, 7),
		SternGroundSpeed:  sternGround, SternGroundSpeedOK: sternGroundOK,
		SternGroundStatus: field(fields, 9),
	}, nil
}

func decodeZDA(fields []string) (*ZDAFields, error) {
	hour, minute, second, _, err := TimeOfDay(field(fields, 0))
	if err != nil {
		return nil, err
	}
	day, _, err := OptionalInt(field(fields, 1))
	if err != nil {
		return nil, err
	}
	month, _, err := OptionalInt(field(fields, 2))
	if err != nil {
		return nil, err
	}
	year, _, err := OptionalInt(field(fields, 3))
	if err != nil {
		return nil, err
	}
	zoneHours, _, err := OptionalInt(field(fields, 4))
	if err != nil {
		return nil, err
	}
	zoneMinutes, _, err := OptionalInt(field(fields, 5))
	if err != nil {
		return nil, err
	}

	return &ZDAFields{
		Time:             ComposeTimestamp(year, month, day, year != 0, hour, minute, second),
		Day:              day,
		Month:            month,
		Year:             year,
		LocalZoneHours:   zoneHours,
		LocalZoneMinutes: zoneMinutes,
	}, nil
}

// Supported reports whether id names one of the supported GNSS sentence
// schemas.
func Supported(id string) bool {
	switch SentenceID(strings.ToUpper(id)) {
	case ALM, DBS, DPT, DTM, GGA, GLL, GNS, GSA, GSV, HDT, MTW, MWV, MSS, RMC, STN, VBW, VHW, VTG, ZDA:
		return true
	default:
		return false
	}
}

package gnss

import "time"

// SentenceID names one of the supported GNSS sentence schemas.
type SentenceID string

const (
	ALM SentenceID = "ALM"
	DBS SentenceID = "DBS"
	DPT SentenceID = "DPT"
	DTM SentenceID = "DTM"
	GGA SentenceID = "GGA"
	GLL SentenceID = "GLL"
	GNS SentenceID = "GNS"
	GSA SentenceID = "GSA"
	GSV SentenceID = "GSV"
	HDT SentenceID = "HDT"
	MTW SentenceID = "MTW"
	MWV SentenceID = "MWV"
	MSS SentenceID = "MSS"
	RMC SentenceID = "RMC"
	STN SentenceID = "STN"
	VBW SentenceID = "VBW"
	VHW SentenceID = "VHW"
	VTG SentenceID = "VTG"
	ZDA SentenceID = "ZDA"
)

// Result is the tagged union of decoded GNSS sentences. Exactly one of
// the pointer fields is non-nil, matching the sentence named by ID.
type Result struct {
	ID     SentenceID
	Source System

	GGAFields *GGAFields
	RMCFields *RMCFields
	GSAFields *GSAFields
	GSVFields *GSVFields
	VTGFields *VTGFields
	GLLFields *GLLFields
	GNSFields *GNSFields
	HDTFields *HDTFields
	VHWFields *VHWFields
	MWVFields *MWVFields
	MTWFields *MTWFields
	DBSFields *DBSFields
	DPTFields *DPTFields
	ALMFields *ALMFields
	DTMFields *DTMFields
	MSSFields *MSSFields
	STNFields *STNFields
	VBWFields *VBWFields
	ZDAFields *ZDAFields
}

// GGAFields holds essential fix data: 3D location and accuracy.
type GGAFields struct {
	Time              time.Time
	Latitude          float64
	LatitudeOK        bool
	Longitude         float64
	LongitudeOK       bool
	Quality           int
	Satellites        int
	HDOP              float64
	HDOPOK            bool
	Altitude          float64
	AltitudeOK        bool
	AltitudeUnit      string
	GeoidSeparation   float64
	GeoidSeparationOK bool
	GeoidUnit         string
	DGPSAge           float64
	DGPSAgeOK         bool
	DGPSStationID     string
}

// RMCFields holds the recommended minimum navigation data.
type RMCFields struct {
	Timestamp         time.Time
	Status            string // "A" active, "V" void
	Latitude          float64
	LatitudeOK        bool
	Longitude         float64
	LongitudeOK       bool
	SOGKnots          float64
	SOGKnotsOK        bool
	Bearing           float64
	BearingOK         bool
	MagneticVariation float64
	MagneticVarOK     bool
	Mode              string
}

// GSAFields holds GNSS DOP and active satellites.
type GSAFields struct {
	Mode1      string // "M" manual, "A" automatic
	Mode2      int    // 1 no fix, 2 2D, 3 3D
	Satellites []string
	PDOP       float64
	PDOPOK     bool
	HDOP       float64
	HDOPOK     bool
	VDOP       float64
	VDOPOK     bool
}

// GSVSatellite describes one satellite reported in a GSV sentence.
type GSVSatellite struct {
	PRN       int
	Elevation int
	ElevationOK bool
	Azimuth   int
	AzimuthOK bool
	SNR       int
	SNROK     bool
}

// GSVFields holds one line of a (possibly multi-line) satellites-in-view
// report. The caller is responsible for aggregating multiple lines using
// TotalMessages/MessageNumber/SatellitesInView, per spec.md §4.4.
type GSVFields struct {
	TotalMessages    int
	MessageNumber    int
	SatellitesInView int
	Satellites       []GSVSatellite
}

// VTGFields holds track made good and ground speed.
type VTGFields struct {
	TrackTrue       float64
	TrackTrueOK     bool
	TrackMagnetic   float64
	TrackMagneticOK bool
	SOGKnots        float64
	SOGKnotsOK      bool
	SOGKmh          float64
	SOGKmhOK        bool
	Mode            string
}

// GLLFields holds geographic position (latitude/longitude).
type GLLFields struct {
	Latitude    float64
	LatitudeOK  bool
	Longitude   float64
	LongitudeOK bool
	Time        time.Time
	Status      string
	Mode        string
}

// GNSFields holds the GNSS fix data talker-independent sentence.
type GNSFields struct {
	Time              time.Time
	Latitude          float64
	LatitudeOK        bool
	Longitude         float64
	LongitudeOK       bool
	PosMode           string
	Satellites        int
	HDOP              float64
	HDOPOK            bool
	Altitude          float64
	AltitudeOK        bool
	GeoidSeparation   float64
	GeoidSeparationOK bool
	DGPSAge           float64
	DGPSAgeOK         bool
	DGPSStationID     string
	NavStatus         string
}

// HDTFields holds true heading.
type HDTFields struct {
	HeadingTrue   float64
	HeadingTrueOK bool
}

// VHWFields holds water speed and heading.
type VHWFields struct {
	HeadingTrue     float64
	HeadingTrueOK   bool
	HeadingMagnetic float64
	HeadingMagOK    bool
	SpeedKnots      float64
	SpeedKnotsOK    bool
	SpeedKmh        float64
	SpeedKmhOK      bool
}

// MWVFields holds wind speed and angle.
type MWVFields struct {
	WindAngle   float64
	WindAngleOK bool
	Reference   string // "R" relative, "T" true
	WindSpeed   float64
	WindSpeedOK bool
	SpeedUnit   string // "K", "M", "N"
	Status      string // "A" valid, "V" invalid
}

// MTWFields holds water temperature.
type MTWFields struct {
	Temperature   float64
	TemperatureOK bool
	Unit          string // "C"
}

// DBSFields holds depth below surface.
type DBSFields struct {
	DepthFeet     float64
	DepthFeetOK   bool
	DepthMeters   float64
	DepthMetersOK bool
	DepthFathoms  float64
	DepthFathomsOK bool
}

// DPTFields holds depth of water.
type DPTFields struct {
	Depth      float64
	DepthOK    bool
	Offset     float64
	OffsetOK   bool
	MaxRange   float64
	MaxRangeOK bool
}

// ALMFields holds one GPS almanac entry.
type ALMFields struct {
	TotalMessages         int
	MessageNumber         int
	SatellitePRN          int
	GPSWeek               int
	SVHealth              string
	Eccentricity          string
	AlmanacReferenceTime  string
	InclinationAngle      string
	RateOfRightAscension  string
	RootOfSemiMajorAxis   string
	ArgumentOfPerigee     string
	LongitudeOfAscNode    string
	MeanAnomaly           string
	AF0                   string
	AF1                   string
}

// DTMFields holds datum reference.
type DTMFields struct {
	LocalDatumCode    string
	LocalDatumSubcode string
	LatOffset         float64
	LatOffsetOK       bool
	LonOffset         float64
	LonOffsetOK       bool
	AltOffset         float64
	AltOffsetOK       bool
	ReferenceDatum    string
}

// MSSFields holds beacon receiver signal status.
type MSSFields struct {
	SignalStrength  float64
	SignalStrengthOK bool
	SNR             float64
	SNROK           bool
	BeaconFrequency float64
	BeaconFreqOK    bool
	BeaconBitRate   float64
	BeaconBitRateOK bool
	ChannelNumber   int
	ChannelNumberOK bool
}

// STNFields holds the multiple-data-ID talker station number.
type STNFields struct {
	StationNumber   int
	StationNumberOK bool
}

// VBWFields holds dual ground/water speed.
type VBWFields struct {
	LongWaterSpeed       float64
	LongWaterSpeedOK     bool
	TransWaterSpeed      float64
	TransWaterSpeedOK    bool
	WaterSpeedStatus     string
	LongGroundSpeed      float64
	LongGroundSpeedOK    bool
	TransGroundSpeed     float64
	TransGroundSpeedOK   bool
	GroundSpeedStatus    string
	SternWaterSpeed      float64
	SternWaterSpeedOK    bool
	SternWaterStatus     string
	SternGroundSpeed     float64
	SternGroundSpeedOK   bool
	SternGroundStatus    string
}

// ZDAFields holds time and date.
type ZDAFields struct {
	Time               time.Time
	Day                int
	Month              int
	Year               int
	LocalZoneHours     int
	LocalZoneMinutes   int
}

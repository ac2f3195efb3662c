package ais

// NavStatus is the type 1/2/3/27's navigational status (ITU-R M.1371 table).
type NavStatus int

const (
	NavUnderWayUsingEngine NavStatus = 0
	NavAtAnchor            NavStatus = 1
	NavNotUnderCommand     NavStatus = 2
	NavRestrictedManoeuvre NavStatus = 3
	NavConstrainedByDraught NavStatus = 4
	NavMoored              NavStatus = 5
	NavAground             NavStatus = 6
	NavEngagedInFishing    NavStatus = 7
	NavUnderWaySailing     NavStatus = 8
	NavReserved9           NavStatus = 9
	NavReserved10          NavStatus = 10
	NavReserved11          NavStatus = 11
	NavReserved12          NavStatus = 12
	NavReserved13          NavStatus = 13
	NavAISSARTActive       NavStatus = 14
	NavNotDefined          NavStatus = 15
)

// TurnDirection qualifies a rate-of-turn reading (spec.md §4.7 step 4).
type TurnDirection int

const (
	TurnNoInfo     TurnDirection = iota // raw value -128
	TurnNotTurning                      // raw value 0
	TurnPort                            // raw value negative, not -128
	TurnStarboard                       // raw value positive
)

// Message is the AIS payload tagged union: Type selects which of the
// pointer fields is populated. Exactly one is non-nil for a decoded
// message, except type 5, which fills both VesselStaticA and
// VesselStaticB (mirroring the envelope/GNSS result convention used
// throughout this module rather than an interface hierarchy).
type Message struct {
	Type    int
	Channel byte
	MMSI    uint32

	VesselDynamic *VesselDynamicData
	VesselStaticA *VesselStaticDataA
	VesselStaticB *VesselStaticDataB
	BaseStation   *BaseStationReport
	Binary        *BinaryMessage
	Safety        *SafetyMessage
	Interrogation *InterrogationMessage
	Assignment    *AssignmentModeCommand
	DGNSS         *DGNSSBroadcast
	ChannelMgmt   *ChannelManagement
	GroupAssign   *GroupAssignment
	AidToNav      *AidToNavigationReport
	Ack           *Acknowledge
	SARAircraft   *StandardSARAircraftPosition
	UTCInquiry    *UTCInquiryMessage
	DataLinkMgmt  *DataLinkManagement
	SingleSlot    *SingleSlotBinary
	MultiSlot     *MultipleSlotBinary
}

// VesselDynamicData covers message types 1, 2, 3, 18, 19 and 27.
type VesselDynamicData struct {
	NavStatus         NavStatus
	HasNavStatus      bool // true for types 1, 2, 3 and 27; false for types 18 and 19, which have no status field
	RateOfTurnRaw     int
	TurnDirection     TurnDirection
	TurnDegreesPerMin float64
	TurnDegPerMinOK   bool
	SOGKnots          *float64
	PositionAccurate  bool
	Latitude          *float64
	Longitude         *float64
	COG               *float64
	TrueHeading       *int
	UTCSecond         int
	UTCSecondStatus   UTCSecondStatus
	ManoeuvreIndicator int
	RAIM              bool
	RadioStatus       *uint32
	CurrentGNSSFix    bool // type 27 only: "current_gnss_position"
	ClassBFlags       bool // true when decoded from a class B (18/19) schema
	Extended          *ExtendedClassBStatic // type 19 only: the static fields folded into its single sentence
}

// ExtendedClassBStatic carries the static fields that type 19 (Extended
// Class B position report) packs into the same sentence as its dynamic
// fields, rather than splitting them out the way type 5/24 do.
type ExtendedClassBStatic struct {
	Name          string
	ShipType      int
	ShipTypeLabel string
	DimBow        int
	DimStern      int
	DimPort       int
	DimStarboard  int
	EPFSType      int
}

// UTCSecondStatus names the meaning of out-of-range UTC-second values.
type UTCSecondStatus int

const (
	UTCSecondNormal          UTCSecondStatus = iota // 0..59
	UTCSecondNotAvailable                           // 60
	UTCSecondManual                                 // 61
	UTCSecondDeadReckoning                          // 62 (EPFS dead reckoning)
	UTCSecondInoperative                            // 63
)

// VesselStaticDataA is part A of type 24 (name only), and the version,
// IMO number, call sign and name of type 5.
type VesselStaticDataA struct {
	AISVersion int
	IMONumber  uint32
	CallSign   string
	Name       string
	PartNumber int // 0 for part A
}

// VesselStaticDataB is part B of type 24: call sign, ship type and either
// the dimensions or, for an auxiliary-craft MMSI, the mothership MMSI
// (spec.md §4.7 step 5). For type 5 it carries the ship type, dimensions,
// EPFS type, ETA, draught, destination and DTE flag.
type VesselStaticDataB struct {
	PartNumber      int // 1 for part B
	CallSign        string
	ShipType        int
	ShipTypeLabel   string
	DimBow          int
	DimStern        int
	DimPort         int
	DimStarboard    int
	EPFSType        int
	ETAMonth        int
	ETADay          int
	ETAHour         int
	ETAMinute       int
	DraughtMetres   *float64
	Destination     string
	DTE             bool
	MothershipMMSI  *uint32 // set when MMSI is in the auxiliary-craft range
}

// BaseStationReport covers types 4 and 11.
type BaseStationReport struct {
	Year, Month, Day, Hour, Minute, Second int
	Latitude, Longitude                    *float64
	PositionAccurate                       bool
	EPFSType                                int
	RAIM                                    bool
}

// BinaryMessage covers types 6 and 8: a common header plus an opaque
// application-data payload (spec.md §9's type 6 open question).
type BinaryMessage struct {
	Addressed        bool // true for type 6
	SequenceNumber   int  // type 6 only
	DestinationMMSI  uint32 // type 6 only
	Retransmit       bool   // type 6 only
	DAC              int
	FI               int
	ApplicationBits  []byte
	ApplicationNBits uint
}

// SafetyMessage covers types 12 and 14.
type SafetyMessage struct {
	Addressed       bool // true for type 12
	SequenceNumber  int  // type 12 only
	DestinationMMSI uint32 // type 12 only
	Retransmit      bool   // type 12 only
	Text            string
}

// InterrogationMessage covers type 15.
type InterrogationMessage struct {
	Station1MMSI uint32
	Station2MMSI *uint32
}

// AssignmentModeCommand covers type 16.
type AssignmentModeCommand struct {
	DestinationAMMSI uint32
	DestinationBMMSI *uint32
}

// DGNSSBroadcast covers type 17.
type DGNSSBroadcast struct {
	Latitude, Longitude *float64
	Data                []byte
}

// ChannelManagement covers type 22.
type ChannelManagement struct {
	ChannelA, ChannelB int
	Power              bool
	Addressed          bool
	Zone               string
}

// GroupAssignment covers type 23.
type GroupAssignment struct {
	StationType int
	ShipType    int
	TxRxMode    int
}

// AidToNavigationReport covers type 21.
type AidToNavigationReport struct {
	AidType          int
	Name             string
	PositionAccurate bool
	Latitude, Longitude *float64
	DimBow, DimStern, DimPort, DimStarboard int
	EPFSType         int
	UTCSecond        int
	OffPosition      bool
	VirtualAid       bool
}

// Acknowledge covers types 7 and 13.
type Acknowledge struct {
	DestMMSI1, DestMMSI2, DestMMSI3, DestMMSI4 *uint32
}

// StandardSARAircraftPosition covers type 9.
type StandardSARAircraftPosition struct {
	AltitudeMetres   *int
	SOGKnots         *float64
	PositionAccurate bool
	Latitude, Longitude *float64
	COG              *float64
	UTCSecond        int
}

// UTCInquiryMessage covers type 10.
type UTCInquiryMessage struct {
	DestMMSI uint32
}

// DataLinkManagement covers type 20.
type DataLinkManagement struct {
	Reservations int
}

// SingleSlotBinary covers type 25.
type SingleSlotBinary struct {
	Addressed       bool
	DestinationMMSI *uint32
	ApplicationBits []byte
}

// MultipleSlotBinary covers type 26.
type MultipleSlotBinary struct {
	Addressed       bool
	DestinationMMSI *uint32
	ApplicationBits []byte
}

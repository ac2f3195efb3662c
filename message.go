package nmea

import (
	"github.com/goblimey/go-nmea-ais/ais"
	"github.com/goblimey/go-nmea-ais/gnss"
)

// ParsedMessage is the top-level result of Parse: a tagged union over a
// decoded GNSS sentence, a decoded AIS message, a buffered-but-incomplete
// AIS fragment group, or an envelope that parsed but named a sentence id
// or message type this module doesn't decode.
type ParsedMessage struct {
	GNSS *gnss.Result
	AIS  *ais.Message

	// Incomplete is true when an AIS fragment was absorbed by the
	// assembler but did not complete its group. GNSS and AIS are both nil
	// in that case.
	Incomplete bool

	// Unsupported is true when the envelope and framing were valid but no
	// decoder exists for the sentence id (GNSS) or message type (AIS).
	// UnsupportedWhat names what was unrecognised.
	Unsupported   bool
	UnsupportedWhat string
}

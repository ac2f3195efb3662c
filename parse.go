// Package nmea decodes NMEA 0183 GNSS sentences and AIS VDM/VDO
// messages into a single tagged-union result, handling the armored
// payload, fragment reassembly and bit-packed schemas of AIS along the
// way. The core is synchronous and does no I/O; see ais.Assembler for
// the one piece of state a caller owns across calls.
package nmea

import (
	"errors"
	"fmt"

	"github.com/goblimey/go-nmea-ais/ais"
	"github.com/goblimey/go-nmea-ais/envelope"
	"github.com/goblimey/go-nmea-ais/gnss"
)

// Parse decodes one line of input. assembler accumulates AIS fragments
// across calls on the same stream; pass the same *ais.Assembler for
// every line of a given feed, and a fresh one per independent feed.
func Parse(line string, assembler *ais.Assembler) (*ParsedMessage, error) {
	env, err := envelope.Tokenise(line)
	if err != nil {
		return nil, wrapError(InvalidSentence, err, "invalid sentence: %v", err)
	}
	if env.HasChecksum && !env.ChecksumOK {
		return nil, newError(ChecksumMismatch, "checksum mismatch on sentence %q", line)
	}

	switch env.Starter {
	case envelope.GNSS:
		return parseGNSS(env)
	case envelope.AIS:
		return parseAIS(env, assembler)
	default:
		return nil, newError(InvalidSentence, "unrecognised envelope starter")
	}
}

func parseGNSS(env *envelope.Envelope) (*ParsedMessage, error) {
	if !gnss.Supported(env.SentenceID) {
		return &ParsedMessage{Unsupported: true, UnsupportedWhat: "GNSS sentence " + env.SentenceID}, nil
	}
	result, err := gnss.Decode(env.Talker, env.SentenceID, env.Fields)
	if err != nil {
		return nil, wrapError(InvalidSentence, err, "decoding %s%s: %v", env.Talker, env.SentenceID, err)
	}
	return &ParsedMessage{GNSS: result}, nil
}

func parseAIS(env *envelope.Envelope, assembler *ais.Assembler) (*ParsedMessage, error) {
	if len(env.Fields) != 6 {
		return nil, newError(InvalidSentence, "VDM/VDO sentence has %d fields, want 6", len(env.Fields))
	}

	frag, err := ais.ParseFragment(env.Fields[0], env.Fields[1], env.Fields[2], env.Fields[3], env.Fields[4], env.Fields[5])
	if err != nil {
		return nil, wrapError(InvalidSentence, err, "invalid AIS fragment: %v", err)
	}

	payload, fillBits, channel, complete, err := assembler.Add(frag)
	if err != nil {
		return nil, wrapError(FragmentOutOfOrder, err, "%v", err)
	}
	if !complete {
		return &ParsedMessage{Incomplete: true}, nil
	}

	msg, err := ais.DecodeArmoredPayload(payload, fillBits, channel)
	if err != nil {
		if errors.Is(err, ais.ErrUnsupportedType) {
			return &ParsedMessage{Unsupported: true, UnsupportedWhat: fmt.Sprintf("AIS %v", err)}, nil
		}
		return nil, wrapError(InvalidSentence, err, "decoding AIS payload: %v", err)
	}
	return &ParsedMessage{AIS: msg}, nil
}

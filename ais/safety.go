package ais

import "github.com/goblimey/go-nmea-ais/ais/bits"

// decodeAddressedSafety decodes type 12 (addressed safety-related
// message).
func decodeAddressedSafety(r *bits.Reader) (*SafetyMessage, error) {
	seq, err := r.Uint(2)
	if err != nil {
		return nil, err
	}
	destMMSI, err := r.Uint(30)
	if err != nil {
		return nil, err
	}
	retransmit, err := r.Bool()
	if err != nil {
		return nil, err
	}
	if _, err := r.Uint(1); err != nil { // spare
		return nil, err
	}
	text, err := readSixBitText(r)
	if err != nil {
		return nil, err
	}

	return &SafetyMessage{
		Addressed:       true,
		SequenceNumber:  int(seq),
		DestinationMMSI: uint32(destMMSI),
		Retransmit:      retransmit,
		Text:            text,
	}, nil
}

// decodeSafetyBroadcast decodes type 14 (safety-related broadcast
// message).
func decodeSafetyBroadcast(r *bits.Reader) (*SafetyMessage, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	text, err := readSixBitText(r)
	if err != nil {
		return nil, err
	}

	return &SafetyMessage{Addressed: false, Text: text}, nil
}

// readSixBitText decodes every remaining full 6-bit group as packed
// ASCII, for free-text tail fields whose length varies with the sentence.
func readSixBitText(r *bits.Reader) (string, error) {
	numChars := r.Remaining() / 6
	if numChars == 0 {
		return "", nil
	}
	return r.SixBitASCII(numChars)
}

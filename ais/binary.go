package ais

import "github.com/goblimey/go-nmea-ais/ais/bits"

// decodeBinaryAddressedMessage decodes type 6, exposing only the common
// header (DAC, FI, sequence, destination MMSI, retransmit flag); the
// remainder is the application payload, decoded per-DAC/FI by callers
// that recognise it (see the type 6 open question).
func decodeBinaryAddressedMessage(r *bits.Reader) (*BinaryMessage, error) {
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
	dac, err := r.Uint(10)
	if err != nil {
		return nil, err
	}
	fi, err := r.Uint(6)
	if err != nil {
		return nil, err
	}

	totalBits := r.Remaining()
	appBuf, err := readRemainingBits(r)
	if err != nil {
		return nil, err
	}

	return &BinaryMessage{
		Addressed:        true,
		SequenceNumber:   int(seq),
		DestinationMMSI:  uint32(destMMSI),
		Retransmit:       retransmit,
		DAC:              int(dac),
		FI:               int(fi),
		ApplicationBits:  appBuf,
		ApplicationNBits: totalBits,
	}, nil
}

// decodeBinaryBroadcastMessage decodes type 8 (binary broadcast message).
func decodeBinaryBroadcastMessage(r *bits.Reader) (*BinaryMessage, error) {
	if _, err := r.Uint(2); err != nil { // spare
		return nil, err
	}
	dac, err := r.Uint(10)
	if err != nil {
		return nil, err
	}
	fi, err := r.Uint(6)
	if err != nil {
		return nil, err
	}

	totalBits := r.Remaining()
	appBuf, err := readRemainingBits(r)
	if err != nil {
		return nil, err
	}

	return &BinaryMessage{
		Addressed:        false,
		DAC:              int(dac),
		FI:               int(fi),
		ApplicationBits:  appBuf,
		ApplicationNBits: totalBits,
	}, nil
}

// readRemainingBits drains every bit left in r into a byte slice,
// left-justifying the final partial byte, for schemas whose tail is an
// opaque application payload rather than a fixed field set.
func readRemainingBits(r *bits.Reader) ([]byte, error) {
	remaining := r.Remaining()
	buf := make([]byte, 0, (remaining+7)/8)
	for remaining > 0 {
		take := remaining
		if take > 8 {
			take = 8
		}
		v, err := r.Uint(take)
		if err != nil {
			return nil, err
		}
		buf = append(buf, byte(v<<(8-take)))
		remaining -= take
	}
	return buf, nil
}

package ais

import "fmt"

// Fragment is one AIS VDM/VDO sentence's fragment fields, as carried in
// the comma-separated payload following the talker+"VDM"/"VDO" id:
// total, index, group, channel, armored payload, fill bits.
type Fragment struct {
	Total    int
	Index    int
	GroupID  string // "" if this sentence carries no group id (single fragment)
	Channel  byte   // 'A', 'B', or 0 for unspecified
	Payload  string
	FillBits int
}

// ParseFragment validates and builds a Fragment from the raw field
// strings of a VDM/VDO sentence. Per spec.md §4.6: total in 1..9, index
// in 1..total, channel in {'A','B', empty}, fill bits in 0..5.
func ParseFragment(total, index, group, channel, payload, fill string) (*Fragment, error) {
	totalN, err := parseSmallInt(total)
	if err != nil || totalN < 1 || totalN > 9 {
		return nil, fmt.Errorf("fragment total %q out of range 1..9", total)
	}
	indexN, err := parseSmallInt(index)
	if err != nil || indexN < 1 || indexN > totalN {
		return nil, fmt.Errorf("fragment index %q out of range 1..%d", index, totalN)
	}

	var ch byte
	switch channel {
	case "A":
		ch = 'A'
	case "B":
		ch = 'B'
	case "":
		ch = 0
	default:
		return nil, fmt.Errorf("channel %q is not 'A', 'B' or empty", channel)
	}

	fillN, err := parseSmallInt(fill)
	if err != nil || fillN < 0 || fillN > 5 {
		return nil, fmt.Errorf("fill bits %q out of range 0..5", fill)
	}

	if payload == "" {
		return nil, fmt.Errorf("empty armored payload")
	}

	return &Fragment{
		Total:    totalN,
		Index:    indexN,
		GroupID:  group,
		Channel:  ch,
		Payload:  payload,
		FillBits: fillN,
	}, nil
}

func parseSmallInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty integer field")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a digit: %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// pendingKey identifies a group of fragments being assembled: the radio
// channel plus the sender's group id.
type pendingKey struct {
	channel byte
	groupID string
}

// pendingEntry holds one in-progress multi-fragment reassembly.
type pendingEntry struct {
	total     int
	nextIndex int
	buffer    []byte
	channel   byte
	fillBits  int
}

// Assembler reconstructs complete AIS armored payloads from one or more
// VDM/VDO fragments. It holds at most one pending entry per (channel,
// group id); see spec.md §4.6 and §5 for its lifecycle and concurrency
// contract. The zero value is not usable; use NewAssembler.
type Assembler struct {
	pending map[pendingKey]*pendingEntry
}

// NewAssembler returns an empty Assembler.
func NewAssembler() *Assembler {
	return &Assembler{pending: make(map[pendingKey]*pendingEntry)}
}

// Add feeds one fragment into the assembler. If the fragment completes a
// message (including the trivial single-fragment case), it returns the
// concatenated armored payload, the fill-bit count of the final fragment,
// the channel and complete=true. Otherwise it returns complete=false. A
// fragment whose index doesn't follow the pending entry's expected next
// index drops that entry and returns FragmentOutOfOrder (via the returned
// error, which the caller should surface as such).
func (a *Assembler) Add(frag *Fragment) (payload string, fillBits int, channel byte, complete bool, err error) {
	if frag.Total == 1 && frag.Index == 1 {
		return frag.Payload, frag.FillBits, frag.Channel, true, nil
	}

	key := pendingKey{channel: frag.Channel, groupID: frag.GroupID}

	if frag.Index == 1 {
		a.pending[key] = &pendingEntry{
			total:     frag.Total,
			nextIndex: 2,
			buffer:    []byte(frag.Payload),
			channel:   frag.Channel,
			fillBits:  frag.FillBits,
		}
		return "", 0, 0, false, nil
	}

	entry, ok := a.pending[key]
	if !ok || entry.nextIndex != frag.Index || entry.total != frag.Total {
		delete(a.pending, key)
		return "", 0, 0, false, fmt.Errorf("fragment index %d out of order for group %+v", frag.Index, key)
	}

	entry.buffer = append(entry.buffer, frag.Payload...)
	entry.fillBits = frag.FillBits

	if frag.Index == frag.Total {
		delete(a.pending, key)
		return string(entry.buffer), entry.fillBits, entry.channel, true, nil
	}

	entry.nextIndex++
	return "", 0, 0, false, nil
}

// Pending returns the number of fragment groups currently buffered
// awaiting completion.
func (a *Assembler) Pending() int {
	return len(a.pending)
}

// Reset discards every pending fragment group.
func (a *Assembler) Reset() {
	a.pending = make(map[pendingKey]*pendingEntry)
}

package ais

import "testing"

func mustFragment(t *testing.T, total, index, group, channel, payload, fill string) *Fragment {
	t.Helper()
	f, err := ParseFragment(total, index, group, channel, payload, fill)
	if err != nil {
		t.Fatalf("ParseFragment(%q,%q,%q,%q,%q,%q) unexpected error: %v", total, index, group, channel, payload, fill, err)
	}
	return f
}

func TestAssemblerSingleFragmentEmitsImmediately(t *testing.T) {
	a := NewAssembler()
	f := mustFragment(t, "1", "1", "", "A", "177KQJ5000G?tO`K>RA1wUbN0TKH", "0")

	payload, fillBits, channel, complete, err := a.Add(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !complete {
		t.Fatalf("expected immediate completion for a single-fragment message")
	}
	if payload != f.Payload || fillBits != 0 || channel != 'A' {
		t.Errorf("got (%q,%d,%q), want (%q,0,'A')", payload, fillBits, channel, f.Payload)
	}
	if a.Pending() != 0 {
		t.Errorf("expected no pending entries, got %d", a.Pending())
	}
}

func TestAssemblerTwoFragmentMessage(t *testing.T) {
	a := NewAssembler()
	f1 := mustFragment(t, "2", "1", "4", "A", "53nFBv01", "0")
	f2 := mustFragment(t, "2", "2", "4", "A", "10WhelE", "2")

	_, _, _, complete, err := a.Add(f1)
	if err != nil {
		t.Fatalf("unexpected error on fragment 1: %v", err)
	}
	if complete {
		t.Fatalf("did not expect completion after the first of two fragments")
	}
	if a.Pending() != 1 {
		t.Fatalf("expected one pending entry, got %d", a.Pending())
	}

	payload, fillBits, channel, complete, err := a.Add(f2)
	if err != nil {
		t.Fatalf("unexpected error on fragment 2: %v", err)
	}
	if !complete {
		t.Fatalf("expected completion after the final fragment")
	}
	want := f1.Payload + f2.Payload
	if payload != want {
		t.Errorf("payload = %q, want %q", payload, want)
	}
	if fillBits != 2 {
		t.Errorf("fillBits = %d, want 2 (from the final fragment)", fillBits)
	}
	if channel != 'A' {
		t.Errorf("channel = %q, want 'A'", channel)
	}
	if a.Pending() != 0 {
		t.Errorf("expected the entry to be cleared after completion, got %d pending", a.Pending())
	}
}

func TestAssemblerOutOfOrderDropsEntry(t *testing.T) {
	a := NewAssembler()
	f1 := mustFragment(t, "3", "1", "9", "A", "abc", "0")
	f3 := mustFragment(t, "3", "3", "9", "A", "ghi", "0")

	if _, _, _, _, err := a.Add(f1); err != nil {
		t.Fatalf("unexpected error on fragment 1: %v", err)
	}
	if _, _, _, complete, err := a.Add(f3); err == nil || complete {
		t.Errorf("expected an out-of-order error, got complete=%v err=%v", complete, err)
	}
	if a.Pending() != 0 {
		t.Errorf("expected the pending entry to be dropped, got %d", a.Pending())
	}

	// A retry from index 1 must succeed, proving the stale entry is gone.
	if _, _, _, complete, err := a.Add(f1); err != nil || complete {
		t.Fatalf("restart after drop failed: complete=%v err=%v", complete, err)
	}
}

func TestAssemblerIndependentGroupsOnSameChannel(t *testing.T) {
	a := NewAssembler()
	groupA1 := mustFragment(t, "2", "1", "1", "A", "aaa", "0")
	groupB1 := mustFragment(t, "2", "1", "2", "A", "bbb", "0")
	groupA2 := mustFragment(t, "2", "2", "1", "A", "AAA", "0")
	groupB2 := mustFragment(t, "2", "2", "2", "A", "BBB", "0")

	if _, _, _, complete, err := a.Add(groupA1); err != nil || complete {
		t.Fatalf("group A fragment 1: complete=%v err=%v", complete, err)
	}
	if _, _, _, complete, err := a.Add(groupB1); err != nil || complete {
		t.Fatalf("group B fragment 1: complete=%v err=%v", complete, err)
	}
	if a.Pending() != 2 {
		t.Fatalf("expected two independent pending groups, got %d", a.Pending())
	}

	payloadA, _, _, complete, err := a.Add(groupA2)
	if err != nil || !complete {
		t.Fatalf("group A fragment 2: complete=%v err=%v", complete, err)
	}
	if payloadA != "aaaAAA" {
		t.Errorf("group A payload = %q, want %q", payloadA, "aaaAAA")
	}

	payloadB, _, _, complete, err := a.Add(groupB2)
	if err != nil || !complete {
		t.Fatalf("group B fragment 2: complete=%v err=%v", complete, err)
	}
	if payloadB != "bbbBBB" {
		t.Errorf("group B payload = %q, want %q", payloadB, "bbbBBB")
	}
}

func TestAssemblerDifferentChannelsDoNotCollide(t *testing.T) {
	a := NewAssembler()
	chanA := mustFragment(t, "2", "1", "7", "A", "xxx", "0")
	chanB := mustFragment(t, "2", "1", "7", "B", "yyy", "0")

	if _, _, _, _, err := a.Add(chanA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, _, _, err := a.Add(chanB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Pending() != 2 {
		t.Errorf("expected channel A and channel B to occupy distinct entries, got %d pending", a.Pending())
	}
}

func TestParseFragmentRejectsOutOfRangeFields(t *testing.T) {
	cases := []struct {
		name                                       string
		total, index, group, channel, payload, fill string
	}{
		{"total zero", "0", "1", "", "A", "abc", "0"},
		{"total too big", "10", "1", "", "A", "abc", "0"},
		{"index exceeds total", "2", "3", "", "A", "abc", "0"},
		{"bad channel", "1", "1", "", "C", "abc", "0"},
		{"fill bits too big", "1", "1", "", "A", "abc", "6"},
		{"empty payload", "1", "1", "", "A", "", "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseFragment(c.total, c.index, c.group, c.channel, c.payload, c.fill); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestAssemblerResetClearsPending(t *testing.T) {
	a := NewAssembler()
	f1 := mustFragment(t, "2", "1", "1", "A", "aaa", "0")
	if _, _, _, _, err := a.Add(f1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a.Reset()
	if a.Pending() != 0 {
		t.Errorf("expected Reset to clear pending entries, got %d", a.Pending())
	}
}

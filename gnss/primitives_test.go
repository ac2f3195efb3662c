package gnss

import "testing"

func TestCoordinateEmptyIsAbsent(t *testing.T) {
	v, ok, err := Coordinate("", "N")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || v != 0 {
		t.Errorf("expected absent coordinate, got %v ok=%v", v, ok)
	}
}

func TestCoordinateSouthIsNegative(t *testing.T) {
	v, ok, err := Coordinate("4807.038", "S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok")
	}
	if !almostEqual(v, -48.1173) {
		t.Errorf("got %v, want ~-48.1173", v)
	}
}

func TestDateWindow(t *testing.T) {
	year, _, _, ok, err := Date("010169")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || year != 2069 {
		t.Errorf("got year %d, want 2069", year)
	}

	year, _, _, ok, err = Date("010170")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || year != 1970 {
		t.Errorf("got year %d, want 1970", year)
	}
}

func TestTimeOfDayOutOfRangeFails(t *testing.T) {
	if _, _, _, _, err := TimeOfDay("250000"); err == nil {
		t.Errorf("expected an error for hour 25")
	}
	if _, _, _, _, err := TimeOfDay("006100"); err == nil {
		t.Errorf("expected an error for minute 61")
	}
}

func TestDefaultDateContract(t *testing.T) {
	ts := ComposeTimestamp(0, 0, 0, false, 10, 30, 0)
	if ts.Year() != 2000 || ts.Month() != 1 || ts.Day() != 1 {
		t.Errorf("expected fixed default date 2000-01-01, got %v", ts)
	}
}

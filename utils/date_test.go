package utils

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCustomDateJSONRoundTrip(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`"2026-09-15"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.September || d.Day() != 15 {
		t.Errorf("parsed date = %v", d.Time)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2026-09-15"` {
		t.Errorf("Marshal = %s, want \"2026-09-15\"", out)
	}
}

func TestCustomDateNull(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("null should parse to zero date, got %v", d.Time)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `null` {
		t.Errorf("zero date should marshal to null, got %s", out)
	}
}

func TestCustomDateRejectsBadFormat(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`"15/09/2026"`), &d); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestCustomDateScan(t *testing.T) {
	var d CustomDate
	if err := d.Scan("2026-09-15"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if d.String() != "2026-09-15" {
		t.Errorf("String = %q", d.String())
	}

	var fromTime CustomDate
	if err := fromTime.Scan(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time: %v", err)
	}
	if fromTime.String() != "2026-09-15" {
		t.Errorf("String = %q", fromTime.String())
	}

	var fromNil CustomDate
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if !fromNil.IsZero() {
		t.Error("Scan(nil) should produce zero date")
	}

	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "2026-09-15" {
		t.Errorf("Value = %v", v)
	}
}

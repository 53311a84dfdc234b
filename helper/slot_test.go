package helper

import (
	"errors"
	"testing"
	"time"

	"pizzeria_manager/model"

	"gorm.io/gorm"
)

func TestSlotKey(t *testing.T) {
	got := SlotKey(3, "2026-08-30", "19:30")
	if got != "pizzeria:slot:3:2026-08-30:19:30" {
		t.Errorf("SlotKey = %q", got)
	}
}

func TestSlotLookupErr(t *testing.T) {
	if got := slotLookupErr(gorm.ErrRecordNotFound); !errors.Is(got, ErrSlotUnavailable) {
		t.Errorf("missing config = %v, want ErrSlotUnavailable", got)
	}

	// A storage failure must surface as itself, never as a full slot.
	dbDown := errors.New("connection refused")
	if got := slotLookupErr(dbDown); !errors.Is(got, dbDown) {
		t.Errorf("storage failure = %v, want it propagated", got)
	}
	if errors.Is(slotLookupErr(dbDown), ErrSlotUnavailable) {
		t.Error("storage failure reported as unavailable slot")
	}
}

func TestOccupancyPct(t *testing.T) {
	cases := []struct {
		booked, capacity, want int
	}{
		{0, 8, 0},
		{4, 8, 50},
		{8, 8, 100},
		{1, 3, 33},
		{5, 0, 100},
	}
	for _, c := range cases {
		if got := OccupancyPct(c.booked, c.capacity); got != c.want {
			t.Errorf("OccupancyPct(%d, %d) = %d, want %d", c.booked, c.capacity, got, c.want)
		}
	}
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 19, 0, 0, 0, time.UTC)
	cases := []struct {
		date string
		want bool
	}{
		{"2026-08-29", true},
		{"2026-08-30", false},
		{"2026-08-31", false},
		{"30/08/2026", true},
		{"", true},
	}
	for _, c := range cases {
		if got := IsPastDate(c.date, now); got != c.want {
			t.Errorf("IsPastDate(%q) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestBuildSlotAvailabilityOrderedByTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	configs := []model.SlotConfig{
		{Time: "20:00", Capacity: 8},
		{Time: "18:30", Capacity: 8},
		{Time: "19:00", Capacity: 8},
	}
	slots := BuildSlotAvailability(configs, nil, "2026-08-30", now)
	want := []string{"18:30", "19:00", "20:00"}
	for i, w := range want {
		if slots[i].Time != w {
			t.Errorf("slots[%d].Time = %q, want %q", i, slots[i].Time, w)
		}
	}
}

func TestBuildSlotAvailabilityCapacityBound(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	configs := []model.SlotConfig{
		{Time: "18:30", Capacity: 8},
		{Time: "19:00", Capacity: 8},
		{Time: "19:30", Capacity: 8},
	}
	booked := map[string]int{"18:30": 8, "19:00": 7}
	slots := BuildSlotAvailability(configs, booked, "2026-08-30", now)

	if slots[0].Available {
		t.Error("full slot reported available")
	}
	if slots[0].OccupancyPct != 100 {
		t.Errorf("full slot occupancy = %d, want 100", slots[0].OccupancyPct)
	}
	if !slots[1].Available || slots[1].Booked != 7 {
		t.Errorf("slot with one seat left: available %v, booked %d", slots[1].Available, slots[1].Booked)
	}
	if !slots[2].Available || slots[2].Booked != 0 {
		t.Errorf("untouched slot: available %v, booked %d", slots[2].Available, slots[2].Booked)
	}
}

func TestBuildSlotAvailabilityPastDateNeverAvailable(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	configs := []model.SlotConfig{{Time: "19:00", Capacity: 8}}
	slots := BuildSlotAvailability(configs, nil, "2026-08-29", now)
	if slots[0].Available {
		t.Error("past-date slot reported available")
	}
}

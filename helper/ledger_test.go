package helper

import (
	"errors"
	"testing"
	"time"

	"pizzeria_manager/constants"
	"pizzeria_manager/model"
)

func entry(delta int, expiry *time.Time) model.LedgerEntry {
	return model.LedgerEntry{CustomerId: 1, Delta: delta, Reason: constants.LEDGER_ORDER, Expiry: expiry}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestFoldBalanceSkipsExpiredAccruals(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	entries := []model.LedgerEntry{
		entry(1, ptrTime(now.Add(24*time.Hour))),
		entry(1, ptrTime(now.Add(-time.Hour))), // expired, must not count
		entry(1, nil),                          // gift received, never expires
	}
	if got := FoldBalance(entries, now); got != 2 {
		t.Errorf("FoldBalance = %d, want 2", got)
	}
}

func TestFoldBalanceNegativeEntriesAlwaysCount(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := ptrTime(now.Add(-time.Hour))
	entries := []model.LedgerEntry{
		entry(5, past),
		entry(-3, past),
	}
	// The accrual expired but the debit still stands.
	if got := FoldBalance(entries, now); got != -3 {
		t.Errorf("FoldBalance = %d, want -3", got)
	}
}

func TestFoldBalanceEntryExpiringExactlyNowStillCounts(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	entries := []model.LedgerEntry{entry(1, ptrTime(now))}
	if got := FoldBalance(entries, now); got != 1 {
		t.Errorf("FoldBalance = %d, want 1", got)
	}
}

func TestNextExpiry(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	soon := now.Add(48 * time.Hour)
	later := now.Add(30 * 24 * time.Hour)
	entries := []model.LedgerEntry{
		entry(1, ptrTime(later)),
		entry(1, ptrTime(soon)),
		entry(1, ptrTime(now.Add(-time.Hour))), // expired, ignored
		entry(-2, ptrTime(now.Add(time.Hour))), // debit, ignored
		entry(1, nil),
	}
	got := NextExpiry(entries, now)
	if got == nil || !got.Equal(soon) {
		t.Errorf("NextExpiry = %v, want %v", got, soon)
	}
}

func TestNextExpiryNilWhenNothingExpires(t *testing.T) {
	now := time.Now()
	entries := []model.LedgerEntry{entry(3, nil), entry(-1, nil)}
	if got := NextExpiry(entries, now); got != nil {
		t.Errorf("NextExpiry = %v, want nil", got)
	}
}

func TestGuardBalanceRejectsOverdraft(t *testing.T) {
	cases := []struct {
		balance, delta int
		ok             bool
	}{
		{5, -3, true},
		{5, -5, true}, // draining to exactly zero is allowed
		{5, -6, false},
		{0, -1, false},
		{0, 1, true},
	}
	for _, c := range cases {
		err := GuardBalance(c.balance, c.delta)
		if c.ok && err != nil {
			t.Errorf("GuardBalance(%d, %d) = %v, want nil", c.balance, c.delta, err)
		}
		if !c.ok && !errors.Is(err, ErrInsufficientBalance) {
			t.Errorf("GuardBalance(%d, %d) = %v, want ErrInsufficientBalance", c.balance, c.delta, err)
		}
	}
}

func TestExpiredAccrualsCannotFundADebit(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	entries := []model.LedgerEntry{
		entry(10, ptrTime(now.Add(-time.Hour))), // expired
		entry(2, ptrTime(now.Add(time.Hour))),
	}
	balance := FoldBalance(entries, now)
	if balance != 2 {
		t.Fatalf("FoldBalance = %d, want 2", balance)
	}
	if err := GuardBalance(balance, -3); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("debit against expired points = %v, want ErrInsufficientBalance", err)
	}
	if err := GuardBalance(balance, -2); err != nil {
		t.Errorf("debit within live balance = %v, want nil", err)
	}
}

func TestUnlockedTiersAreCumulative(t *testing.T) {
	cases := []struct {
		balance int
		tiers   []int
	}{
		{0, []int{}},
		{4, []int{}},
		{5, []int{5}},
		{12, []int{5, 10}},
		{20, []int{5, 10, 20}},
		{57, []int{5, 10, 20}},
	}
	for _, c := range cases {
		got := UnlockedTiers(c.balance)
		if len(got) != len(c.tiers) {
			t.Errorf("UnlockedTiers(%d) returned %d tiers, want %d", c.balance, len(got), len(c.tiers))
			continue
		}
		for i, tier := range c.tiers {
			if got[i].Tier != tier {
				t.Errorf("UnlockedTiers(%d)[%d].Tier = %d, want %d", c.balance, i, got[i].Tier, tier)
			}
		}
	}
}

func TestTierInfoFor(t *testing.T) {
	cases := []struct {
		tier     int
		ok       bool
		discount string
		price    float64
	}{
		{5, true, "30%", 18.20},
		{10, true, "60%", 10.40},
		{20, true, "100%", 0},
		{15, false, "", 0},
		{0, false, "", 0},
	}
	for _, c := range cases {
		info, ok := TierInfoFor(c.tier)
		if ok != c.ok {
			t.Errorf("TierInfoFor(%d) ok = %v, want %v", c.tier, ok, c.ok)
			continue
		}
		if !ok {
			continue
		}
		if info.Discount != c.discount || info.Price != c.price {
			t.Errorf("TierInfoFor(%d) = %q/%v, want %q/%v", c.tier, info.Discount, info.Price, c.discount, c.price)
		}
	}
}

func TestNewOrderAccrual(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	e := NewOrderAccrual(7, "ORD-ABC12345", now)
	if e.Delta != 1 {
		t.Errorf("Delta = %d, want 1", e.Delta)
	}
	if e.Reason != constants.LEDGER_ORDER {
		t.Errorf("Reason = %q, want %q", e.Reason, constants.LEDGER_ORDER)
	}
	if e.Expiry == nil || !e.Expiry.Equal(now.Add(AccrualValidity)) {
		t.Errorf("Expiry = %v, want %v", e.Expiry, now.Add(AccrualValidity))
	}
}

package helper

import (
	"pizzeria_manager/constants"
	"pizzeria_manager/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccrualValidity is how long an order accrual keeps counting toward
// the balance. Expired accruals stay in the ledger for audit but stop
// being summed.
const AccrualValidity = 12 * 30 * 24 * time.Hour // 12 months

const ECGFullPrice = 26.0

var tierTable = []model.TierInfo{
	{Tier: 5, Discount: "30%", Price: 18.20},
	{Tier: 10, Discount: "60%", Price: 10.40},
	{Tier: 20, Discount: "100%", Price: 0},
}

// CountsToward reports whether an entry contributes to the balance at
// the given instant. Negative entries always count; positive entries
// only while unexpired.
func CountsToward(e model.LedgerEntry, now time.Time) bool {
	if e.Delta < 0 {
		return true
	}
	if e.Expiry == nil {
		return true
	}
	return !e.Expiry.Before(now)
}

// FoldBalance sums the entries that count at the given instant.
func FoldBalance(entries []model.LedgerEntry, now time.Time) int {
	total := 0
	for _, e := range entries {
		if CountsToward(e, now) {
			total += e.Delta
		}
	}
	return total
}

// NextExpiry returns the earliest expiry among counted positive
// entries, or nil when no counted entry expires.
func NextExpiry(entries []model.LedgerEntry, now time.Time) *time.Time {
	var min *time.Time
	for _, e := range entries {
		if e.Delta <= 0 || e.Expiry == nil || !CountsToward(e, now) {
			continue
		}
		if min == nil || e.Expiry.Before(*min) {
			exp := *e.Expiry
			min = &exp
		}
	}
	return min
}

// UnlockedTiers lists every tier the balance reaches. Tiers are
// cumulative: a customer at 12 points holds both the 5 and the 10.
func UnlockedTiers(balance int) []model.TierInfo {
	unlocked := []model.TierInfo{}
	for _, t := range tierTable {
		if balance >= t.Tier {
			unlocked = append(unlocked, t)
		}
	}
	return unlocked
}

// TierInfoFor returns the tier row for an exact tier value.
func TierInfoFor(tier int) (model.TierInfo, bool) {
	for _, t := range tierTable {
		if t.Tier == tier {
			return t, true
		}
	}
	return model.TierInfo{}, false
}

// CustomerBalance computes the live balance inside tx. Callers that
// are about to mutate the ledger must have locked the customer row
// first (see LockCustomer), otherwise the read may go stale under
// concurrent writes.
func CustomerBalance(tx *gorm.DB, customerId uint, now time.Time) (int, error) {
	var entries []model.LedgerEntry
	if err := tx.Where("customer_id = ?", customerId).Find(&entries).Error; err != nil {
		return 0, err
	}
	return FoldBalance(entries, now), nil
}

// LockCustomer takes the per-customer row lock that serializes every
// ledger mutation for that customer.
func LockCustomer(tx *gorm.DB, customerId uint) (model.Customer, error) {
	var customer model.Customer
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&customer, customerId).Error
	return customer, err
}

// GuardBalance rejects any delta that would drive the balance below
// zero. Every ledger write passes through it.
func GuardBalance(balance, delta int) error {
	if balance+delta < 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// AppendEntry is the only ledger mutator. It locks the customer row,
// recomputes the balance, and rejects any entry that would drive it
// negative. Must run inside a transaction.
func AppendEntry(tx *gorm.DB, entry *model.LedgerEntry) error {
	if _, err := LockCustomer(tx, entry.CustomerId); err != nil {
		return err
	}
	balance, err := CustomerBalance(tx, entry.CustomerId, time.Now())
	if err != nil {
		return err
	}
	if err := GuardBalance(balance, entry.Delta); err != nil {
		return err
	}
	return tx.Create(entry).Error
}

// NewOrderAccrual builds the +1 entry an order earns on delivery.
func NewOrderAccrual(customerId uint, orderCode string, now time.Time) *model.LedgerEntry {
	expiry := now.Add(AccrualValidity)
	return &model.LedgerEntry{
		CustomerId: customerId,
		Delta:      1,
		Reason:     constants.LEDGER_ORDER,
		RefCode:    orderCode,
		Expiry:     &expiry,
	}
}

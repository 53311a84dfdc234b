package helper

import (
	"pizzeria_manager/constants"
	"pizzeria_manager/model"
	"time"

	"gorm.io/gorm"
)

// ValidateTransferAmount checks the static precondition on the gifted
// amount before any storage is touched.
func ValidateTransferAmount(amount int) error {
	if amount < 1 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateTransferParties rejects a gift a customer addresses to
// themselves.
func ValidateTransferParties(senderPhone, recipientPhone string) error {
	if senderPhone == recipientPhone {
		return ErrSelfTransfer
	}
	return nil
}

// ExecuteTransfer moves points between two customers as one atomic
// unit: the sender row is locked, the balance re-read under that lock,
// and the transfer row plus both ledger entries are written together.
// The paired deltas always sum to zero.
func ExecuteTransfer(tx *gorm.DB, sender, recipient model.Customer, amount int, code string, message *string) error {
	if _, err := LockCustomer(tx, sender.ID); err != nil {
		return err
	}
	balance, err := CustomerBalance(tx, sender.ID, time.Now())
	if err != nil {
		return err
	}
	if err := GuardBalance(balance, -amount); err != nil {
		return err
	}

	transfer := model.Trasferimento{
		Code:        code,
		SenderId:    sender.ID,
		RecipientId: recipient.ID,
		Amount:      amount,
		Message:     message,
	}
	if err := tx.Create(&transfer).Error; err != nil {
		return err
	}

	sent := model.LedgerEntry{
		CustomerId: sender.ID,
		Delta:      -amount,
		Reason:     constants.LEDGER_GIFT_SENT,
		RefCode:    code,
	}
	if err := tx.Create(&sent).Error; err != nil {
		return err
	}

	// Gifted points inherit no fresh expiry.
	received := model.LedgerEntry{
		CustomerId: recipient.ID,
		Delta:      amount,
		Reason:     constants.LEDGER_GIFT_RECEIVED,
		RefCode:    code,
	}
	return tx.Create(&received).Error
}

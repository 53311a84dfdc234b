package helper

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTransferAmount(t *testing.T) {
	cases := []struct {
		amount int
		ok     bool
	}{
		{1, true},
		{10, true},
		{0, false},
		{-5, false},
	}
	for _, c := range cases {
		err := ValidateTransferAmount(c.amount)
		if c.ok && err != nil {
			t.Errorf("ValidateTransferAmount(%d) = %v, want nil", c.amount, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("ValidateTransferAmount(%d) = %v, want ErrInvalidAmount", c.amount, err)
		}
	}
}

func TestValidateTransferParties(t *testing.T) {
	if err := ValidateTransferParties("3331112222", "3331112222"); !errors.Is(err, ErrSelfTransfer) {
		t.Errorf("self transfer = %v, want ErrSelfTransfer", err)
	}
	if err := ValidateTransferParties("3331112222", "3339998888"); err != nil {
		t.Errorf("distinct parties = %v, want nil", err)
	}
}

func TestCodeGenerators(t *testing.T) {
	cases := []struct {
		code   string
		prefix string
	}{
		{NewOrderCode(), "ORD-"},
		{NewTransferCode(), "TRF-"},
		{NewRedemptionCode(), "ECG-"},
	}
	for _, c := range cases {
		if !strings.HasPrefix(c.code, c.prefix) {
			t.Errorf("code %q missing prefix %q", c.code, c.prefix)
		}
		if len(c.code) != len(c.prefix)+8 {
			t.Errorf("code %q has length %d, want %d", c.code, len(c.code), len(c.prefix)+8)
		}
		if c.code != strings.ToUpper(c.code) {
			t.Errorf("code %q is not uppercase", c.code)
		}
	}
	if NewOrderCode() == NewOrderCode() {
		t.Error("consecutive order codes collided")
	}
}

// utils/validation.go
package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	phoneDigits = regexp.MustCompile(`^[6-9]\d{9}$`)
	gstPattern  = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// ValidatePhone accepts an Indian mobile number: after stripping
// spaces, dashes, parentheses and a +91 prefix, the digit string must
// be exactly 10 long and start with 6, 7, 8 or 9.
func ValidatePhone(phone string) error {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	cleaned = strings.TrimPrefix(cleaned, "+91")
	if cleaned == "" {
		return errors.New("phone number is required")
	}
	if !phoneDigits.MatchString(cleaned) {
		return errors.New("enter a valid 10-digit mobile number")
	}
	return nil
}

// ValidateGST accepts an empty string (GST is optional) or a
// 15-character GSTIN in the standard format.
func ValidateGST(gst string) error {
	if gst == "" {
		return nil
	}
	if !gstPattern.MatchString(strings.ToUpper(strings.TrimSpace(gst))) {
		return errors.New("enter a valid 15-character GST number")
	}
	return nil
}

// ValidatePrice bounds a product price.
func ValidatePrice(price float64) error {
	if price <= 0 {
		return errors.New("price must be greater than zero")
	}
	if price >= 1e7 {
		return errors.New("price is too large")
	}
	return nil
}

// ValidateAmount checks a transaction amount.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// ValidateRequired rejects blank required fields with the field name
// in the message.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(field + " is required")
	}
	return nil
}

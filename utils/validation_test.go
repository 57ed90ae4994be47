package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"9876543210",
		"6000000000",
		"+919876543210",
		"98765 43210",
		"98765-43210",
		"(98765)43210",
	}
	for _, phone := range valid {
		assert.NoError(t, ValidatePhone(phone), phone)
	}

	invalid := []string{
		"",
		"12345",
		"1234567890",  // starts with 1
		"5876543210",  // starts with 5
		"98765432100", // 11 digits
		"987654321",   // 9 digits
		"98765abc10",
		"+929876543210", // wrong country prefix leaves 12 digits
	}
	for _, phone := range invalid {
		err := ValidatePhone(phone)
		assert.Error(t, err, phone)
		if err != nil {
			assert.NotEmpty(t, err.Error())
		}
	}
}

func TestValidateGST(t *testing.T) {
	// optional field
	assert.NoError(t, ValidateGST(""))

	assert.NoError(t, ValidateGST("27AAPFU0939F1ZV"))
	assert.NoError(t, ValidateGST("29ABCDE1234FiZ5"), "lowercase is normalised")

	invalid := []string{
		"27AAPFU0939F1Z",    // 14 chars
		"27AAPFU0939F1ZVX",  // 16 chars
		"A7AAPFU0939F1ZV",   // letter in state code
		"27AAPF50939F1ZV",   // digit where letter expected
		"27AAPFU0939F1XV",   // missing fixed Z
		"27AAPFU0939F10ZV",  // wrong layout
		"not-a-gst-number!",
	}
	for _, gst := range invalid {
		assert.Error(t, ValidateGST(gst), gst)
	}
}

func TestValidatePrice(t *testing.T) {
	assert.NoError(t, ValidatePrice(0.5))
	assert.NoError(t, ValidatePrice(999999))
	assert.Error(t, ValidatePrice(0))
	assert.Error(t, ValidatePrice(-10))
	assert.Error(t, ValidatePrice(1e7))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-5))
}

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("name", "Ravi"))
	err := ValidateRequired("name", "   ")
	assert.EqualError(t, err, "name is required")
}

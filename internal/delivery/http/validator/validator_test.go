package validator

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderPayload struct {
	BusinessID uint   `json:"business_id" validate:"required"`
	Services   string `json:"services" validate:"required,max=255"`
	FullPrice  string `json:"full_price" validate:"required,money"`
	FeePrice   string `json:"fee_price" validate:"omitempty,money"`
	Status     int    `json:"status" validate:"gte=0,lte=255"`
}

func TestRequestValidator_Valid(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	payload := &orderPayload{
		BusinessID: 3,
		Services:   "POS installation",
		FullPrice:  "150000",
		Status:     1,
	}
	assert.NoError(t, v.Validate(payload))
}

func TestRequestValidator_MoneyRule(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	cases := []struct {
		name      string
		fullPrice string
		valid     bool
	}{
		{"integer amount", "150000", true},
		{"decimal amount", "99.50", true},
		{"negative amount", "-10", true},
		{"not a number", "abc", false},
		{"trailing junk", "150000x", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := &orderPayload{BusinessID: 1, Services: "repair", FullPrice: tc.fullPrice}
			err := v.Validate(payload)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRequestValidator_CollectsAllFieldMessages(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	payload := &orderPayload{Status: 500}
	err = v.Validate(payload)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	assert.Contains(t, validationErr.Errors, "The business_id field is required.")
	assert.Contains(t, validationErr.Errors, "The services field is required.")
	assert.Contains(t, validationErr.Errors, "The full_price field is required.")
	assert.Contains(t, validationErr.Errors, "The status may not be greater than 255.")
}

func TestRequestValidator_OmitemptySkipsMoneyRule(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	payload := &orderPayload{BusinessID: 1, Services: "repair", FullPrice: "100", FeePrice: ""}
	assert.NoError(t, v.Validate(payload))
}

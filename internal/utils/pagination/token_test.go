package pagination_test

import (
	"testing"
	"time"

	"github.com/nankya-elsa/BSE-25-6-MALL-RENT-MANAGEMENT-SYSTEM/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	paymentDate := time.Date(2025, time.March, 10, 14, 30, 0, 123456789, time.UTC)
	paymentID := "0f2c6a9e-1d4b-4c5a-9f3e-7b8a6c5d4e3f"

	token := pagination.EncodeToken(paymentDate, paymentID)
	require.NotEmpty(t, token)

	gotDate, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, paymentDate.Equal(gotDate))
	assert.Equal(t, paymentID, gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

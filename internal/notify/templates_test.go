package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVND(t *testing.T) {
	type testCase struct {
		amount int64
		want   string
	}

	tests := []testCase{
		{0, "0"},
		{500, "500"},
		{1500, "1,500"},
		{15000000, "15,000,000"},
		{1234567890, "1,234,567,890"},
		{-15000000, "-15,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVND(tt.amount))
		})
	}
}

func TestChallengeTemplate(t *testing.T) {
	var sb strings.Builder

	err := challengeTemplate.Execute(&sb, challengeData{
		Name:             "Nguyen Van An",
		Code:             "123456",
		Semester:         1,
		AcademicYear:     "2025-2026",
		Amount:           15_000_000,
		ExpiresInMinutes: 5,
	})
	require.NoError(t, err)

	html := sb.String()
	assert.Contains(t, html, "123456")
	assert.Contains(t, html, "Nguyen Van An")
	assert.Contains(t, html, "15,000,000 VND")
	assert.Contains(t, html, "5 minutes")
}

func TestReceiptTemplate(t *testing.T) {
	var sb strings.Builder

	err := receiptTemplate.Execute(&sb, receiptData{
		Name:         "Nguyen Van An",
		ReceiptRef:   "TXN-A1B2C3D4E5F6",
		Semester:     1,
		AcademicYear: "2025-2026",
		Amount:       15_000_000,
		NewBalance:   5_000_000,
		PaidAt:       "2026-03-10 09:00",
	})
	require.NoError(t, err)

	html := sb.String()
	assert.Contains(t, html, "TXN-A1B2C3D4E5F6")
	assert.Contains(t, html, "15,000,000 VND")
	assert.Contains(t, html, "5,000,000 VND")
	assert.Contains(t, html, "2026-03-10 09:00")
}

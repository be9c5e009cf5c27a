package tbparse_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/tbrecon/internal/tbparse"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantCode   string
		wantAmount string
	}{
		{
			name:       "debit balance line",
			text:       "1112-01 Cash on hand 0.00 0.00 0.00 0.00 5,331,520.94 0.00",
			wantCode:   "1112-01",
			wantAmount: "5331520.94",
		},
		{
			name:       "credit balance line is negated",
			text:       "2137-00 VAT payable 0.00 0.00 0.00 0.00 0.00 44,145.07",
			wantCode:   "2137-00",
			wantAmount: "-44145.07",
		},
		{
			name:       "star separator is normalized",
			text:       "1112*01 Cash on hand 0.00 0.00 0.00 0.00 5,331,520.94 0.00",
			wantCode:   "1112-01",
			wantAmount: "5331520.94",
		},
		{
			name:       "multi word label",
			text:       "2131-04 Social security fund payable 0.00 0.00 1,200.00 1,200.00 0.00 9,000.00",
			wantCode:   "2131-04",
			wantAmount: "-9000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tbparse.Parse(tt.text)

			require.Len(t, result.Records, 1)
			assert.Empty(t, result.Warnings)
			assert.Equal(t, tt.wantCode, result.Records[0].Code)
			assert.True(t, result.Records[0].Amount.Equal(decimal.RequireFromString(tt.wantAmount)),
				"amount = %s, want %s", result.Records[0].Amount, tt.wantAmount)
		})
	}
}

func TestParse_SkipsNonMatchingLines(t *testing.T) {
	text := "HERCULES CO., LTD.\n" +
		"Trial Balance as of 30 April 2025\n" +
		"Account Opening Period Balance\n" +
		"1112-01 Cash on hand 0.00 0.00 0.00 0.00 5,331,520.94 0.00\n" +
		"Page 1 of 3\n" +
		"2132-01 Withholding tax PND1 0.00 0.00 0.00 0.00 0.00 1,000.00\n" +
		"\n" +
		"Grand total"

	result := tbparse.Parse(text)

	require.Len(t, result.Records, 2)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "1112-01", result.Records[0].Code)
	assert.Equal(t, "2132-01", result.Records[1].Code)
}

func TestParse_EmptyInput(t *testing.T) {
	result := tbparse.Parse("")

	assert.Empty(t, result.Records)
	assert.Empty(t, result.Warnings)
}

func TestParse_PreservesDocumentOrder(t *testing.T) {
	text := "2132-02 Withholding tax PND3 0.00 0.00 0.00 0.00 0.00 165.00\n" +
		"1112-01 Cash at bank 0.00 0.00 0.00 0.00 5,331,520.94 0.00\n" +
		"2132-02 Withholding tax PND53 0.00 0.00 0.00 0.00 0.00 540.00"

	result := tbparse.Parse(text)

	require.Len(t, result.Records, 3)
	assert.Equal(t, "2132-02", result.Records[0].Code)
	assert.True(t, result.Records[0].Amount.Equal(decimal.RequireFromString("-165.00")))
	assert.Equal(t, "1112-01", result.Records[1].Code)
	assert.Equal(t, "2132-02", result.Records[2].Code)
}

func TestParse_LineWithoutLabelIsSkipped(t *testing.T) {
	// Six numeric fields but no account label between code and amounts.
	text := "1112-01 0.00 0.00 0.00 0.00 5,331,520.94 0.00"

	result := tbparse.Parse(text)

	assert.Empty(t, result.Records)
}

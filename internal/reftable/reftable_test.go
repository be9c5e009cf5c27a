package reftable_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/tbrecon/internal/reftable"
)

func TestDefault(t *testing.T) {
	table := reftable.Default()

	require.Len(t, table.Entries, 13)

	// Declaration order is part of the contract.
	assert.Equal(t, "Bank1 amt", table.Entries[0].Name)
	assert.Equal(t, "SSO amt", table.Entries[12].Name)

	// PND3 and PND53 share one ledger code.
	assert.Equal(t, "2132-02", table.Entries[9].TBCode)
	assert.Equal(t, "2132-02", table.Entries[10].TBCode)

	assert.True(t, table.Entries[0].Expected.Valid)
	assert.True(t, table.Entries[0].Expected.Decimal.Equal(decimal.RequireFromString("5331520.94")))
	assert.False(t, table.Entries[1].Expected.Valid, "Bank2 has no collected actual")
}

func TestLoad(t *testing.T) {
	data := []byte(`
entries:
  - name: Bank1 amt
    tb_code: 1112-01
    expected: "5331520.94"
    source_file: bank1_{company}_{month}.pdf
  - name: SSO amt
    tb_code: "2131*04"
    source_file: sso_{month}.pdf
`)

	table, err := reftable.Load(data)
	require.NoError(t, err)
	require.Len(t, table.Entries, 2)

	assert.True(t, table.Entries[0].Expected.Decimal.Equal(decimal.RequireFromString("5331520.94")))
	assert.False(t, table.Entries[1].Expected.Valid)
	assert.Equal(t, "2131-04", table.Entries[1].TBCode, "codes are normalized on load")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty profile", data: "entries: []"},
		{name: "missing name", data: "entries:\n  - tb_code: 1112-01"},
		{name: "missing code", data: "entries:\n  - name: Bank1 amt"},
		{name: "bad amount", data: "entries:\n  - name: Bank1 amt\n    tb_code: 1112-01\n    expected: \"5,331.94\""},
		{name: "not yaml", data: "{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reftable.Load([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

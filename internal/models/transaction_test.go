package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_ParsedDate(t *testing.T) {
	txn := Transaction{TxnDate: "15/06/2025"}

	parsed, err := txn.ParsedDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), parsed)
}

func TestTransaction_ParsedDate_Invalid(t *testing.T) {
	txn := Transaction{TxnDate: "2025-06-15"}

	_, err := txn.ParsedDate()
	assert.Error(t, err)
}

func TestTransaction_HasMCC(t *testing.T) {
	assert.True(t, (&Transaction{MCC: 5411}).HasMCC())
	assert.False(t, (&Transaction{}).HasMCC())
}

func TestTransaction_MatchesCardFragment(t *testing.T) {
	txn := Transaction{CardNo: "1111222233334444"}

	assert.True(t, txn.MatchesCardFragment("4444"), "last four digits")
	assert.True(t, txn.MatchesCardFragment("2233"), "mid-number fragment")
	assert.True(t, txn.MatchesCardFragment(""), "empty fragment matches everything")
	assert.False(t, txn.MatchesCardFragment("9999"))
}

func TestTransaction_MatchesCardFragment_CaseInsensitive(t *testing.T) {
	txn := Transaction{CardNo: "XXXX-XXXX-XXXX-4444"}

	assert.True(t, txn.MatchesCardFragment("xxxx-4444"))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "****-****-****-4444", MaskCardNumber("1111222233334444"))
	assert.Equal(t, "****-****-****-4444", MaskCardNumber("1111-2222-3333-4444"))
}

func TestMaskCardNumber_Idempotent(t *testing.T) {
	masked := MaskCardNumber("1111222233334444")
	assert.Equal(t, masked, MaskCardNumber(masked))
}

func TestMaskCardNumber_ShortFragmentUnchanged(t *testing.T) {
	assert.Equal(t, "44", MaskCardNumber("44"))
	assert.Equal(t, "", MaskCardNumber(""))
}

func TestTransaction_MaskedCardNo(t *testing.T) {
	txn := Transaction{CardNo: "1111222233334444", SourceAmt: decimal.NewFromInt(100)}
	assert.Equal(t, "****-****-****-4444", txn.MaskedCardNo())
}

func TestGroupStats_SingleCardNumber(t *testing.T) {
	assert.Equal(t, "1111222233334444", GroupStats{CardNumbers: []string{"1111222233334444"}}.SingleCardNumber())
	assert.Equal(t, "", GroupStats{CardNumbers: []string{"a", "b"}}.SingleCardNumber())
	assert.Equal(t, "", GroupStats{}.SingleCardNumber())
}

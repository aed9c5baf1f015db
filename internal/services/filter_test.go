package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardlytics/internal/dates"
	"cardlytics/internal/models"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := dates.Parse(value)
	require.NoError(t, err)
	return parsed
}

func makeTxn(card, date, particulars string, amount float64, mcc int) models.Transaction {
	amt := decimal.NewFromFloat(amount)
	return models.Transaction{
		CardNo:         card,
		TxnDate:        date,
		RefNo:          "REF000000000001",
		Particulars:    particulars,
		SourceCurrency: "INR",
		SourceAmt:      amt,
		Amount:         amt.StringFixed(2),
		MCC:            mcc,
	}
}

func intPtr(v int) *int { return &v }

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestMatchesFilters_EmptyFiltersMatchEverything(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)
	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{}))
}

func TestMatchesFilters_CardFragment(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)

	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{CardFragment: "4444"}))
	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{CardFragment: "4111222233334444"}))
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{CardFragment: "9999"}))
}

func TestMatchesFilters_MCCExact(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)

	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{MCC: intPtr(5411)}))
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{MCC: intPtr(5812)}))
}

func TestMatchesFilters_MerchantSubstringCaseInsensitive(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)

	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{Merchant: "bazaar"}))
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{Merchant: "swiggy"}))
}

func TestMatchesFilters_AmountBoundsInclusive(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)

	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{MinAmount: decPtr(250)}))
	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{MaxAmount: decPtr(250)}))
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{MinAmount: decPtr(250.01)}))
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{MaxAmount: decPtr(249.99)}))
}

func TestMatchesFilters_MonthAndYear(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)

	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{Month: intPtr(6), Year: intPtr(2025)}))
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{Month: intPtr(7), Year: intPtr(2025)}))
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{Month: intPtr(6), Year: intPtr(2024)}))
	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{Year: intPtr(2025)}))
}

func TestMatchesFilters_UnparseableDateFailsDateFiltersOnly(t *testing.T) {
	txn := makeTxn("4111222233334444", "garbage", "BIG BAZAAR MUMBAI", 250, 5411)

	// No date constraint: the record still matches.
	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{MCC: intPtr(5411)}))
	// Any date constraint: the record can never match.
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{Year: intPtr(2025)}))
}

func TestMatchesFilters_DateRangeInclusive(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)
	from := mustParse(t, "15/06/2025")
	to := mustParse(t, "30/06/2025")

	assert.True(t, MatchesFilters(&txn, models.TransactionFilters{FromDate: &from, ToDate: &to}))

	after := mustParse(t, "16/06/2025")
	assert.False(t, MatchesFilters(&txn, models.TransactionFilters{FromDate: &after, ToDate: &to}))
}

func TestMatchesFilters_AllFiltersAreANDed(t *testing.T) {
	txn := makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 250, 5411)

	filters := models.TransactionFilters{
		CardFragment: "4444",
		MCC:          intPtr(5411),
		Merchant:     "BAZAAR",
		MinAmount:    decPtr(100),
		Month:        intPtr(6),
		Year:         intPtr(2025),
	}
	assert.True(t, MatchesFilters(&txn, filters))

	filters.MCC = intPtr(5812)
	assert.False(t, MatchesFilters(&txn, filters))
}

func TestFilterTransactions_PreservesOrderAndInput(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 100, 5411),
		makeTxn("4111222233335555", "16/06/2025", "SWIGGY BANGALORE", 200, 5812),
		makeTxn("4111222233334444", "17/06/2025", "DMART THANE", 300, 5411),
	}

	got := FilterTransactions(txns, models.TransactionFilters{MCC: intPtr(5411)})
	require.Len(t, got, 2)
	assert.Equal(t, "BIG BAZAAR MUMBAI", got[0].Particulars)
	assert.Equal(t, "DMART THANE", got[1].Particulars)

	// Source slice untouched.
	assert.Len(t, txns, 3)
	assert.Equal(t, "SWIGGY BANGALORE", txns[1].Particulars)
}

func TestSortByDateDesc_UnparseableLast(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "not a date", "A", 1, 5411),
		makeTxn("c2", "01/06/2025", "B", 2, 5411),
		makeTxn("c3", "15/06/2025", "C", 3, 5411),
	}

	SortByDateDesc(txns)
	assert.Equal(t, "C", txns[0].Particulars)
	assert.Equal(t, "B", txns[1].Particulars)
	assert.Equal(t, "A", txns[2].Particulars)
}

func TestSortByAmountDesc(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "A", 10, 5411),
		makeTxn("c2", "01/06/2025", "B", 30, 5411),
		makeTxn("c3", "01/06/2025", "C", 20, 5411),
	}

	SortByAmountDesc(txns)
	assert.Equal(t, "B", txns[0].Particulars)
	assert.Equal(t, "C", txns[1].Particulars)
	assert.Equal(t, "A", txns[2].Particulars)
}

package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardlytics/internal/models"
)

func TestFoldStatistics_BasicAmounts(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("4111222233334444", "15/06/2025", "BIG BAZAAR MUMBAI", 100, 5411),
		makeTxn("4111222233334444", "20/06/2025", "DMART THANE", 300, 5411),
	}

	stats := FoldStatistics(txns, 5)

	assert.Equal(t, 2, stats.TransactionCount)
	assert.True(t, stats.TotalAmount.Equal(decimal.NewFromInt(400)), "total = %s", stats.TotalAmount)
	assert.True(t, stats.AverageAmount.Equal(decimal.NewFromInt(200)), "avg = %s", stats.AverageAmount)
	assert.True(t, stats.MinAmount.Equal(decimal.NewFromInt(100)), "min = %s", stats.MinAmount)
	assert.True(t, stats.MaxAmount.Equal(decimal.NewFromInt(300)), "max = %s", stats.MaxAmount)
}

func TestFoldStatistics_EmptyInputYieldsZeroes(t *testing.T) {
	stats := FoldStatistics(nil, 5)

	assert.Equal(t, 0, stats.TransactionCount)
	assert.True(t, stats.TotalAmount.IsZero())
	assert.True(t, stats.AverageAmount.IsZero())
	assert.True(t, stats.MinAmount.IsZero())
	assert.True(t, stats.MaxAmount.IsZero())
	assert.Zero(t, stats.TotalRewardPoints)
	assert.Empty(t, stats.TopMerchants)
	assert.Nil(t, stats.FirstDate)
	assert.Nil(t, stats.LastDate)
}

func TestFoldStatistics_MinAvgMaxOrdering(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "A", 17.35, 5411),
		makeTxn("c1", "02/06/2025", "B", 250.10, 5411),
		makeTxn("c1", "03/06/2025", "C", 99.99, 5411),
		makeTxn("c1", "04/06/2025", "D", 4999.00, 5411),
	}

	stats := FoldStatistics(txns, 0)

	assert.True(t, stats.MinAmount.LessThanOrEqual(stats.AverageAmount))
	assert.True(t, stats.AverageAmount.LessThanOrEqual(stats.MaxAmount))
	assert.True(t, stats.TotalAmount.Equal(stats.AverageAmount.Mul(decimal.NewFromInt(int64(stats.TransactionCount)))))
}

func TestFoldStatistics_RewardPointsAndDates(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "20/06/2025", "A", 100, 5411),
		makeTxn("c1", "05/06/2025", "B", 200, 5411),
		makeTxn("c1", "bad date", "C", 300, 5411),
	}
	txns[0].RewardPoints = 10
	txns[1].RewardPoints = 5

	stats := FoldStatistics(txns, 0)

	assert.Equal(t, 15, stats.TotalRewardPoints)
	assert.True(t, stats.AverageRewardPoints.Equal(decimal.NewFromInt(5)))

	// Unparseable dates count toward totals but never toward the span.
	assert.Equal(t, 3, stats.TransactionCount)
	require.NotNil(t, stats.FirstDate)
	require.NotNil(t, stats.LastDate)
	assert.Equal(t, mustParse(t, "05/06/2025"), *stats.FirstDate)
	assert.Equal(t, mustParse(t, "20/06/2025"), *stats.LastDate)
}

func TestFoldStatistics_UniqueCardsAndMCCs(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "A", 100, 5812),
		makeTxn("c2", "02/06/2025", "B", 100, 5411),
		makeTxn("c1", "03/06/2025", "C", 100, 5411),
		makeTxn("c1", "04/06/2025", "D", 100, 0),
	}

	stats := FoldStatistics(txns, 0)

	assert.Equal(t, 2, stats.UniqueCards)
	assert.Equal(t, []string{"c1", "c2"}, stats.CardNumbers)
	// The zero "absent" MCC marker never counts as a category.
	assert.Equal(t, 2, stats.UniqueMCCs)
	assert.Equal(t, []int{5411, 5812}, stats.MCCCodes)
}

func TestTopMerchants_FrequencyThenFirstSeen(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "SWIGGY BANGALORE", 10, 5812),
		makeTxn("c1", "02/06/2025", "ZOMATO GURGAON", 10, 5812),
		makeTxn("c1", "03/06/2025", "ZOMATO GURGAON", 10, 5812),
		makeTxn("c1", "04/06/2025", "DOMINOS PIZZA MUMBAI", 10, 5814),
		makeTxn("c1", "05/06/2025", "SWIGGY BANGALORE", 10, 5812),
	}

	stats := FoldStatistics(txns, 2)

	require.Len(t, stats.TopMerchants, 2)
	// Both have count 2; SWIGGY was seen first so it wins the tie.
	assert.Equal(t, models.MerchantCount{Merchant: "SWIGGY BANGALORE", Count: 2}, stats.TopMerchants[0])
	assert.Equal(t, models.MerchantCount{Merchant: "ZOMATO GURGAON", Count: 2}, stats.TopMerchants[1])
}

func TestGroupTransactions_FirstEncounteredKeyOrder(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c2", "01/06/2025", "A", 100, 5411),
		makeTxn("c1", "02/06/2025", "B", 200, 5411),
		makeTxn("c2", "03/06/2025", "C", 300, 5411),
	}

	groups := GroupTransactions(txns, func(t *models.Transaction) (string, bool) {
		return t.CardNo, true
	}, GroupOptions{})

	require.Len(t, groups, 2)
	assert.Equal(t, "c2", groups[0].Key)
	assert.Equal(t, 2, groups[0].Stats.TransactionCount)
	assert.Equal(t, "c1", groups[1].Key)
	assert.Equal(t, 1, groups[1].Stats.TransactionCount)
}

func TestGroupTransactions_KeyRejectionExcludesRecord(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "A", 100, 5411),
		makeTxn("c1", "bad date", "B", 200, 5411),
	}

	groups := GroupTransactions(txns, monthKey, GroupOptions{})

	require.Len(t, groups, 1)
	assert.Equal(t, "2025-06", groups[0].Key)
	assert.Equal(t, 1, groups[0].Stats.TransactionCount)
}

func TestGroupTransactions_MinTransactionsThreshold(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "A", 100, 5411),
		makeTxn("c1", "02/06/2025", "B", 200, 5411),
		makeTxn("c2", "03/06/2025", "C", 300, 5411),
	}

	groups := GroupTransactions(txns, cardKey, GroupOptions{MinTransactions: 2})

	require.Len(t, groups, 1)
	assert.Equal(t, "c1", groups[0].Key)
}

func TestGroupTransactions_PartitionIsComplete(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "A", 100, 5411),
		makeTxn("c2", "02/06/2025", "B", 200, 5812),
		makeTxn("c1", "03/07/2025", "C", 300, 5411),
		makeTxn("c3", "04/07/2025", "D", 400, 4121),
	}

	groups := GroupTransactions(txns, cardKey, GroupOptions{})

	var counted int
	total := decimal.Zero
	for _, g := range groups {
		counted += g.Stats.TransactionCount
		total = total.Add(g.Stats.TotalAmount)
	}
	assert.Equal(t, len(txns), counted)
	assert.True(t, total.Equal(decimal.NewFromInt(1000)))
}

func TestSortGroupsByTotalDesc(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/06/2025", "A", 100, 5411),
		makeTxn("c2", "02/06/2025", "B", 500, 5411),
		makeTxn("c3", "03/06/2025", "C", 300, 5411),
	}

	groups := GroupTransactions(txns, cardKey, GroupOptions{})
	SortGroupsByTotalDesc(groups)

	require.Len(t, groups, 3)
	assert.Equal(t, "c2", groups[0].Key)
	assert.Equal(t, "c3", groups[1].Key)
	assert.Equal(t, "c1", groups[2].Key)
}

func TestSortGroupsByKey_MonthKeysSortChronologically(t *testing.T) {
	txns := []models.Transaction{
		makeTxn("c1", "01/11/2025", "A", 100, 5411),
		makeTxn("c1", "01/02/2025", "B", 200, 5411),
		makeTxn("c1", "15/02/2025", "C", 300, 5411),
	}

	groups := GroupTransactions(txns, monthKey, GroupOptions{})
	SortGroupsByKey(groups)

	require.Len(t, groups, 2)
	assert.Equal(t, "2025-02", groups[0].Key)
	assert.Equal(t, "2025-11", groups[1].Key)
}

package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"cardlytics/internal/models"
)

// KeyFunc assigns a record to a group. Returning ok=false excludes the
// record from grouping (e.g. an unparseable date for a month key) without
// aborting the computation.
type KeyFunc func(t *models.Transaction) (key string, ok bool)

// GroupOptions tunes the statistics fold shared by all aggregation
// use-cases.
type GroupOptions struct {
	// TopMerchants is the K of the per-group top-merchants ranking;
	// zero skips the ranking.
	TopMerchants int
	// MinTransactions drops groups with fewer records; zero or one keeps
	// every group.
	MinTransactions int
}

// groupAccumulator folds one group's records. Accumulation is unrounded;
// rounding belongs to the presentation boundary.
type groupAccumulator struct {
	count          int
	sum            decimal.Decimal
	min            decimal.Decimal
	max            decimal.Decimal
	rewardSum      int
	merchantCounts map[string]int
	merchantOrder  []string
	cards          map[string]struct{}
	cardOrder      []string
	mccs           map[int]struct{}
	mccList        []int
	firstDate      *time.Time
	lastDate       *time.Time
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{
		merchantCounts: make(map[string]int),
		cards:          make(map[string]struct{}),
		mccs:           make(map[int]struct{}),
	}
}

func (a *groupAccumulator) add(t *models.Transaction) {
	if a.count == 0 {
		a.min = t.SourceAmt
		a.max = t.SourceAmt
	} else {
		if t.SourceAmt.LessThan(a.min) {
			a.min = t.SourceAmt
		}
		if t.SourceAmt.GreaterThan(a.max) {
			a.max = t.SourceAmt
		}
	}
	a.count++
	a.sum = a.sum.Add(t.SourceAmt)
	a.rewardSum += t.RewardPoints

	if _, seen := a.merchantCounts[t.Particulars]; !seen {
		a.merchantOrder = append(a.merchantOrder, t.Particulars)
	}
	a.merchantCounts[t.Particulars]++

	if _, seen := a.cards[t.CardNo]; !seen {
		a.cards[t.CardNo] = struct{}{}
		a.cardOrder = append(a.cardOrder, t.CardNo)
	}

	if t.HasMCC() {
		if _, seen := a.mccs[t.MCC]; !seen {
			a.mccs[t.MCC] = struct{}{}
			a.mccList = append(a.mccList, t.MCC)
		}
	}

	if parsed, err := t.ParsedDate(); err == nil {
		if a.firstDate == nil || parsed.Before(*a.firstDate) {
			first := parsed
			a.firstDate = &first
		}
		if a.lastDate == nil || parsed.After(*a.lastDate) {
			last := parsed
			a.lastDate = &last
		}
	}
}

func (a *groupAccumulator) stats(topMerchants int) models.GroupStats {
	stats := models.GroupStats{
		TransactionCount:  a.count,
		TotalAmount:       a.sum,
		TotalRewardPoints: a.rewardSum,
		UniqueMerchants:   len(a.merchantCounts),
		UniqueCards:       len(a.cards),
		CardNumbers:       a.cardOrder,
		UniqueMCCs:        len(a.mccs),
		MCCCodes:          sortedMCCCodes(a.mccList),
	}

	// Mean is zero for empty groups; division never propagates a fault.
	if a.count > 0 {
		count := decimal.NewFromInt(int64(a.count))
		stats.AverageAmount = a.sum.Div(count)
		stats.AverageRewardPoints = decimal.NewFromInt(int64(a.rewardSum)).Div(count)
		stats.MinAmount = a.min
		stats.MaxAmount = a.max
	}

	if topMerchants > 0 {
		stats.TopMerchants = a.topMerchants(topMerchants)
	}

	stats.FirstDate = a.firstDate
	stats.LastDate = a.lastDate

	return stats
}

// topMerchants ranks particulars values by frequency, breaking ties by
// first-encountered order, and truncates after the full ranking is built.
func (a *groupAccumulator) topMerchants(k int) []models.MerchantCount {
	ranked := make([]models.MerchantCount, 0, len(a.merchantOrder))
	for _, merchant := range a.merchantOrder {
		ranked = append(ranked, models.MerchantCount{
			Merchant: merchant,
			Count:    a.merchantCounts[merchant],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

func sortedMCCCodes(codes []int) []int {
	out := make([]int, len(codes))
	copy(out, codes)
	sort.Ints(out)
	return out
}

// GroupTransactions partitions records by the supplied key function and
// folds each group's statistics. Results are returned in first-encountered
// key order; use-cases apply their own presentation sort. Records the key
// function rejects are excluded from every group but do not abort the fold.
func GroupTransactions(txns []models.Transaction, key KeyFunc, opts GroupOptions) []models.GroupResult {
	accumulators := make(map[string]*groupAccumulator)
	var order []string

	for i := range txns {
		k, ok := key(&txns[i])
		if !ok {
			continue
		}
		acc, exists := accumulators[k]
		if !exists {
			acc = newGroupAccumulator()
			accumulators[k] = acc
			order = append(order, k)
		}
		acc.add(&txns[i])
	}

	minCount := opts.MinTransactions
	results := make([]models.GroupResult, 0, len(order))
	for _, k := range order {
		acc := accumulators[k]
		if minCount > 1 && acc.count < minCount {
			continue
		}
		results = append(results, models.GroupResult{
			Key:   k,
			Stats: acc.stats(opts.TopMerchants),
		})
	}
	return results
}

// FoldStatistics folds an entire collection into a single statistics block,
// equivalent to grouping under one constant key.
func FoldStatistics(txns []models.Transaction, topMerchants int) models.GroupStats {
	acc := newGroupAccumulator()
	for i := range txns {
		acc.add(&txns[i])
	}
	return acc.stats(topMerchants)
}

// SortGroupsByTotalDesc orders groups by descending total amount, the
// presentation order of every top-N view. Ties keep first-encountered order.
func SortGroupsByTotalDesc(results []models.GroupResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Stats.TotalAmount.GreaterThan(results[j].Stats.TotalAmount)
	})
}

// SortGroupsByKey orders groups by ascending key string, the natural order
// for YYYY-MM month keys and zero-padded bucket keys.
func SortGroupsByKey(results []models.GroupResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
}

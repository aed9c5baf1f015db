package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupStats is the fold result for one aggregation group. Amounts are kept
// as unrounded decimals; rounding happens at the presentation boundary only.
// Constructed fresh per request and discarded after the response is built.
type GroupStats struct {
	TransactionCount    int
	TotalAmount         decimal.Decimal
	AverageAmount       decimal.Decimal
	MinAmount           decimal.Decimal
	MaxAmount           decimal.Decimal
	TotalRewardPoints   int
	AverageRewardPoints decimal.Decimal
	UniqueMerchants     int
	TopMerchants        []MerchantCount
	UniqueCards         int
	CardNumbers         []string
	UniqueMCCs          int
	MCCCodes            []int
	FirstDate           *time.Time
	LastDate            *time.Time
}

// MerchantCount pairs a particulars value with its transaction frequency.
type MerchantCount struct {
	Merchant string
	Count    int
}

// SingleCardNumber returns the full card number shared by every record in
// the group, or "" when the group spans multiple cards or is empty. Masking
// is only applied when the full number is known this way.
func (s GroupStats) SingleCardNumber() string {
	if len(s.CardNumbers) != 1 {
		return ""
	}
	return s.CardNumbers[0]
}

// GroupResult pairs a grouping key with its statistics.
type GroupResult struct {
	Key   string
	Stats GroupStats
}

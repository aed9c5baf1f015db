package services

import (
	"github.com/shopspring/decimal"

	"cardlytics/internal/dates"
	"cardlytics/internal/dto"
	"cardlytics/internal/models"
)

// Presentation boundary. Everything upstream of these helpers works on
// unrounded decimals; rounding to two decimal places happens exactly once,
// here, to avoid compounding error.

// RoundAmount converts an internal decimal to the rounded response value.
func RoundAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Percentage computes (part / whole) x 100 rounded to two decimals. A zero
// whole yields 0 rather than an error.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return RoundAmount(part.Div(whole).Mul(decimal.NewFromInt(100)))
}

// Ratio computes (part / whole) x 100 over integer counts with the same
// zero-denominator guard.
func Ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Percentage(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole)))
}

// FormatGroupStatistics renders the common statistics block of a group.
func FormatGroupStatistics(s models.GroupStats) dto.GroupStatistics {
	return dto.GroupStatistics{
		TransactionCount:    s.TransactionCount,
		TotalAmount:         RoundAmount(s.TotalAmount),
		AverageAmount:       RoundAmount(s.AverageAmount),
		MinAmount:           RoundAmount(s.MinAmount),
		MaxAmount:           RoundAmount(s.MaxAmount),
		TotalRewardPoints:   s.TotalRewardPoints,
		AverageRewardPoints: RoundAmount(s.AverageRewardPoints),
	}
}

// FormatMerchantCounts renders a top-merchants ranking. The ranking is
// already truncated by the statistics fold; this is a pure shape conversion.
func FormatMerchantCounts(merchants []models.MerchantCount) []dto.MerchantCount {
	out := make([]dto.MerchantCount, 0, len(merchants))
	for _, m := range merchants {
		out = append(out, dto.MerchantCount{Merchant: m.Merchant, Count: m.Count})
	}
	return out
}

// FormatDateSpan renders the earliest-latest span of a group, or nil when
// no record in the group carried a parseable date.
func FormatDateSpan(s models.GroupStats) *dto.DateSpan {
	if s.FirstDate == nil || s.LastDate == nil {
		return nil
	}
	return &dto.DateSpan{
		From: dates.Format(*s.FirstDate),
		To:   dates.Format(*s.LastDate),
	}
}

// MaskedGroupCard returns the masked card number for a group when the full
// number is known, i.e. every record in the group shares one card. When the
// group spans multiple cards only a fragment was supplied, so no mask is
// reported.
func MaskedGroupCard(s models.GroupStats) string {
	full := s.SingleCardNumber()
	if full == "" {
		return ""
	}
	return models.MaskCardNumber(full)
}

// FormatMCCCardStatistics renders the extended per-group block used by the
// MCC+card style aggregations.
func FormatMCCCardStatistics(s models.GroupStats) dto.MCCCardStatistics {
	return dto.MCCCardStatistics{
		GroupStatistics:  FormatGroupStatistics(s),
		MaskedCardNumber: MaskedGroupCard(s),
		UniqueMerchants:  s.UniqueMerchants,
		TopMerchants:     FormatMerchantCounts(s.TopMerchants),
		DateRange:        FormatDateSpan(s),
	}
}

// TrimGroups truncates a sorted group list to its first n entries. Trimming
// is presentation only and never happens before the statistics are complete.
func TrimGroups(results []models.GroupResult, n int) []models.GroupResult {
	if n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}

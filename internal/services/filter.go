package services

import (
	"sort"
	"strings"
	"time"

	"cardlytics/internal/dates"
	"cardlytics/internal/models"
)

// MatchesFilters evaluates every supplied predicate against a single record,
// combining them with logical AND. Absent filters are vacuously true. A
// record whose date does not parse never matches a date-dependent filter but
// is otherwise eligible.
func MatchesFilters(t *models.Transaction, f models.TransactionFilters) bool {
	if !t.MatchesCardFragment(f.CardFragment) {
		return false
	}

	if f.Query != "" && !matchesQuery(t, f.Query) {
		return false
	}

	if f.MCC != nil && t.MCC != *f.MCC {
		return false
	}

	if f.Merchant != "" &&
		!strings.Contains(strings.ToLower(t.Particulars), strings.ToLower(f.Merchant)) {
		return false
	}

	if f.MinAmount != nil && t.SourceAmt.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && t.SourceAmt.GreaterThan(*f.MaxAmount) {
		return false
	}

	if f.HasDateConstraint() {
		txnDate, err := t.ParsedDate()
		if err != nil {
			return false
		}
		if !matchesDateFilters(txnDate, f) {
			return false
		}
	}

	return true
}

func matchesQuery(t *models.Transaction, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.CardNo), q) ||
		strings.Contains(strings.ToLower(t.Particulars), q) ||
		strings.Contains(strings.ToLower(t.RefNo), q)
}

func matchesDateFilters(txnDate time.Time, f models.TransactionFilters) bool {
	if f.Month != nil && int(txnDate.Month()) != *f.Month {
		return false
	}
	if f.Year != nil && txnDate.Year() != *f.Year {
		return false
	}
	if f.FromDate != nil && txnDate.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && txnDate.After(*f.ToDate) {
		return false
	}
	return true
}

// FilterTransactions returns the subset of records passing all supplied
// predicates, in input order. The input slice is never modified.
func FilterTransactions(txns []models.Transaction, f models.TransactionFilters) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(txns))
	for i := range txns {
		if MatchesFilters(&txns[i], f) {
			filtered = append(filtered, txns[i])
		}
	}
	return filtered
}

// SortByDateDesc orders records newest first by parsed transaction date.
// Records with unparseable dates sort last; ties keep their input order.
func SortByDateDesc(txns []models.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		di, erri := dates.Parse(txns[i].TxnDate)
		dj, errj := dates.Parse(txns[j].TxnDate)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return di.After(dj)
	})
}

// SortByAmountDesc orders records by source amount, highest first.
func SortByAmountDesc(txns []models.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].SourceAmt.GreaterThan(txns[j].SourceAmt)
	})
}

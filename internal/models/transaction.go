package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cardlytics/internal/dates"
)

// Transaction is a single card transaction row as served by the upstream
// tabular store. Records are read-only: aggregation never mutates them.
type Transaction struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	CardNo         string          `gorm:"column:card_no;type:varchar(32);index" json:"card_no"`
	TxnDate        string          `gorm:"column:txn_date;type:varchar(10);index" json:"txn_date"`
	RefNo          string          `gorm:"column:ref_no;type:varchar(64)" json:"ref_no"`
	Particulars    string          `gorm:"column:particulars;type:text" json:"particulars"`
	RewardPoints   int             `gorm:"column:reward_points;default:0" json:"reward_points"`
	SourceCurrency string          `gorm:"column:source_currency;type:varchar(8)" json:"source_currency"`
	SourceAmt      decimal.Decimal `gorm:"column:source_amt;type:decimal(15,2)" json:"source_amt"`
	Amount         string          `gorm:"column:amount;type:varchar(32)" json:"amount"`
	MCC            int             `gorm:"column:mcc;index" json:"MCC"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// ParsedDate parses the DD/MM/YYYY transaction date. Records with
// unparseable dates are skipped by date-dependent grouping but still count
// toward ungrouped totals.
func (t *Transaction) ParsedDate() (time.Time, error) {
	return dates.Parse(t.TxnDate)
}

// HasMCC reports whether a merchant category code is present. The upstream
// store omits the column for some rows; those are normalized to zero at the
// record-construction boundary.
func (t *Transaction) HasMCC() bool {
	return t.MCC > 0
}

// MaskedCardNo returns the display form of the card number, exposing only
// the last four digits.
func (t *Transaction) MaskedCardNo() string {
	return MaskCardNumber(t.CardNo)
}

// MatchesCardFragment reports whether the card number contains the given
// fragment, case-insensitively. Supports the "last 4 digits" lookup as well
// as masked or partial inputs.
func (t *Transaction) MatchesCardFragment(fragment string) bool {
	if fragment == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.CardNo), strings.ToLower(fragment))
}

// MaskCardNumber replaces all but the last four digits of a card number with
// the fixed mask pattern grouped in four-character blocks. Masking an
// already-masked value yields the same form. Inputs with fewer than four
// digits are returned unchanged, since only a fragment is known.
func MaskCardNumber(cardNo string) string {
	digits := extractDigits(cardNo)
	if len(digits) < 4 {
		return cardNo
	}
	return "****-****-****-" + digits[len(digits)-4:]
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

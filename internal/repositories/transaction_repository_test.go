package repositories

import (
	"testing"

	"cardlytics/internal/database"
	"cardlytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) seed() {
	database.CreateTestTransaction(s.T(), s.db, "4123456789011220", "15/06/2025", "BIG BAZAAR MUMBAI", 2500.00, 5411)
	database.CreateTestTransaction(s.T(), s.db, "4123456789011220", "18/06/2025", "SWIGGY BANGALORE", 450.50, 5812)
	database.CreateTestTransaction(s.T(), s.db, "4987654321015566", "02/07/2025", "RELIANCE DIGITAL DELHI", 15999.00, 5732)
	database.CreateTestTransaction(s.T(), s.db, "4987654321015566", "20/07/2024", "INDIAN OIL CHENNAI", 1800.00, 5541)
}

func (s *TransactionRepositorySuite) TestSearch_NoFilters() {
	s.seed()

	txns, err := s.repo.Search(models.TransactionFilters{})
	s.NoError(err)
	s.Len(txns, 4)
}

func (s *TransactionRepositorySuite) TestSearch_CardFragment() {
	s.seed()

	txns, err := s.repo.Search(models.TransactionFilters{CardFragment: "1220"})
	s.NoError(err)
	s.Len(txns, 2)
	for _, txn := range txns {
		s.Equal("4123456789011220", txn.CardNo)
	}
}

func (s *TransactionRepositorySuite) TestSearch_QueryAcrossColumns() {
	s.seed()

	txns, err := s.repo.Search(models.TransactionFilters{Query: "reliance"})
	s.NoError(err)
	s.Len(txns, 1)
	s.Equal("RELIANCE DIGITAL DELHI", txns[0].Particulars)

	txns, err = s.repo.Search(models.TransactionFilters{Query: "5566"})
	s.NoError(err)
	s.Len(txns, 2)
}

func (s *TransactionRepositorySuite) TestSearch_MCC() {
	s.seed()

	mcc := 5411
	txns, err := s.repo.Search(models.TransactionFilters{MCC: &mcc})
	s.NoError(err)
	s.Len(txns, 1)
	s.Equal("BIG BAZAAR MUMBAI", txns[0].Particulars)
}

func (s *TransactionRepositorySuite) TestSearch_MerchantCaseInsensitive() {
	s.seed()

	txns, err := s.repo.Search(models.TransactionFilters{Merchant: "swiggy"})
	s.NoError(err)
	s.Len(txns, 1)
	s.Equal("SWIGGY BANGALORE", txns[0].Particulars)
}

func (s *TransactionRepositorySuite) TestSearch_AmountBounds() {
	s.seed()

	minAmount := decimal.NewFromInt(1000)
	maxAmount := decimal.NewFromInt(3000)
	txns, err := s.repo.Search(models.TransactionFilters{
		MinAmount: &minAmount,
		MaxAmount: &maxAmount,
	})
	s.NoError(err)
	s.Len(txns, 2)
}

func (s *TransactionRepositorySuite) TestSearch_MonthAndYearPrefilter() {
	s.seed()

	month, year := 6, 2025
	txns, err := s.repo.Search(models.TransactionFilters{Month: &month, Year: &year})
	s.NoError(err)
	s.Len(txns, 2)
	for _, txn := range txns {
		s.Contains(txn.TxnDate, "/06/2025")
	}
}

func (s *TransactionRepositorySuite) TestSearch_YearOnlyPrefilter() {
	s.seed()

	year := 2024
	txns, err := s.repo.Search(models.TransactionFilters{Year: &year})
	s.NoError(err)
	s.Len(txns, 1)
	s.Equal("INDIAN OIL CHENNAI", txns[0].Particulars)
}

func (s *TransactionRepositorySuite) TestSearch_LimitNotAppliedInSQL() {
	s.seed()

	// The limit belongs to the caller, which sorts newest first before
	// trimming; a SQL LIMIT here would hand back an insertion-order prefix.
	txns, err := s.repo.Search(models.TransactionFilters{Limit: 1})
	s.NoError(err)
	s.Len(txns, 4)

	year := 2025
	txns, err = s.repo.Search(models.TransactionFilters{Year: &year, Limit: 1})
	s.NoError(err)
	s.Len(txns, 3)
}

func (s *TransactionRepositorySuite) TestGetByRefNo() {
	txn := database.CreateTestTransaction(s.T(), s.db, "4123456789011220", "15/06/2025", "BIG BAZAAR MUMBAI", 2500.00, 5411)

	found, err := s.repo.GetByRefNo(txn.RefNo)
	s.NoError(err)
	s.Equal(txn.ID, found.ID)
	s.Equal("BIG BAZAAR MUMBAI", found.Particulars)
}

func (s *TransactionRepositorySuite) TestGetByRefNo_NotFound() {
	_, err := s.repo.GetByRefNo("REF999999999999")
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestCount() {
	s.seed()

	total, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(4), total)
}

func (s *TransactionRepositorySuite) TestDistinctMCCCodes() {
	s.seed()
	// An MCC-less row must not show up in the distinct list
	database.CreateTestTransaction(s.T(), s.db, "4123456789011220", "19/06/2025", "UNKNOWN MERCHANT", 100.00, 0)

	codes, err := s.repo.DistinctMCCCodes()
	s.NoError(err)
	s.Equal([]int{5411, 5541, 5732, 5812}, codes)
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	batch := []models.Transaction{
		{
			CardNo:         "4123456789011220",
			TxnDate:        "01/08/2025",
			RefNo:          "REF000000000101",
			Particulars:    "AMAZON PAY INDIA",
			SourceCurrency: "INR",
			SourceAmt:      decimal.NewFromFloat(999.00),
			Amount:         "999.00",
			MCC:            5999,
		},
		{
			CardNo:         "4987654321015566",
			TxnDate:        "02/08/2025",
			RefNo:          "REF000000000102",
			Particulars:    "ZOMATO GURGAON",
			SourceCurrency: "INR",
			SourceAmt:      decimal.NewFromFloat(320.00),
			Amount:         "320.00",
			MCC:            5812,
		},
	}

	err := s.repo.CreateBatch(batch)
	s.NoError(err)

	total, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(2), total)
}

func (s *TransactionRepositorySuite) TestCreateBatch_Empty() {
	err := s.repo.CreateBatch(nil)
	s.NoError(err)
}

package services

import (
	"cardlytics/internal/models"
	"cardlytics/internal/repositories"
)

type creditCardService struct {
	creditCardRepo repositories.CreditCardRepositoryInterface
}

// NewCreditCardService creates a new CreditCardServiceInterface instance.
func NewCreditCardService(creditCardRepo repositories.CreditCardRepositoryInterface) CreditCardServiceInterface {
	return &creditCardService{
		creditCardRepo: creditCardRepo,
	}
}

func (s *creditCardService) List(offset, limit int) ([]models.CreditCard, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.creditCardRepo.List(offset, limit)
}

func (s *creditCardService) Search(query string) ([]models.CreditCard, error) {
	return s.creditCardRepo.Search(query)
}

func (s *creditCardService) GetByType(cardType string) ([]models.CreditCard, error) {
	return s.creditCardRepo.GetByType(cardType)
}

package mapping

import (
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/models"
)

// ToModelBalanceTransaction converts a domain BalanceTransaction to a model BalanceTransaction
func ToModelBalanceTransaction(d domain.BalanceTransaction) models.BalanceTransaction {
	return models.BalanceTransaction{
		TransactionID: d.TransactionID,
		Type:          string(d.Type),
		CurrencyID:    d.CurrencyID,
		Amount:        d.Amount,
		Description:   d.Description,
		UserID:        d.UserID,
		BranchID:      d.BranchID,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainBalanceTransaction converts a model BalanceTransaction to a domain BalanceTransaction
func ToDomainBalanceTransaction(m models.BalanceTransaction) domain.BalanceTransaction {
	return domain.BalanceTransaction{
		TransactionID: m.TransactionID,
		Type:          domain.BalanceTransactionType(m.Type),
		CurrencyID:    m.CurrencyID,
		Amount:        m.Amount,
		Description:   m.Description,
		UserID:        m.UserID,
		BranchID:      m.BranchID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainDailyBalance converts a model DailyBalance to a domain DailyBalance
func ToDomainDailyBalance(m models.DailyBalance) domain.DailyBalance {
	return domain.DailyBalance{
		Date:       m.Date,
		CurrencyID: m.CurrencyID,
		BranchID:   m.BranchID,
		Balance:    m.Balance,
	}
}

package mapping

import (
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:   d.CurrencyID,
		Code:         d.Code,
		Name:         d.Name,
		DisplayOrder: d.DisplayOrder,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID:   m.CurrencyID,
		Code:         m.Code,
		Name:         m.Name,
		DisplayOrder: m.DisplayOrder,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

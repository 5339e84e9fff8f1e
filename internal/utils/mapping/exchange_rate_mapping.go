package mapping

import (
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:  d.ExchangeRateID,
		BaseCurrencyID:  d.BaseCurrencyID,
		QuoteCurrencyID: d.QuoteCurrencyID,
		Rate:            d.Rate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:  m.ExchangeRateID,
		BaseCurrencyID:  m.BaseCurrencyID,
		QuoteCurrencyID: m.QuoteCurrencyID,
		Rate:            m.Rate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

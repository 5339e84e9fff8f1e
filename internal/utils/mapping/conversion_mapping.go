package mapping

import (
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/models"
)

// ToModelConversion converts a domain Conversion to a model Conversion
func ToModelConversion(d domain.Conversion) models.Conversion {
	return models.Conversion{
		ConversionID:   d.ConversionID,
		FromCurrencyID: d.FromCurrencyID,
		ToCurrencyID:   d.ToCurrencyID,
		FromAmount:     d.FromAmount,
		ToAmount:       d.ToAmount,
		RateUsed:       d.RateUsed,
		UserID:         d.UserID,
		BranchID:       d.BranchID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConversion converts a model Conversion to a domain Conversion
func ToDomainConversion(m models.Conversion) domain.Conversion {
	return domain.Conversion{
		ConversionID:   m.ConversionID,
		FromCurrencyID: m.FromCurrencyID,
		ToCurrencyID:   m.ToCurrencyID,
		FromAmount:     m.FromAmount,
		ToAmount:       m.ToAmount,
		RateUsed:       m.RateUsed,
		UserID:         m.UserID,
		BranchID:       m.BranchID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

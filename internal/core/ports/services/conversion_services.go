package services

import (
	"context"

	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/dto"
)

// ConversionPreviewerSvc computes exchange-form state without persisting.
type ConversionPreviewerSvc interface {
	// PreviewConversion resolves the rate for the pair and fills in whichever
	// amount side the request left open.
	PreviewConversion(ctx context.Context, req dto.ConversionPreviewRequest) (*dto.ConversionPreviewResponse, error)
}

// ConversionWriterSvc defines write operations for conversions
type ConversionWriterSvc interface {
	// RecordConversion validates, resolves the rate, computes the destination
	// amount and persists the conversion with its paired ledger entries.
	RecordConversion(ctx context.Context, actor domain.Actor, req dto.RecordConversionRequest) (*domain.Conversion, error)
}

// ConversionReaderSvc defines read operations for recorded conversions
type ConversionReaderSvc interface {
	// ListConversions retrieves conversion history visible to the actor.
	ListConversions(ctx context.Context, actor domain.Actor, branchID *string, page, pageSize int) ([]domain.Conversion, int, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionPreviewerSvc
	ConversionWriterSvc
	ConversionReaderSvc
}

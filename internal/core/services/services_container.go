package services

import (
	portsrepo "github.com/samandar-s/exchange_office_app/internal/core/ports/repositories"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/platform/config"
)

// NewServiceContainer wires up the application services with their
// repository dependencies and the shared authorization policy.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	authorizer := NewAuthorizerService()

	currencySvc := NewCurrencyService(repos.CurrencyRepo, authorizer)
	exchangeRateSvc := NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo, authorizer)
	conversionSvc := NewConversionService(repos.ConversionRepo, repos.CurrencyRepo, exchangeRateSvc, authorizer)
	balanceSvc := NewBalanceService(repos.BalanceRepo, repos.CurrencyRepo, authorizer)
	reportingSvc := NewReportingService(repos.BalanceRepo, repos.CurrencyRepo, authorizer)
	branchSvc := NewBranchService(repos.BranchRepo, authorizer)
	userSvc := NewUserService(repos.UserRepo, repos.BranchRepo, authorizer)
	tokenSvc := NewTokenService(cfg, userSvc)
	googleOAuthSvc := NewGoogleOAuthHandlerService(cfg)

	return &portssvc.ServiceContainer{
		Currency:           currencySvc,
		ExchangeRate:       exchangeRateSvc,
		Conversion:         conversionSvc,
		Balance:            balanceSvc,
		Reporting:          reportingSvc,
		User:               userSvc,
		Branch:             branchSvc,
		Authorizer:         authorizer,
		TokenService:       tokenSvc,
		GoogleOAuthHandler: googleOAuthSvc,
	}
}

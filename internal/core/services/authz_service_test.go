package services_test

import (
	"context"
	"testing"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	"github.com/samandar-s/exchange_office_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	authorizer := services.NewAuthorizerService()
	ctx := context.Background()

	admin := adminActor()
	manager := managerActor("branch-1")

	tests := []struct {
		name     string
		actor    domain.Actor
		action   domain.Action
		resource domain.Resource
		allowed  bool
	}{
		{"admin manages currencies", admin, domain.ActionManageCurrencies, domain.Resource{}, true},
		{"admin manages rates", admin, domain.ActionManageRates, domain.Resource{}, true},
		{"admin manages users", admin, domain.ActionManageUsers, domain.Resource{}, true},
		{"admin manages branches", admin, domain.ActionManageBranches, domain.Resource{}, true},
		{"admin records at any branch", admin, domain.ActionRecordConversion, domain.Resource{BranchID: "branch-9"}, true},
		{"admin views combined reports", admin, domain.ActionViewReports, domain.Resource{BranchID: domain.CombinedBranchID}, true},

		{"manager records at assigned branch", manager, domain.ActionRecordConversion, domain.Resource{BranchID: "branch-1"}, true},
		{"manager records balance at assigned branch", manager, domain.ActionRecordBalance, domain.Resource{BranchID: "branch-1"}, true},
		{"manager views ledger at assigned branch", manager, domain.ActionViewLedger, domain.Resource{BranchID: "branch-1"}, true},
		{"manager views reports at assigned branch", manager, domain.ActionViewReports, domain.Resource{BranchID: "branch-1"}, true},

		{"manager denied at other branch", manager, domain.ActionRecordConversion, domain.Resource{BranchID: "branch-2"}, false},
		{"manager denied combined view", manager, domain.ActionViewReports, domain.Resource{BranchID: domain.CombinedBranchID}, false},
		{"manager denied currency management", manager, domain.ActionManageCurrencies, domain.Resource{}, false},
		{"manager denied rate management", manager, domain.ActionManageRates, domain.Resource{}, false},
		{"manager denied user management", manager, domain.ActionManageUsers, domain.Resource{}, false},
		{"manager denied branch management", manager, domain.ActionManageBranches, domain.Resource{}, false},

		{"unknown role denied everything", domain.Actor{UserID: "u", Role: "AUDITOR"}, domain.ActionViewLedger, domain.Resource{BranchID: "branch-1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizer.CanPerform(ctx, tt.actor, tt.action, tt.resource)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			}
		})
	}
}

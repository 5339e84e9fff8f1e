package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/samandar-s/exchange_office_app/internal/apperrors"
	"github.com/samandar-s/exchange_office_app/internal/core/domain"
	portssvc "github.com/samandar-s/exchange_office_app/internal/core/ports/services"
	"github.com/samandar-s/exchange_office_app/internal/core/services"
	"github.com/samandar-s/exchange_office_app/internal/dto"
	"github.com/samandar-s/exchange_office_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedBy, deletedAt)
	return args.Error(0)
}

func (m *MockUserRepository) SetUserBranches(ctx context.Context, userID string, branchIDs []string) error {
	args := m.Called(ctx, userID, branchIDs)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Mock BranchRepository ---

type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockBranchRepository) DeleteBranch(ctx context.Context, branchID string) error {
	args := m.Called(ctx, branchID)
	return args.Error(0)
}

func (m *MockBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

// --- Test Suite ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockBranchRepo *MockBranchRepository
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockBranchRepo = new(MockBranchRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockBranchRepo, services.NewAuthorizerService())
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:      "Jamshid Karimov",
		Email:     "jamshid@example.com",
		Password:  "s3cret-pass",
		Role:      "MANAGER",
		BranchIDs: []string{"branch-1"},
	}

	suite.mockBranchRepo.On("FindBranchByID", ctx, "branch-1").Return(&domain.Branch{BranchID: "branch-1"}, nil).Once()

	var savedUser domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			savedUser = args.Get(1).(domain.User)
		}).Return(nil).Once()
	suite.mockUserRepo.On("SetUserBranches", ctx, mock.AnythingOfType("string"), []string{"branch-1"}).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, adminActor(), req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.RoleManager, user.Role)
	suite.NotEqual(req.Password, savedUser.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, savedUser.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownBranch() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Name:      "Jamshid Karimov",
		Email:     "jamshid@example.com",
		Password:  "s3cret-pass",
		Role:      "MANAGER",
		BranchIDs: []string{"nope"},
	}

	suite.mockBranchRepo.On("FindBranchByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateUser(ctx, adminActor(), req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_ManagerForbidden() {
	req := dto.CreateUserRequest{Name: "X", Email: "x@example.com", Password: "password1", Role: "MANAGER"}

	_, err := suite.service.CreateUser(context.Background(), managerActor("branch-1"), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteRejected() {
	actor := adminActor()

	err := suite.service.DeleteUser(context.Background(), actor, actor.UserID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted")
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	actor := adminActor()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, "other-user", actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, actor, "other-user")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateUserByGoogleInfo_ExistingUser() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "known@example.com", Role: domain.RoleManager}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "known@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateUserByGoogleInfo(ctx, domain.GoogleUserInfo{
		Email:         "known@example.com",
		VerifiedEmail: true,
	})

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateUserByGoogleInfo_ProvisionsManager() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()

	var savedUser domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			savedUser = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.FindOrCreateUserByGoogleInfo(ctx, domain.GoogleUserInfo{
		Email:         "new@example.com",
		Name:          "New Person",
		VerifiedEmail: true,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, user.Role)
	suite.Empty(user.BranchIDs)
	suite.NotEmpty(savedUser.PasswordHash)
}

func (suite *UserServiceTestSuite) TestFindOrCreateUserByGoogleInfo_UnverifiedEmail() {
	_, err := suite.service.FindOrCreateUserByGoogleInfo(context.Background(), domain.GoogleUserInfo{
		Email:         "shady@example.com",
		VerifiedEmail: false,
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail")
}

func (suite *UserServiceTestSuite) TestAssignBranches_Success() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Role: domain.RoleManager}
	updated := &domain.User{UserID: "u1", Role: domain.RoleManager, BranchIDs: []string{"branch-2"}}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(existing, nil).Once()
	suite.mockBranchRepo.On("FindBranchByID", ctx, "branch-2").Return(&domain.Branch{BranchID: "branch-2"}, nil).Once()
	suite.mockUserRepo.On("SetUserBranches", ctx, "u1", []string{"branch-2"}).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(updated, nil).Once()

	user, err := suite.service.AssignBranches(ctx, adminActor(), "u1", []string{"branch-2"})

	suite.Require().NoError(err)
	suite.Equal([]string{"branch-2"}, user.BranchIDs)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

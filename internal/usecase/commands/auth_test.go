//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"commission-tracker/internal/domain/user"
	reqdto "commission-tracker/internal/handler/dto/request"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/jwt"
	"commission-tracker/internal/pkg/password"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/tests/common/builder"
	"commission-tracker/tests/common/fake"
	queriesmock "commission-tracker/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	uow       *fake.UnitOfWork
	readStore *queriesmock.MockUserReadStore
	jwt       *jwt.Service
	cmds      commands.AuthCommands
	hash      string
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword("password123")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.uow = fake.NewUnitOfWork()
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	clk := clock.NewMockClock(time.Now())
	s.jwt = jwt.NewService("test-secret-key-that-is-long-enough", 15*time.Minute, 24*time.Hour, clk)
	s.cmds = commands.NewAuthCommands(s.uow, s.readStore, s.jwt, clk)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthCommandsTestSuite) vendorView(active bool) *queries.AuthorizedUserView {
	vendorID := uuid.New()
	return &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Email:        "shop@example.com",
		Role:         user.RoleVendor.String(),
		IsActive:     true,
		VendorID:     &vendorID,
		VendorActive: &active,
	}
}

func (s *AuthCommandsTestSuite) TestLogin_Success() {
	view := s.vendorView(true)
	s.readStore.EXPECT().FindByEmail(gomock.Any(), "shop@example.com").Return(view, s.hash, nil)

	res, err := s.cmds.Login(s.ctx, reqdto.LoginRequest{Email: "shop@example.com", Password: "password123"})
	s.Require().NoError(err)

	vendorID, ok := res.Principal.VendorID()
	s.True(ok)
	s.Equal(*view.VendorID, vendorID)
	s.Equal(user.RoleVendor, res.Principal.Role())

	claims, err := s.jwt.ValidateToken(res.TokenPair.AccessToken)
	s.Require().NoError(err)
	s.Equal(view.ID, claims.UserID)
	s.Equal(jwt.TokenTypeAccess, claims.TokenType)
	s.Equal(1, s.uow.Calls("Users.UpdateLastLogin"))
}

func (s *AuthCommandsTestSuite) TestLogin_Rejections() {
	tests := []struct {
		name     string
		setup    func()
		password string
		want     error
	}{
		{
			name: "unknown email",
			setup: func() {
				s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
					Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
			},
			password: "password123",
			want:     commands.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func() {
				s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(s.vendorView(true), s.hash, nil)
			},
			password: "password124",
			want:     commands.ErrInvalidCredentials,
		},
		{
			name: "deactivated vendor",
			setup: func() {
				s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(s.vendorView(false), s.hash, nil)
			},
			password: "password123",
			want:     commands.ErrUserInactive,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setup()
			_, err := s.cmds.Login(s.ctx, reqdto.LoginRequest{Email: "shop@example.com", Password: tt.password})
			s.ErrorIs(err, tt.want)
		})
	}
	s.Equal(0, s.uow.Calls("Users.UpdateLastLogin"))
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	view := s.vendorView(true)
	refresh, err := s.jwt.GenerateRefreshToken(view.ID, user.RoleVendor)
	s.Require().NoError(err)
	access, err := s.jwt.GenerateAccessToken(view.ID, user.RoleVendor)
	s.Require().NoError(err)

	s.Run("refresh token issues a new pair", func() {
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		pair, err := s.cmds.RefreshToken(s.ctx, refresh)
		s.Require().NoError(err)
		s.NotEmpty(pair.AccessToken)
		s.NotEmpty(pair.RefreshToken)
	})

	s.Run("access token is not accepted", func() {
		_, err := s.cmds.RefreshToken(s.ctx, access)
		s.ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("garbage token", func() {
		_, err := s.cmds.RefreshToken(s.ctx, "not-a-jwt")
		s.ErrorIs(err, commands.ErrTokenValidation)
	})

	s.Run("deactivated vendor", func() {
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(s.vendorView(false), nil)
		_, err := s.cmds.RefreshToken(s.ctx, refresh)
		s.ErrorIs(err, commands.ErrUserInactive)
	})
}

func (s *AuthCommandsTestSuite) TestRegisterVendor() {
	req := builder.NewAuthBuilder().WithCommissionPercent("12.5").BuildRegisterDTO()

	res, err := s.cmds.RegisterVendor(s.ctx, req)
	s.Require().NoError(err)

	v, ok := s.uow.Vendor(res.VendorID)
	s.Require().True(ok)
	s.Require().NotNil(v.UserID())
	s.Equal(res.UserID, *v.UserID())
	s.Equal("12.5", v.CommissionRate().Percent().String())

	users := s.uow.Users()
	s.Require().Len(users, 1)
	s.Equal(user.RoleVendor, users[0].Role)
	s.NoError(password.ComparePassword(users[0].Hash, req.Password))

	_, err = s.cmds.RegisterVendor(s.ctx, req)
	s.ErrorIs(err, commands.ErrEmailTaken)
	s.Len(s.uow.Users(), 1)
}

func (s *AuthCommandsTestSuite) TestRegisterVendor_DefaultCommission() {
	res, err := s.cmds.RegisterVendor(s.ctx, builder.NewAuthBuilder().BuildRegisterDTO())
	s.Require().NoError(err)

	v, _ := s.uow.Vendor(res.VendorID)
	s.Equal("15", v.CommissionRate().Percent().String())
}

func (s *AuthCommandsTestSuite) TestRegisterVendor_InvalidInput() {
	req := builder.NewAuthBuilder().WithCommissionPercent("101").BuildRegisterDTO()

	_, err := s.cmds.RegisterVendor(s.ctx, req)
	s.ErrorIs(err, errs.ErrDomainValidation)
	s.Empty(s.uow.Users(), "user insert rolls back with the vendor")
}

func (s *AuthCommandsTestSuite) TestEnsureTechnician() {
	s.readStore.EXPECT().FindByEmail(gomock.Any(), "tech@example.com").
		Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

	s.Require().NoError(s.cmds.EnsureTechnician(s.ctx, "tech@example.com", "password123"))
	users := s.uow.Users()
	s.Require().Len(users, 1)
	s.Equal(user.RoleTechnician, users[0].Role)

	s.readStore.EXPECT().FindByEmail(gomock.Any(), "tech@example.com").
		Return(&queries.AuthorizedUserView{ID: users[0].ID, Role: "technician", IsActive: true}, users[0].Hash, nil)

	s.Require().NoError(s.cmds.EnsureTechnician(s.ctx, "tech@example.com", "password123"))
	s.Equal(1, s.uow.Calls("Users.Create"))
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/auth"
	"github.com/DroneHQio/dronehq-app/internal/config"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/mocks"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type userMocks struct {
	signupRepo     *mocks.MockSignupRepositoryIface
	repo           *mocks.MockUserRepositoryIface
	membershipRepo *mocks.MockMembershipRepositoryIface
	orgRepo        *mocks.MockOrganizationRepositoryIface
	classRepo      *mocks.MockClassRepositoryIface
}

func newUserService(t *testing.T, ctrl *gomock.Controller) (*service.UserService, userMocks) {
	t.Helper()

	m := userMocks{
		signupRepo:     mocks.NewMockSignupRepositoryIface(ctrl),
		repo:           mocks.NewMockUserRepositoryIface(ctrl),
		membershipRepo: mocks.NewMockMembershipRepositoryIface(ctrl),
		orgRepo:        mocks.NewMockOrganizationRepositoryIface(ctrl),
		classRepo:      mocks.NewMockClassRepositoryIface(ctrl),
	}

	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(cacheService.Close)
	tenant := service.NewTenantService(m.orgRepo, m.classRepo, m.repo, cacheService)

	svc := service.NewUserService(
		m.signupRepo,
		m.repo,
		m.membershipRepo,
		tenant,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		nil,
		&config.Config{BaseURL: "http://localhost:8080"},
	)
	return svc, m
}

func TestSignupSolo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.SoloSignupInput{
		Email:           "ava@example.com",
		FirstName:       "Ava",
		LastName:        "Reyes",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
		Plan:            "basic",
	}

	t.Run("creates account, personal org and approved membership in one call", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		m.repo.EXPECT().PilotIDExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.orgRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		m.signupRepo.EXPECT().
			CreateAccountWithOrganization(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User, profile *model.Profile, org *model.Organization, membership *model.Membership) error {
				assert.Equal(t, model.StatusPending, user.Status)
				assert.NotNil(t, user.VerificationCode)
				assert.Regexp(t, `^P[0-9A-Z]{8}$`, profile.PilotID)
				assert.Equal(t, "Ava Reyes", org.Name)
				assert.Equal(t, model.PlanSoloBasic, org.SubscriptionPlan)
				assert.Equal(t, model.RoleSoloPilot, membership.Role)
				assert.True(t, membership.Approved)
				return nil
			})

		out, err := svc.SignupSolo(context.Background(), input)

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("password confirmation must match", func(t *testing.T) {
		svc, _ := newUserService(t, ctrl)

		bad := input
		bad.ConfirmPassword = "different12345"
		_, err := svc.SignupSolo(context.Background(), bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown plan is rejected", func(t *testing.T) {
		svc, _ := newUserService(t, ctrl)

		bad := input
		bad.Plan = "platinum"
		_, err := svc.SignupSolo(context.Background(), bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSignupWithCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	org := &model.Organization{ID: orgID, Name: "Lincoln High", Code: "LINCOL123"}

	base := service.JoinSignupInput{
		Email:           "sam@example.com",
		FirstName:       "Sam",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
	}

	t.Run("teacher joins with an organization code, unapproved", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		input := base
		input.Code = "LINCOL123"
		input.Role = "teacher"

		m.classRepo.EXPECT().FindByCode(gomock.Any(), "LINCOL123").Return(nil, domain.ErrClassNotFound)
		m.orgRepo.EXPECT().FindByCode(gomock.Any(), "LINCOL123").Return(org, nil)
		m.signupRepo.EXPECT().
			CreateAccountWithMembership(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *model.User, _ *model.Profile, membership *model.Membership) error {
				assert.Equal(t, model.RoleTeacher, membership.Role)
				assert.Equal(t, orgID, *membership.OrganizationID)
				assert.False(t, membership.Approved)
				assert.Nil(t, membership.ClassID)
				return nil
			})

		out, err := svc.SignupWithCode(context.Background(), input)

		assert.NoError(t, err)
		assert.False(t, out.Membership.Approved)
	})

	t.Run("student joins with a class code bound to the class", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		class := &model.Class{ID: uuid.New(), OrganizationID: orgID, Code: "DRONEB456", Active: true}
		input := base
		input.Code = "DRONEB456"
		input.Role = "student"

		m.classRepo.EXPECT().FindByCode(gomock.Any(), "DRONEB456").Return(class, nil)
		m.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)
		m.signupRepo.EXPECT().
			CreateAccountWithMembership(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *model.User, _ *model.Profile, membership *model.Membership) error {
				assert.Equal(t, model.RoleStudent, membership.Role)
				assert.Equal(t, class.ID, *membership.ClassID)
				assert.False(t, membership.Approved)
				return nil
			})

		_, err := svc.SignupWithCode(context.Background(), input)

		assert.NoError(t, err)
	})

	t.Run("teachers cannot use class codes", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		class := &model.Class{ID: uuid.New(), OrganizationID: orgID, Code: "DRONEB456", Active: true}
		input := base
		input.Code = "DRONEB456"
		input.Role = "teacher"

		m.classRepo.EXPECT().FindByCode(gomock.Any(), "DRONEB456").Return(class, nil)
		m.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(org, nil)

		_, err := svc.SignupWithCode(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("inactive class code rejects the signup", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		class := &model.Class{ID: uuid.New(), OrganizationID: orgID, Code: "DRONEB456", Active: false}
		input := base
		input.Code = "DRONEB456"
		input.Role = "student"

		m.classRepo.EXPECT().FindByCode(gomock.Any(), "DRONEB456").Return(class, nil)

		_, err := svc.SignupWithCode(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrCodeInactive)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		input := base
		input.Code = "NOPE99999"
		input.Role = "student"

		m.classRepo.EXPECT().FindByCode(gomock.Any(), "NOPE99999").Return(nil, domain.ErrClassNotFound)
		m.orgRepo.EXPECT().FindByCode(gomock.Any(), "NOPE99999").Return(nil, domain.ErrOrganizationNotFound)

		_, err := svc.SignupWithCode(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrCodeNotFound)
	})
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, _ := hasher.Hash("hunter2hunter2")

	user := &model.User{
		ID:         uuid.New(),
		Email:      "ava@example.com",
		Credential: hashed,
		Status:     model.StatusActive,
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		m.repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		out, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "hunter2hunter2",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		m.repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "wrong password",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		m.repo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever123",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("suspended accounts cannot log in", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		suspended := *user
		suspended.Status = model.StatusSuspended
		m.repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(&suspended, nil)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{
			Email:    user.Email,
			Password: "hunter2hunter2",
		})

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestVerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	code := "abc123"

	t.Run("marks the account active and clears the code", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		user := &model.User{ID: uuid.New(), Status: model.StatusPending, VerificationCode: &code}
		gomock.InOrder(
			m.repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil),
			m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u *model.User) error {
					assert.Equal(t, model.StatusActive, u.Status)
					assert.Nil(t, u.VerificationCode)
					assert.NotNil(t, u.VerifiedAt)
					return nil
				}),
		)

		err := svc.VerifyEmail(context.Background(), service.VerifyInput{UserID: user.ID.String(), Code: code})

		assert.NoError(t, err)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		user := &model.User{ID: uuid.New(), Status: model.StatusPending, VerificationCode: &code}
		m.repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		err := svc.VerifyEmail(context.Background(), service.VerifyInput{UserID: user.ID.String(), Code: "zzz"})

		assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, m := newUserService(t, ctrl)

		user := &model.User{ID: uuid.New(), Status: model.StatusActive}
		m.repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		err := svc.VerifyEmail(context.Background(), service.VerifyInput{UserID: user.ID.String(), Code: code})

		assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
	})
}

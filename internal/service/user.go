// internal/service/user.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/auth"
	"github.com/DroneHQio/dronehq-app/internal/config"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/email"
	"github.com/DroneHQio/dronehq-app/internal/email/mailer"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UserService struct {
	signupRepo     repository.SignupRepositoryIface
	repo           repository.UserRepositoryIface
	membershipRepo repository.MembershipRepositoryIface
	tenantService  *TenantService
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   *email.Service
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	signupRepo repository.SignupRepositoryIface,
	repo repository.UserRepositoryIface,
	membershipRepo repository.MembershipRepositoryIface,
	tenantService *TenantService,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService *email.Service,
	config *config.Config,
) *UserService {
	return &UserService{
		signupRepo:     signupRepo,
		repo:           repo,
		membershipRepo: membershipRepo,
		tenantService:  tenantService,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		config:         config,
		validate:       validator.New(),
	}
}

type ProfileInput struct {
	Phone            string `json:"phone"`
	JobTitle         string `json:"job_title"`
	Part107Number    string `json:"part_107_number"`
	StudentID        string `json:"student_id"`
	GradeLevel       string `json:"grade_level"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
}

type SoloSignupInput struct {
	Email           string       `json:"email" validate:"required,email"`
	FirstName       string       `json:"first_name" validate:"required"`
	LastName        string       `json:"last_name"`
	Password        string       `json:"password" validate:"required,min=8"`
	ConfirmPassword string       `json:"confirm_password" validate:"required,min=8,eqfield=Password"`
	Plan            string       `json:"plan" validate:"required,oneof=basic unlimited"`
	Profile         ProfileInput `json:"profile"`
}

type OrgSignupInput struct {
	Email            string       `json:"email" validate:"required,email"`
	FirstName        string       `json:"first_name" validate:"required"`
	LastName         string       `json:"last_name"`
	Password         string       `json:"password" validate:"required,min=8"`
	ConfirmPassword  string       `json:"confirm_password" validate:"required,min=8,eqfield=Password"`
	OrganizationName string       `json:"organization_name" validate:"required"`
	Profile          ProfileInput `json:"profile"`
}

type JoinSignupInput struct {
	Email           string       `json:"email" validate:"required,email"`
	FirstName       string       `json:"first_name" validate:"required"`
	LastName        string       `json:"last_name"`
	Password        string       `json:"password" validate:"required,min=8"`
	ConfirmPassword string       `json:"confirm_password" validate:"required,min=8,eqfield=Password"`
	Code            string       `json:"code" validate:"required"`
	Role            string       `json:"role" validate:"required,oneof=teacher student"`
	Profile         ProfileInput `json:"profile"`
}

type SignupOutput struct {
	User       *model.User       `json:"user"`
	Membership *model.Membership `json:"membership,omitempty"`
	Token      string            `json:"token"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) buildUser(email, firstName, lastName, password string) (*model.User, error) {
	hashed, err := s.passwordHasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	code := generateVerificationCode()
	return &model.User{
		Email:            email,
		FirstName:        firstName,
		LastName:         lastName,
		Credential:       hashed,
		Status:           model.StatusPending,
		VerificationCode: &code,
	}, nil
}

func buildProfile(in ProfileInput) *model.Profile {
	return &model.Profile{
		Phone:            in.Phone,
		JobTitle:         in.JobTitle,
		Part107Number:    in.Part107Number,
		StudentID:        in.StudentID,
		GradeLevel:       in.GradeLevel,
		EmergencyContact: in.EmergencyContact,
		EmergencyPhone:   in.EmergencyPhone,
	}
}

// SignupSolo registers an independent pilot. The account gets a pilot
// ID, a personal organization carrying the chosen plan and an approved
// solo_pilot membership, all in one transaction.
func (s *UserService) SignupSolo(ctx context.Context, input SoloSignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordsDoNotMatch
	}

	user, err := s.buildUser(input.Email, input.FirstName, input.LastName, input.Password)
	if err != nil {
		return nil, err
	}

	profile := buildProfile(input.Profile)
	pilotID, err := s.tenantService.GeneratePilotID(ctx)
	if err != nil {
		return nil, err
	}
	profile.PilotID = pilotID

	orgName := fmt.Sprintf("%s %s", input.FirstName, input.LastName)
	code, err := s.tenantService.GenerateJoinCode(ctx, orgName)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:             orgName,
		Code:             code,
		BillingStatus:    model.BillingTrial,
		SubscriptionPlan: model.SubscriptionPlan(input.Plan),
	}

	now := time.Now().UTC()
	membership := &model.Membership{
		Role:       model.RoleSoloPilot,
		Approved:   true,
		ApprovedAt: &now,
	}

	if err := s.signupRepo.CreateAccountWithOrganization(ctx, user, profile, org, membership); err != nil {
		return nil, err
	}

	s.sendVerification(ctx, user)

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Membership: membership, Token: token}, nil
}

// SignupOrganization registers a new tenant and its first admin. The
// admin's membership is approved immediately since there is nobody
// else to approve it.
func (s *UserService) SignupOrganization(ctx context.Context, input OrgSignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordsDoNotMatch
	}

	user, err := s.buildUser(input.Email, input.FirstName, input.LastName, input.Password)
	if err != nil {
		return nil, err
	}

	code, err := s.tenantService.GenerateJoinCode(ctx, input.OrganizationName)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:             input.OrganizationName,
		Code:             code,
		BillingStatus:    model.BillingTrial,
		SubscriptionPlan: model.PlanStarter,
	}

	now := time.Now().UTC()
	membership := &model.Membership{
		Role:       model.RoleOrgAdmin,
		Approved:   true,
		ApprovedAt: &now,
	}

	if err := s.signupRepo.CreateAccountWithOrganization(ctx, user, buildProfile(input.Profile), org, membership); err != nil {
		return nil, err
	}

	s.sendVerification(ctx, user)

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Membership: membership, Token: token}, nil
}

// SignupWithCode registers a teacher or student into an existing
// organization via a join or class code. The membership starts
// unapproved and grants nothing until someone approves it.
func (s *UserService) SignupWithCode(ctx context.Context, input JoinSignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordsDoNotMatch
	}

	resolved, err := s.tenantService.ValidateCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	role := model.Role(input.Role)
	if resolved.Kind == CodeKindClass && role != model.RoleStudent {
		// Class codes enroll students only.
		return nil, fmt.Errorf("%w: class codes are for students", domain.ErrInvalidInput)
	}

	user, err := s.buildUser(input.Email, input.FirstName, input.LastName, input.Password)
	if err != nil {
		return nil, err
	}

	membership := &model.Membership{
		OrganizationID: &resolved.Organization.ID,
		Role:           role,
		Approved:       false,
	}
	if resolved.Kind == CodeKindClass {
		membership.ClassID = &resolved.Class.ID
	}

	if err := s.signupRepo.CreateAccountWithMembership(ctx, user, buildProfile(input.Profile), membership); err != nil {
		return nil, err
	}

	s.sendVerification(ctx, user)
	s.notifyApprovers(ctx, user, membership, resolved)

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{User: user, Membership: membership, Token: token}, nil
}

// Authenticate verifies user credentials and returns a token
func (s *UserService) Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.Credential)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status == model.StatusSuspended {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

type VerifyInput struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

// VerifyEmail handles email verification
func (s *UserService) VerifyEmail(ctx context.Context, input VerifyInput) error {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID", domain.ErrInvalidInput)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Status == model.StatusActive {
		return domain.ErrAlreadyVerified
	}

	if user.VerificationCode == nil || *user.VerificationCode != input.Code {
		return domain.ErrInvalidVerificationCode
	}

	now := time.Now().UTC()
	user.Status = model.StatusActive
	user.VerificationCode = nil
	user.VerifiedAt = &now

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

// ResendVerification resends the verification email
func (s *UserService) ResendVerification(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Status == model.StatusActive {
		return domain.ErrAlreadyVerified
	}

	code := generateVerificationCode()
	user.VerificationCode = &code
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	link := s.verificationLink(user.ID, code)
	if err := mailer.SendVerificationEmail(s.emailService, user.Email, user.FirstName, link); err != nil {
		return fmt.Errorf("sending verification email: %w", err)
	}

	return nil
}

// GetProfile returns the user's profile.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return s.repo.FindProfileByUser(ctx, userID)
}

// UpdateProfile applies profile changes for the user.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.Profile, error) {
	profile, err := s.repo.FindProfileByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Phone = input.Phone
	profile.JobTitle = input.JobTitle
	profile.Part107Number = input.Part107Number
	profile.StudentID = input.StudentID
	profile.GradeLevel = input.GradeLevel
	profile.EmergencyContact = input.EmergencyContact
	profile.EmergencyPhone = input.EmergencyPhone

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserService) verificationLink(userID uuid.UUID, code string) string {
	return fmt.Sprintf(
		"%s/api/auth/signup/verify?code=%s&user=%s",
		s.config.BaseURL,
		code,
		userID.String(),
	)
}

// sendVerification is best effort: the account exists, the user can
// request a resend.
func (s *UserService) sendVerification(ctx context.Context, user *model.User) {
	if s.emailService == nil || user.VerificationCode == nil {
		return
	}
	link := s.verificationLink(user.ID, *user.VerificationCode)
	if err := mailer.SendVerificationEmail(s.emailService, user.Email, user.FirstName, link); err != nil {
		slog.ErrorContext(ctx, "failed to send verification email", "error", err, "user_id", user.ID)
	}
}

// notifyApprovers emails the people who can act on a pending signup:
// the class teacher for a class code, the org admins otherwise.
func (s *UserService) notifyApprovers(ctx context.Context, user *model.User, m *model.Membership, resolved *ResolvedCode) {
	if s.emailService == nil {
		return
	}

	data := mailer.EnrollmentRequestTemplateData{
		ApplicantName:    fmt.Sprintf("%s %s", user.FirstName, user.LastName),
		ApplicantEmail:   user.Email,
		OrganizationName: resolved.Organization.Name,
		Role:             string(m.Role),
		PendingLink:      fmt.Sprintf("%s/members/pending", s.config.BaseURL),
	}

	if resolved.Kind == CodeKindClass {
		teacher, err := s.repo.FindByID(ctx, resolved.Class.TeacherID)
		if err != nil {
			slog.WarnContext(ctx, "failed to load class teacher for notification", "error", err)
			return
		}
		data.AdminName = teacher.FirstName
		if err := mailer.SendEnrollmentRequestEmail(s.emailService, teacher.Email, data); err != nil {
			slog.ErrorContext(ctx, "failed to send enrollment request email", "error", err)
		}
		return
	}

	members, err := s.membershipRepo.FindByOrganization(ctx, resolved.Organization.ID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load org admins for notification", "error", err)
		return
	}
	for _, member := range members {
		if member.Role != model.RoleOrgAdmin || !member.Approved {
			continue
		}
		data.AdminName = member.User.FirstName
		if err := mailer.SendEnrollmentRequestEmail(s.emailService, member.User.Email, data); err != nil {
			slog.ErrorContext(ctx, "failed to send enrollment request email", "error", err)
		}
	}
}

// generateVerificationCode creates a secure random verification code
func generateVerificationCode() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(err) // This should never happen
	}
	return hex.EncodeToString(bytes)
}

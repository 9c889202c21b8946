// internal/service/tenant.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/google/uuid"
)

const (
	joinCodePrefixLen = 6
	joinCodeDigits    = 3
	// maxCodeAttempts bounds collision retries before giving up.
	maxCodeAttempts = 10

	pilotIDLen      = 8
	base36Alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	joinCodePadRune = 'X'
)

// CodeKind tells a caller what a join code resolves to.
type CodeKind string

const (
	CodeKindOrganization CodeKind = "organization"
	CodeKindClass        CodeKind = "class"
)

// ResolvedCode is the result of validating a join code.
type ResolvedCode struct {
	Kind         CodeKind           `json:"kind"`
	Organization *model.Organization `json:"organization,omitempty"`
	Class        *model.Class        `json:"class,omitempty"`
}

// TenantService owns organization lifecycle and the code namespace:
// organization join codes, class codes, pilot IDs.
type TenantService struct {
	orgRepo      repository.OrganizationRepositoryIface
	classRepo    repository.ClassRepositoryIface
	userRepo     repository.UserRepositoryIface
	cacheService *CacheService
}

func NewTenantService(
	orgRepo repository.OrganizationRepositoryIface,
	classRepo repository.ClassRepositoryIface,
	userRepo repository.UserRepositoryIface,
	cacheService *CacheService,
) *TenantService {
	return &TenantService{
		orgRepo:      orgRepo,
		classRepo:    classRepo,
		userRepo:     userRepo,
		cacheService: cacheService,
	}
}

// codePrefix derives the six character prefix from a name: drop
// everything but letters and digits, uppercase, take the first six and
// pad short names so every code has the same shape.
func codePrefix(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
			if b.Len() >= joinCodePrefixLen {
				break
			}
		}
	}
	prefix := b.String()
	for len(prefix) < joinCodePrefixLen {
		prefix += string(joinCodePadRune)
	}
	return prefix
}

// randomDigits returns n decimal digits from a CSPRNG.
func randomDigits(n int) (string, error) {
	var b strings.Builder
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generating random digit: %w", err)
		}
		b.WriteString(d.String())
	}
	return b.String(), nil
}

// GenerateJoinCode builds a unique organization join code from the
// organization name. On collision it redraws the digit suffix rather
// than handing out a duplicate.
func (s *TenantService) GenerateJoinCode(ctx context.Context, orgName string) (string, error) {
	prefix := codePrefix(orgName)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		digits, err := randomDigits(joinCodeDigits)
		if err != nil {
			return "", err
		}
		code := prefix + digits

		exists, err := s.orgRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking join code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("could not find a free join code for %q after %d attempts", orgName, maxCodeAttempts)
}

// GenerateClassCode builds a unique class code from the class name.
// Class codes share the join code shape but live in their own table.
func (s *TenantService) GenerateClassCode(ctx context.Context, className string) (string, error) {
	prefix := codePrefix(className)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		digits, err := randomDigits(joinCodeDigits)
		if err != nil {
			return "", err
		}
		code := prefix + digits

		exists, err := s.classRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking class code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("could not find a free class code for %q after %d attempts", className, maxCodeAttempts)
}

// GeneratePilotID issues a unique pilot identifier: 'P' followed by
// eight base36 characters.
func (s *TenantService) GeneratePilotID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		var b strings.Builder
		b.WriteByte('P')
		for i := 0; i < pilotIDLen; i++ {
			idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
			if err != nil {
				return "", fmt.Errorf("generating pilot id: %w", err)
			}
			b.WriteByte(base36Alphabet[idx.Int64()])
		}
		pilotID := b.String()

		exists, err := s.userRepo.PilotIDExists(ctx, pilotID)
		if err != nil {
			return "", fmt.Errorf("checking pilot id: %w", err)
		}
		if !exists {
			return pilotID, nil
		}
	}

	return "", fmt.Errorf("could not find a free pilot id after %d attempts", maxCodeAttempts)
}

// ValidateCode resolves a join code to its organization or class. A
// class code that resolves also carries its organization. Lookups are
// cached briefly since signup forms validate codes as users type.
func (s *TenantService) ValidateCode(ctx context.Context, code string) (*ResolvedCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrInvalidInput
	}

	var resolved ResolvedCode
	if err := s.cacheService.Get(ctx, "code:"+code, &resolved); err == nil {
		return &resolved, nil
	}

	rc, err := s.resolveCode(ctx, code)
	if err != nil {
		return nil, err
	}

	// Only successful resolutions are cached. Misses stay cheap and a
	// just-activated code is visible immediately.
	_ = s.cacheService.Set(ctx, "code:"+code, *rc)

	return rc, nil
}

func (s *TenantService) resolveCode(ctx context.Context, code string) (*ResolvedCode, error) {
	class, err := s.classRepo.FindByCode(ctx, code)
	if err == nil {
		if !class.Active {
			return nil, domain.ErrCodeInactive
		}
		org, err := s.orgRepo.FindByID(ctx, class.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("finding class organization: %w", err)
		}
		return &ResolvedCode{Kind: CodeKindClass, Class: class, Organization: org}, nil
	}
	if !errors.Is(err, domain.ErrClassNotFound) {
		return nil, fmt.Errorf("finding class by code: %w", err)
	}

	org, err := s.orgRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return nil, domain.ErrCodeNotFound
		}
		return nil, fmt.Errorf("finding organization by code: %w", err)
	}

	return &ResolvedCode{Kind: CodeKindOrganization, Organization: org}, nil
}

// CreateOrganization provisions a tenant with a fresh join code.
func (s *TenantService) CreateOrganization(ctx context.Context, name string, plan model.SubscriptionPlan, createdBy uuid.UUID) (*model.Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}

	code, err := s.GenerateJoinCode(ctx, name)
	if err != nil {
		return nil, err
	}

	org := &model.Organization{
		Name:             name,
		Code:             code,
		BillingStatus:    model.BillingTrial,
		SubscriptionPlan: plan,
		CreatedByID:      createdBy,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// GetOrganization fetches a tenant by ID.
func (s *TenantService) GetOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.orgRepo.FindByID(ctx, id)
}

// UpdateOrganization persists settings and billing changes.
func (s *TenantService) UpdateOrganization(ctx context.Context, org *model.Organization) error {
	return s.orgRepo.Update(ctx, org)
}

// ListOrganizations pages through all tenants. Super admin only, the
// handler enforces that before calling.
func (s *TenantService) ListOrganizations(ctx context.Context, offset, limit int) ([]*model.Organization, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.orgRepo.FindAllPaginated(ctx, offset, limit)
}

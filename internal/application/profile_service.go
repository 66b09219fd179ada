package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/domain/entity"
	repo "github.com/gatherly/gatherly/internal/domain/repository"
)

// CurrentUser bundles the identity record with its optional profile.
type CurrentUser struct {
	User    entity.User
	Profile *entity.Profile
}

type CreateProfileInput struct {
	Role             string
	OrganizationName string
	Bio              string
	Interests        []string
	ContactInfo      string
}

// UpdateProfileInput patches the mutable profile attributes. The role is
// fixed at creation and not part of the input.
type UpdateProfileInput struct {
	OrganizationName *string
	Bio              *string
	Interests        []string
	ContactInfo      *string
}

type ProfileService struct {
	Users    repo.UserRepository
	Profiles repo.ProfileRepository
	Logger   *logrus.Logger
}

func NewProfileService(users repo.UserRepository, profiles repo.ProfileRepository, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Users: users, Profiles: profiles, Logger: logger}
}

// Current resolves the caller to their user record and profile. Anonymous
// callers get (nil, nil); a resolved identity without a profile gets a
// nil Profile inside the result.
func (s *ProfileService) Current(ctx context.Context, callerID string) (*CurrentUser, error) {
	if callerID == "" {
		return nil, nil
	}
	u, err := s.Users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	p, err := s.Profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return &CurrentUser{User: *u, Profile: p}, nil
}

// Create stores the caller's profile. At most one profile per user; the
// role is immutable afterwards.
func (s *ProfileService) Create(ctx context.Context, callerID string, in CreateProfileInput) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	existing, err := s.Profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrProfileExists
	}

	p := &entity.Profile{
		UserID:           callerID,
		Role:             in.Role,
		OrganizationName: in.OrganizationName,
		Bio:              in.Bio,
		Interests:        in.Interests,
		ContactInfo:      in.ContactInfo,
	}
	if err := s.Profiles.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Update patches the caller's profile attributes, never the role.
func (s *ProfileService) Update(ctx context.Context, callerID string, in UpdateProfileInput) (string, error) {
	if callerID == "" {
		return "", ErrNotAuthenticated
	}
	p, err := s.Profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", ErrNotFound
	}

	if in.OrganizationName != nil {
		p.OrganizationName = *in.OrganizationName
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.Interests != nil {
		p.Interests = in.Interests
	}
	if in.ContactInfo != nil {
		p.ContactInfo = *in.ContactInfo
	}
	if err := s.Profiles.Update(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

package dto

import (
	"strings"
	"tourcrm/infras/jwt"
	orgModel "tourcrm/internal/domains/organization/model"
	userModel "tourcrm/internal/domains/user/model"
	userDto "tourcrm/internal/domains/user/model/dto"
	"tourcrm/internal/schema"
	"tourcrm/shared/constant"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
)

// RegisterRequest signs up a new tenant: one organization and its first
// admin user, created together.
type RegisterRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=2,max=150"`
	Email            string `json:"email"             validate:"required,email,max=150"`
	Password         string `json:"password"          validate:"required,min=8"`
	FullName         string `json:"full_name"         validate:"required,min=2,max=150"`
}

func (r *RegisterRequest) ToOrganizationModel() orgModel.Organization {
	return orgModel.Organization{
		ID:           uuid.NewString(),
		Name:         r.OrganizationName,
		Slug:         Slugify(r.OrganizationName),
		PrimaryColor: schema.DefaultPrimaryColor,
		Settings:     "{}",
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

func (r *RegisterRequest) ToUserModel(organizationID, hashedPassword string) userModel.User {
	return userModel.User{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Email:          r.Email,
		Password:       hashedPassword,
		FullName:       r.FullName,
		Role:           constant.RoleAdmin,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// Slugify lowercases the name and collapses anything outside [a-z0-9]
// into single hyphens.
func Slugify(name string) string {
	var b strings.Builder

	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
	ExpiresIn    int64                   `json:"expires_in"`
	User         userDto.ProfileResponse `json:"user"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}

package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourcrm/infras/jwt"
	"tourcrm/internal/domains/auth/model/dto"
	"tourcrm/shared/constant"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToModels(t *testing.T) {
	req := dto.RegisterRequest{
		OrganizationName: "Lisbon Day Trips",
		Email:            "owner@lisbondaytrips.com",
		Password:         "supersecret",
		FullName:         "Ana Costa",
	}

	org := req.ToOrganizationModel()
	assert.NotEmpty(t, org.ID)
	assert.Equal(t, "Lisbon Day Trips", org.Name)
	assert.Equal(t, "lisbon-day-trips", org.Slug)
	assert.Equal(t, "{}", org.Settings)

	user := req.ToUserModel(org.ID, "hashed")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, org.ID, user.OrganizationID)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleAdmin, user.Role)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"simple", "Lisbon Day Trips", "lisbon-day-trips"},
		{"punctuation collapses", "Ben & Jerry's Tours!", "ben-jerry-s-tours"},
		{"leading and trailing noise", "  --Alps--  ", "alps"},
		{"digits kept", "Route 66 Rides", "route-66-rides"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.Slugify(tt.in))
		})
	}
}

package dto

import (
	"tourcrm/internal/domains/user/model"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	gModel "tourcrm/shared/model"
	"tourcrm/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string `json:"email"     validate:"required,email,max=150"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin agent viewer"`
}

func (r *CreateUserRequest) ToModel(organizationID, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleAgent
	}

	return model.User{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Email:          r.Email,
		Password:       hashedPassword,
		FullName:       r.FullName,
		Role:           role,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateUserRequest struct {
	FullName  string `db:"full_name"  json:"full_name"  validate:"omitempty,min=2,max=150"`
	Role      string `db:"role"       json:"role"       validate:"omitempty,oneof=admin agent viewer"`
	AvatarURL string `db:"avatar_url" json:"avatar_url" validate:"omitempty,url,max=250"`
}

// UpdateProfileRequest is the self-service subset, a user may not change
// their own role.
type UpdateProfileRequest struct {
	FullName  string `db:"full_name"  json:"full_name"  validate:"omitempty,min=2,max=150"`
	AvatarURL string `db:"avatar_url" json:"avatar_url" validate:"omitempty,url,max=250"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.AvatarURL = model.AvatarURL
	r.Metadata.FromModel(model.Metadata)
}

// ProfileResponse adds the organization reference the dashboard shell needs
// on first paint.
type ProfileResponse struct {
	UserResponse
	OrganizationID string `json:"organization_id"`
}

func (r *ProfileResponse) FromModel(model model.User) {
	r.UserResponse.FromModel(model)
	r.OrganizationID = model.OrganizationID
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

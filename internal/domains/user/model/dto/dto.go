package dto

import (
	"github.com/google/uuid"

	"github.com/Ayy-man/spa-booking-v2-sub002/internal/domains/user/model"
	gDto "github.com/Ayy-man/spa-booking-v2-sub002/shared/dto"
	gModel "github.com/Ayy-man/spa-booking-v2-sub002/shared/model"
	"github.com/Ayy-man/spa-booking-v2-sub002/shared/timezone"
)

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Name     string `json:"name"     validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=admin staff"`
}

func (c *CreateUserRequest) ToModel(passwordHash, user string) model.User {
	return model.User{
		ID:           uuid.NewString(),
		Email:        c.Email,
		Name:         c.Name,
		PasswordHash: passwordHash,
		Role:         c.Role,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Name = model.Name
	r.Role = model.Role
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

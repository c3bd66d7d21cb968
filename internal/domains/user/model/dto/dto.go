package dto

import (
	"zimmery/internal/domains/user/model"
)

type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Level    string  `json:"level"`
	FullName *string `json:"full_name,omitempty"`
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Email = model.Email
	u.Level = model.Level
	u.FullName = model.FullName
}

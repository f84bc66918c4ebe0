package request

import (
	"carhaul-portal/internal/usecase/commands"
)

type ContactRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

func (r ContactRequest) ToInput() commands.ContactInput {
	return commands.ContactInput{
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Message:     r.Message,
	}
}

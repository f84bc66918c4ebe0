package request

import (
	"carhaul-portal/internal/usecase/commands"
)

type ProfilePatchRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

func (r ProfilePatchRequest) ToInput() commands.ProfilePatchInput {
	return commands.ProfilePatchInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

func (r ProfilePatchRequest) Empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.PhoneNumber == nil
}

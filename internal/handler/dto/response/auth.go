package response

import (
	"carhaul-portal/internal/usecase/commands"
	"carhaul-portal/internal/usecase/readmodel"
)

type LoginResponse struct {
	User       readmodel.SessionUserRM `json:"user"`
	RedirectTo string                  `json:"redirectTo"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		User:       r.User,
		RedirectTo: r.RedirectTo,
	}
}

type MeResponse struct {
	User readmodel.SessionUserRM `json:"user"`
}

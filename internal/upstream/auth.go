package upstream

import (
	"context"
	"net/url"
)

type RegisterPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type UserPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// LoginResult is the pinned login contract: one token field, one user object.
type LoginResult struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

type AuthClient struct {
	*Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{Client: c}
}

func (a *AuthClient) Register(ctx context.Context, payload RegisterPayload) error {
	return a.post(ctx, "/auth/register", "", payload, nil)
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := a.post(ctx, "/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *AuthClient) ConfirmOTP(ctx context.Context, otp string) error {
	return a.get(ctx, "/auth/otp/confirmation", url.Values{"otp": {otp}}, "", nil)
}

func (a *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	return a.post(ctx, "/auth/users/forget_password", "", map[string]string{"email": email}, nil)
}

func (a *AuthClient) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return a.post(ctx, "/auth/users/reset_password", "", body, nil)
}

func (a *AuthClient) ResendToken(ctx context.Context, email string) error {
	return a.post(ctx, "/auth/users/resend-token", "", map[string]string{"email": email}, nil)
}

package commands

import (
	"context"

	"carhaul-portal/internal/domain/contact"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/upstream"
)

type ContactInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Message     string
}

type ContactCommands struct {
	gateway ContactGateway
}

func NewContactCommands(gateway ContactGateway) *ContactCommands {
	return &ContactCommands{gateway: gateway}
}

func (c *ContactCommands) Send(ctx context.Context, input ContactInput) error {
	msg, err := contact.NewMessage(input.Name, input.Email, input.PhoneNumber, input.Message)
	if err != nil {
		return err
	}
	err = c.gateway.Send(ctx, upstream.ContactPayload{
		Name:        msg.Name(),
		Email:       msg.Email(),
		PhoneNumber: msg.Phone(),
		Message:     msg.Body(),
	})
	if err != nil {
		return errs.Wrap(err, "send contact message upstream")
	}
	return nil
}

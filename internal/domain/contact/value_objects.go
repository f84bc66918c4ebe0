package contact

import (
	"errors"
	"strings"

	"carhaul-portal/internal/domain/user"
)

var (
	ErrMessageTooShort = errors.New("message must be at least 10 characters")
	ErrNameRequired    = errors.New("name is required")
)

const minMessageLength = 10

type Message struct {
	name  string
	email user.Email
	phone user.Phone
	body  string
}

func NewMessage(name, email, phone, body string) (Message, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Message{}, ErrNameRequired
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return Message{}, err
	}
	p, err := user.NewPhone(phone)
	if err != nil {
		return Message{}, err
	}
	if len(strings.TrimSpace(body)) < minMessageLength {
		return Message{}, ErrMessageTooShort
	}
	return Message{name: name, email: e, phone: p, body: strings.TrimSpace(body)}, nil
}

func (m Message) Name() string  { return m.name }
func (m Message) Email() string { return m.email.Value() }
func (m Message) Phone() string { return m.phone.Value() }
func (m Message) Body() string  { return m.body }

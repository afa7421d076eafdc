package customer

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUsername      = errors.New("username must not be empty")
	ErrUsernameHasColon   = errors.New("username must not contain a colon")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

// Username is a directory key. The flat directory format is colon separated
// with no escaping, so colons are rejected outright.
type Username struct {
	value string
}

func NewUsername(value string) (Username, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Username{}, ErrEmptyUsername
	}
	if strings.Contains(trimmed, ":") {
		return Username{}, ErrUsernameHasColon
	}
	return Username{value: trimmed}, nil
}

func (u Username) String() string {
	return u.value
}

type Credentials struct {
	username Username
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	name, err := NewUsername(username)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{username: name, password: password}, nil
}

func (c Credentials) Username() Username { return c.username }
func (c Credentials) Password() string   { return c.password }

package service

import "errors"

var (
	ErrLoginOnServer      = errors.New("login rejected by server")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionPersist     = errors.New("failed to persist session")
)

package domain

import "errors"

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInternalError = errors.New("internal error")

	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrNomeRequired       = errors.New("nome is required")
	ErrNomeTooLong        = errors.New("nome exceeds maximum length")

	ErrCategoriaNotFound      = errors.New("categoria not found")
	ErrCategoriaAlreadyExists = errors.New("categoria already exists")
	ErrCategoriaInUse         = errors.New("categoria has lancamentos assigned")

	ErrLancamentoNotFound = errors.New("lancamento not found")
	ErrValorZero          = errors.New("valor must be non-zero")
	ErrDataRequired       = errors.New("data is required")
	ErrCategoriaRequired  = errors.New("categoria is required")
)

// Validation constants
const (
	MaxCategoriaNomeLength = 100
	MaxNomeLength          = 255
	MinPasswordLength      = 8
)

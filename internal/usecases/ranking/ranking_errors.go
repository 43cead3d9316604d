package ranking

import (
	"errors"
	"fmt"

	"github.com/vfg2006/dish-ranking-api/pkg/apiErrors"
)

// Erros de validação da busca
var (
	ErrMissingName        = errors.New("MissingName")
	ErrMissingPriceRange  = errors.New("MissingPriceRange")
	ErrInvalidPriceFormat = errors.New("InvalidPriceFormat")
	ErrNegativePrice      = errors.New("NegativePrice")
	ErrInvertedPriceRange = errors.New("InvertedPriceRange")
)

// Erros de acesso ao Record Store
var (
	ErrStoreFailure     = errors.New("StoreFailure")
	ErrStoreUnavailable = errors.New("StoreUnavailable")
)

// SearchError é um erro da busca com o código da API e uma mensagem segura para o cliente.
// A causa interna (consulta, credenciais) fica apenas nos logs.
type SearchError struct {
	Err     error  // Tipo do erro (um dos sentinelas acima)
	Code    string // Código de erro para API
	Message string // Mensagem para o cliente
	cause   error
}

func (e *SearchError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Err.Error(), e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Cause retorna o erro interno que originou a falha, quando houver
func (e *SearchError) Cause() error {
	return e.cause
}

// Kind retorna o nome curto da categoria do erro
func (e *SearchError) Kind() string {
	return e.Err.Error()
}

// IsClientError indica se o erro é de validação (classe 4xx)
func (e *SearchError) IsClientError() bool {
	return !errors.Is(e.Err, ErrStoreFailure) && !errors.Is(e.Err, ErrStoreUnavailable)
}

func newValidationError(err error, code string, message string) *SearchError {
	return &SearchError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

func newStoreError(cause error, unavailable bool) *SearchError {
	if unavailable {
		return &SearchError{
			Err:     ErrStoreUnavailable,
			Code:    apiErrors.ErrCommunication,
			Message: "The dish store is temporarily unavailable, please try again later",
			cause:   cause,
		}
	}

	return &SearchError{
		Err:     ErrStoreFailure,
		Code:    apiErrors.ErrDatabaseOperation,
		Message: "An error occurred while searching for dishes",
		cause:   cause,
	}
}

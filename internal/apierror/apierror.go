// Package apierror defines the canonical error vocabulary of the API.
// Every 4xx/5xx response body is the envelope {"error":"CODE"}; services
// return these typed values and the HTTP layer renders them, so internal
// details (stack traces, map lookups) never leak to clients.
package apierror

import "net/http"

// APIError couples a user-facing code with its HTTP status.
type APIError struct {
	Status int    `json:"-"`
	Code   string `json:"error"`
}

func (e *APIError) Error() string { return e.Code }

func New(status int, code string) *APIError {
	return &APIError{Status: status, Code: code}
}

var (
	ErrValidation         = New(http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	ErrInvalidCredentials = New(http.StatusUnauthorized, "INVALID_CREDENTIALS")
	ErrUnauthorized       = New(http.StatusUnauthorized, "UNAUTHORIZED")

	ErrNotFound        = New(http.StatusNotFound, "NOT_FOUND")
	ErrMesaNotFound    = New(http.StatusNotFound, "TABLE_NOT_FOUND")
	ErrProdutoNotFound = New(http.StatusNotFound, "PRODUCT_NOT_FOUND")
	ErrComandaNotFound = New(http.StatusNotFound, "ORDER_NOT_FOUND")

	ErrCaixaJaAberto         = New(http.StatusConflict, "CASH_REGISTER_ALREADY_OPEN")
	ErrCaixaNaoAberto        = New(http.StatusConflict, "NO_OPEN_CASH_REGISTER")
	ErrCaixaDeveEstarAberto  = New(http.StatusConflict, "CASH_REGISTER_MUST_BE_OPEN")
	ErrMesaJaExiste          = New(http.StatusConflict, "TABLE_ALREADY_EXISTS")
	ErrMesaIndisponivel      = New(http.StatusConflict, "TABLE_NOT_AVAILABLE")
	ErrComandaJaFechada      = New(http.StatusConflict, "ORDER_ALREADY_CLOSED")
	ErrComandaSemItens       = New(http.StatusConflict, "ORDER_HAS_NO_ITEMS")
	ErrEstoqueInsuficiente   = New(http.StatusConflict, "INSUFFICIENT_STOCK")
	ErrPagamentoInsuficiente = New(http.StatusConflict, "INSUFFICIENT_PAYMENT")
	ErrQuantidadeInvalida    = New(http.StatusConflict, "INVALID_QUANTITY")
	ErrValorInvalido         = New(http.StatusConflict, "INVALID_AMOUNT")

	ErrIdentificacaoObrigatoria = New(http.StatusUnprocessableEntity, "ORDER_IDENTIFICATION_REQUIRED")

	ErrTooManyRequests = New(http.StatusTooManyRequests, "TOO_MANY_REQUESTS")
	ErrInternal        = New(http.StatusInternalServerError, "INTERNAL_ERROR")
)

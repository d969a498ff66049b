package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrTaskNotAvailable
	ErrInvalidTransition
	ErrNotWalletAccount
	ErrForbidden
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrTaskNotAvailable:  "task is not available for acceptance",
	ErrInvalidTransition: "task status does not allow this transition",
	ErrNotWalletAccount:  "payment account is not a wallet",
	ErrForbidden:         "forbidden",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrTaskNotAvailable:  http.StatusBadRequest,
	ErrInvalidTransition: http.StatusBadRequest,
	ErrNotWalletAccount:  http.StatusBadRequest,
	ErrForbidden:         http.StatusForbidden,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrTaskNotAvailable:  "0004",
	ErrInvalidTransition: "0005",
	ErrNotWalletAccount:  "0006",
	ErrForbidden:         "0007",
}

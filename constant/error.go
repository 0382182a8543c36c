package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrUnauthorize
	ErrUserNotFound
	ErrProfileNotFound
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidName
	ErrInvalidEmail
	ErrInvalidPhone
	ErrWeakPassword
	ErrInvalidCylinderType
	ErrInvalidPaymentMethod
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "invalid or expired token",
	ErrUserNotFound:         "user not found, please register first",
	ErrProfileNotFound:      "user not found",
	ErrCredentialExists:     "email or phone already exists",
	ErrInvalidPassword:      "password invalid",
	ErrInvalidName:          "name must be at least 3 characters",
	ErrInvalidEmail:         "invalid email format",
	ErrInvalidPhone:         "phone must be 10 digits",
	ErrWeakPassword:         "password must be 6+ chars, 1 number, 1 special char",
	ErrInvalidCylinderType:  "invalid cylinder type selected",
	ErrInvalidPaymentMethod: "invalid payment method selected",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrUserNotFound:         http.StatusBadRequest,
	ErrProfileNotFound:      http.StatusNotFound,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidPassword:      http.StatusBadRequest,
	ErrInvalidName:          http.StatusBadRequest,
	ErrInvalidEmail:         http.StatusBadRequest,
	ErrInvalidPhone:         http.StatusBadRequest,
	ErrWeakPassword:         http.StatusBadRequest,
	ErrInvalidCylinderType:  http.StatusBadRequest,
	ErrInvalidPaymentMethod: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrInvalidRequest:       "0002",
	ErrUnauthorize:          "0003",
	ErrUserNotFound:         "0004",
	ErrProfileNotFound:      "0005",
	ErrCredentialExists:     "0006",
	ErrInvalidPassword:      "0007",
	ErrInvalidName:          "0008",
	ErrInvalidEmail:         "0009",
	ErrInvalidPhone:         "0010",
	ErrWeakPassword:         "0011",
	ErrInvalidCylinderType:  "0012",
	ErrInvalidPaymentMethod: "0013",
}

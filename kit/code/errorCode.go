package code

import (
	"encoding/json"
	"fmt"
	httpPKG "net/http"

	"github.com/pkg/errors"
)

type errorCode struct {
	HTTPCode    int    `json:"http_code"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	OriginError error  `json:"-"`
	CallStack   string `json:"-"`
}

func (e errorCode) Error() string {
	errorStr, err := json.Marshal(e)
	if err != nil {
		panic(err)
	}
	return string(errorStr)
}

func (e *errorCode) AddErrorMetaData(err error) *errorCode {
	e.OriginError = err
	e.CallStack = fmt.Sprintf("%+v", err)
	return e
}

func (e *errorCode) AddCode(code int, args ...any) *errorCode {
	if httpErrorCodes, ok := errorCodes[e.HTTPCode]; ok {
		if message, ok := httpErrorCodes[code]; ok {
			e.Code = code
			e.Message = fmt.Sprintf(message, args...)
		}
	}
	return e
}

const (
	Default = iota
	RateLimit
	InvalidBody
	QueryNotAllowed
	MissingField
	UnknownField
	EmailInvalid
	EmailExists
	EmailImmutable
	InvalidFile
	PasswordInvalid
	TokenInvalid
	ImageExists
)

var errorCodes = map[int]map[int]string{
	httpPKG.StatusBadRequest: {
		Default:         "bad request",
		InvalidBody:     "invalid body",
		QueryNotAllowed: "query parameters are not allowed",
		MissingField:    "field %s is required",
		UnknownField:    "unknown field %s",
		EmailInvalid:    "email is not a valid address",
		EmailExists:     "email already exists",
		EmailImmutable:  "email can not be changed",
		InvalidFile:     "invalid file: %s",
	},
	httpPKG.StatusUnauthorized: {
		Default:         "unauthorized",
		PasswordInvalid: "password invalid",
	},
	httpPKG.StatusForbidden: {
		Default: "forbidden",
	},
	httpPKG.StatusNotFound: {
		Default:      "not found",
		TokenInvalid: "invalid or expired token",
	},
	httpPKG.StatusMethodNotAllowed: {
		Default: "method not allowed",
	},
	httpPKG.StatusConflict: {
		Default:     "conflict",
		ImageExists: "profile image already exists",
	},
	httpPKG.StatusTooManyRequests: {
		Default:   "too many requests",
		RateLimit: "rate limit error. expiry: %d",
	},
	httpPKG.StatusInternalServerError: {
		Default: "internal error",
	},
	httpPKG.StatusServiceUnavailable: {
		Default: "service unavailable",
	},
}

type errorCodeOption func(*errorCode)

func CreateErrorCode(code int, options ...errorCodeOption) *errorCode {
	resCode := httpPKG.StatusInternalServerError
	resMessage := errorCodes[httpPKG.StatusInternalServerError][Default]
	if codes, ok := errorCodes[code]; ok {
		resCode = code

		if message, ok := codes[Default]; ok {
			resMessage = message
		}
	}

	errorCode := errorCode{
		HTTPCode: resCode,
		Code:     Default,
		Message:  resMessage,
	}

	for _, option := range options {
		option(&errorCode)
	}

	return &errorCode
}

func ParseErrorCode(err error) *errorCode {
	causeErr := errors.Cause(err)
	switch errorCode := causeErr.(type) {
	case *errorCode:
		return errorCode
	}

	return CreateErrorCode(httpPKG.StatusInternalServerError).AddErrorMetaData(err)
}

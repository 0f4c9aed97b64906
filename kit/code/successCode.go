package code

import httpPKG "net/http"

type SuccessCode struct {
	HTTPCode int
}

// HTTPCoder lets a response type carry its own success status,
// e.g. 201 for resource creation.
type HTTPCoder interface {
	SuccessHTTPCode() int
}

func ParseResponseSuccessCode(res interface{}) *SuccessCode {
	switch successCode := res.(type) {
	case SuccessCode:
		return &successCode
	case HTTPCoder:
		return &SuccessCode{HTTPCode: successCode.SuccessHTTPCode()}
	case nil:
		return &SuccessCode{HTTPCode: httpPKG.StatusNoContent}
	}
	return &SuccessCode{HTTPCode: httpPKG.StatusOK}
}

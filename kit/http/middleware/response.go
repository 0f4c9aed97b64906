package middleware

import (
	"context"
	"net/http"

	"github.com/superj80820/user-profile-service/kit/code"
)

// EncodeResponseSetSuccessHTTPCode writes the response status resolved
// from the response value before the body encoder runs. A nil response
// becomes 204 with no body.
func EncodeResponseSetSuccessHTTPCode(next func(ctx context.Context, w http.ResponseWriter, response interface{}) error) func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		successCode := code.ParseResponseSuccessCode(response)
		switch successCode.HTTPCode {
		case http.StatusOK:
			// first body write sets 200 implicitly
		case http.StatusNoContent:
			w.WriteHeader(http.StatusNoContent)
			return nil
		default:
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(successCode.HTTPCode)
		}
		return next(ctx, w, response)
	}
}

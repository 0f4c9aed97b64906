package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/go-kit/kit/endpoint"
	"github.com/pkg/errors"

	"github.com/superj80820/user-profile-service/kit/code"
	httpKit "github.com/superj80820/user-profile-service/kit/http"
)

const basicSchemePrefix = "Basic "

// CreateBasicAuthMiddleware decodes the Basic authorization header and
// hands the credentials to verifyFunc. The resolved account identifier
// is attached to the request context. Absent, malformed or non-Basic
// headers are rejected with 401 before any lookup happens.
func CreateBasicAuthMiddleware(verifyFunc func(ctx context.Context, email, password string) (userID string, err error)) endpoint.Middleware {
	return func(e endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			email, password, decodeErr := decodeBasicCredentials(httpKit.GetAuthorization(ctx))
			if decodeErr != nil {
				return nil, code.CreateErrorCode(http.StatusUnauthorized).AddErrorMetaData(decodeErr)
			}
			userID, err := verifyFunc(ctx, email, password)
			if err != nil {
				return nil, err
			}
			ctx = httpKit.AddUserID(ctx, userID)
			return e(ctx, request)
		}
	}
}

func decodeBasicCredentials(authorization string) (email, password string, err error) {
	if !strings.HasPrefix(authorization, basicSchemePrefix) {
		return "", "", errors.New("authorization header absent or not basic scheme")
	}
	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authorization, basicSchemePrefix))
	if err != nil {
		return "", "", errors.Wrap(err, "decode base64 payload failed")
	}
	credentials := strings.SplitN(string(payload), ":", 2)
	if len(credentials) != 2 {
		return "", "", errors.New("credentials missing separator")
	}
	return credentials[0], credentials[1], nil
}

package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	httpKit "github.com/superj80820/user-profile-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/user-profile-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-profile-service/kit/http/transport"
)

var EncodeAccountGetResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)

func DecodeAccountGetRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	if r.URL.RawQuery != "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.QueryNotAllowed)
	}
	// ContentLength is -1 for chunked bodies, those count as present too
	if r.ContentLength != 0 {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	return nil, nil
}

func MakeAccountGetEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		account, err := svc.Get(ctx, httpKit.GetUserID(ctx))
		if err != nil {
			return nil, err
		}
		return makeAccountResponse(account), nil
	}
}

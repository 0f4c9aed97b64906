package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	httpMiddlewareKit "github.com/superj80820/user-profile-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-profile-service/kit/http/transport"
)

var EncodeHealthCheckResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeEmptyResponse)

func DecodeHealthCheckRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	if r.URL.RawQuery != "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.QueryNotAllowed)
	}
	// ContentLength is -1 for chunked bodies, those count as present too
	if r.ContentLength != 0 {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody)
	}
	return nil, nil
}

func MakeHealthCheckEndpoint(svc domain.HealthUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		if err := svc.Ping(ctx); err != nil {
			return nil, err
		}
		return code.SuccessCode{HTTPCode: http.StatusOK}, nil
	}
}

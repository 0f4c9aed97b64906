package http

import (
	"context"

	"github.com/go-kit/kit/endpoint"

	"github.com/superj80820/user-profile-service/domain"
	httpKit "github.com/superj80820/user-profile-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/user-profile-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-profile-service/kit/http/transport"
)

var (
	DecodeImageDeleteRequest  = httpTransportKit.DecodeEmptyRequest
	EncodeImageDeleteResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeEmptyResponse)
)

func MakeImageDeleteEndpoint(svc domain.ProfileImageUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		if err := svc.Delete(ctx, httpKit.GetUserID(ctx)); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

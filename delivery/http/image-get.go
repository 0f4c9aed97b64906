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
	DecodeImageGetRequest  = httpTransportKit.DecodeEmptyRequest
	EncodeImageGetResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)
)

func MakeImageGetEndpoint(svc domain.ProfileImageUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		image, err := svc.Get(ctx, httpKit.GetUserID(ctx))
		if err != nil {
			return nil, err
		}
		return makeImageResponse(image), nil
	}
}

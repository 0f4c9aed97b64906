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

var EncodeAccountUpdateResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)

// accountUpdateRequest carries the whitelisted field names, anything
// else fails strict decoding.
type accountUpdateRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password"`
}

func DecodeAccountUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	if r.URL.RawQuery != "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.QueryNotAllowed)
	}
	return httpTransportKit.DecodeJsonRequest[accountUpdateRequest](ctx, r)
}

func MakeAccountUpdateEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountUpdateRequest)
		account, err := svc.Update(ctx, httpKit.GetUserID(ctx), domain.AccountUpdate{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Password:  req.Password,
		})
		if err != nil {
			return nil, err
		}
		return makeAccountResponse(account), nil
	}
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-kit/kit/endpoint"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	httpMiddlewareKit "github.com/superj80820/user-profile-service/kit/http/middleware"
	httpTransportKit "github.com/superj80820/user-profile-service/kit/http/transport"
)

var EncodeAccountCreateResponse = httpMiddlewareKit.EncodeResponseSetSuccessHTTPCode(httpTransportKit.EncodeJsonResponse)

type accountCreateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// accountResponse is the public projection, the password hash and
// verification fields never serialize.
type accountResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	AccountCreated string `json:"account_created"`
	AccountUpdated string `json:"account_updated"`
}

type accountCreatedResponse struct {
	accountResponse
}

func (accountCreatedResponse) SuccessHTTPCode() int { return http.StatusCreated }

func makeAccountResponse(account *domain.Account) accountResponse {
	return accountResponse{
		ID:             account.ID,
		Email:          account.Email,
		FirstName:      account.FirstName,
		LastName:       account.LastName,
		AccountCreated: account.AccountCreated.UTC().Format(time.RFC3339),
		AccountUpdated: account.AccountUpdated.UTC().Format(time.RFC3339),
	}
}

func DecodeAccountCreateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	if r.URL.RawQuery != "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.QueryNotAllowed)
	}
	return httpTransportKit.DecodeJsonRequest[accountCreateRequest](ctx, r)
}

func MakeAccountCreateEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(accountCreateRequest)
		account, err := svc.Create(ctx, req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			return nil, err
		}
		return accountCreatedResponse{makeAccountResponse(account)}, nil
	}
}

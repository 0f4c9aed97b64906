package http

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/go-kit/kit/endpoint"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
)

//go:embed templates/*.html
var verifyTemplateFS embed.FS

var verifyTemplates = template.Must(template.ParseFS(verifyTemplateFS, "templates/*.html"))

type emailVerifyRequest struct {
	token string
}

func DecodeEmailVerifyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	token := r.URL.Query().Get("token")
	if token == "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.MissingField, "token")
	}
	return emailVerifyRequest{token: token}, nil
}

func MakeEmailVerifyEndpoint(svc domain.AccountUseCase) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		req := request.(emailVerifyRequest)
		if err := svc.VerifyEmail(ctx, req.token); err != nil {
			return nil, err
		}
		return nil, nil
	}
}

// EncodeEmailVerifyResponse renders the success page. The endpoint is
// opened from a mail client, so it answers in HTML rather than JSON.
func EncodeEmailVerifyResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return verifyTemplates.ExecuteTemplate(w, "verify-success.html", nil)
}

func EncodeEmailVerifyErrorResponse() func(ctx context.Context, err error, w http.ResponseWriter) {
	return func(ctx context.Context, err error, w http.ResponseWriter) {
		errorCode := code.ParseErrorCode(err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(errorCode.HTTPCode)
		verifyTemplates.ExecuteTemplate(w, "verify-failure.html", map[string]string{
			"Message": errorCode.Message,
		})
	}
}

package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/superj80820/user-profile-service/kit/code"
)

func DecodeEmptyRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	return nil, nil
}

// DecodeJsonRequest decodes a strict JSON body: unknown fields are
// rejected so callers can rely on field whitelisting.
func DecodeJsonRequest[T any](ctx context.Context, r *http.Request) (interface{}, error) {
	var req T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		if fieldName, ok := parseUnknownField(err); ok {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.UnknownField, fieldName).AddErrorMetaData(err)
		}
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.InvalidBody).AddErrorMetaData(err)
	}
	return req, nil
}

func parseUnknownField(err error) (string, bool) {
	const prefix = `json: unknown field `
	message := err.Error()
	if !strings.HasPrefix(message, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(message, prefix), `"`), true
}

func EncodeJsonResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

func EncodeEmptyResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	return nil
}

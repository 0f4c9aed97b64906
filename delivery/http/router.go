package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/superj80820/user-profile-service/domain"
	"github.com/superj80820/user-profile-service/kit/code"
	httpKit "github.com/superj80820/user-profile-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/user-profile-service/kit/http/middleware"
	loggerKit "github.com/superj80820/user-profile-service/kit/logger"
)

type routerConfig struct {
	metricMiddleware    endpoint.Middleware
	rateLimitMiddleware endpoint.Middleware
	serveMetrics        bool
}

type RouterOption func(*routerConfig)

func AddMetrics(namespace, subsystem string) RouterOption {
	return func(config *routerConfig) {
		config.metricMiddleware = httpMiddlewareKit.CreateMetrics(namespace, subsystem)
		config.serveMetrics = true
	}
}

func AddRateLimit(passFunc func(ctx context.Context, key string) (pass bool, lastRequests, curExpiry int, err error)) RouterOption {
	return func(config *routerConfig) {
		config.rateLimitMiddleware = httpMiddlewareKit.CreateRateLimitMiddleware(passFunc)
	}
}

// CreateRouter mounts every endpoint on a gorilla mux and wraps the
// whole tree with the common response headers.
func CreateRouter(
	accountUseCase domain.AccountUseCase,
	authUseCase domain.AuthUseCase,
	imageUseCase domain.ProfileImageUseCase,
	healthUseCase domain.HealthUseCase,
	logger *loggerKit.Logger,
	tracer trace.Tracer,
	options ...RouterOption,
) http.Handler {
	var config routerConfig
	for _, option := range options {
		option(&config)
	}

	chainMiddlewares := []endpoint.Middleware{httpMiddlewareKit.CreateLoggingMiddleware(logger)}
	if config.rateLimitMiddleware != nil {
		chainMiddlewares = append(chainMiddlewares, config.rateLimitMiddleware)
	}
	if config.metricMiddleware != nil {
		chainMiddlewares = append(chainMiddlewares, config.metricMiddleware)
	}
	chain := endpoint.Chain(chainMiddlewares[0], chainMiddlewares[1:]...)

	authMiddleware := httpMiddlewareKit.CreateBasicAuthMiddleware(func(ctx context.Context, email, password string) (string, error) {
		account, err := authUseCase.Authenticate(ctx, email, password)
		if err != nil {
			return "", err
		}
		return account.ID, nil
	})

	serverOptions := []httptransport.ServerOption{
		httptransport.ServerBefore(httpKit.CustomBeforeCtx(tracer)),
		httptransport.ServerAfter(httpKit.CustomAfterCtx),
		httptransport.ServerErrorEncoder(httpKit.EncodeHTTPErrorResponse()),
	}
	verifyServerOptions := []httptransport.ServerOption{
		httptransport.ServerBefore(httpKit.CustomBeforeCtx(tracer)),
		httptransport.ServerAfter(httpKit.CustomAfterCtx),
		httptransport.ServerErrorEncoder(EncodeEmailVerifyErrorResponse()),
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorCode(w, code.CreateErrorCode(http.StatusNotFound))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeErrorCode(w, code.CreateErrorCode(http.StatusMethodNotAllowed))
	})

	r.Methods(http.MethodGet).Path("/healthz").Handler(httptransport.NewServer(
		chain(MakeHealthCheckEndpoint(healthUseCase)),
		DecodeHealthCheckRequest,
		EncodeHealthCheckResponse,
		serverOptions...,
	))
	r.Methods(http.MethodGet).Path("/verify-email").Handler(httptransport.NewServer(
		chain(MakeEmailVerifyEndpoint(accountUseCase)),
		DecodeEmailVerifyRequest,
		EncodeEmailVerifyResponse,
		verifyServerOptions...,
	))
	r.Methods(http.MethodPost).Path("/v1/user").Handler(httptransport.NewServer(
		chain(MakeAccountCreateEndpoint(accountUseCase)),
		DecodeAccountCreateRequest,
		EncodeAccountCreateResponse,
		serverOptions...,
	))
	r.Methods(http.MethodGet).Path("/v1/user/self").Handler(httptransport.NewServer(
		chain(authMiddleware(MakeAccountGetEndpoint(accountUseCase))),
		DecodeAccountGetRequest,
		EncodeAccountGetResponse,
		serverOptions...,
	))
	r.Methods(http.MethodPut).Path("/v1/user/self").Handler(httptransport.NewServer(
		chain(authMiddleware(MakeAccountUpdateEndpoint(accountUseCase))),
		DecodeAccountUpdateRequest,
		EncodeAccountUpdateResponse,
		serverOptions...,
	))
	r.Methods(http.MethodPost).Path("/v1/user/self/pic").Handler(httptransport.NewServer(
		chain(authMiddleware(MakeImageUploadEndpoint(imageUseCase))),
		DecodeImageUploadRequest,
		EncodeImageUploadResponse,
		serverOptions...,
	))
	r.Methods(http.MethodGet).Path("/v1/user/self/pic").Handler(httptransport.NewServer(
		chain(authMiddleware(MakeImageGetEndpoint(imageUseCase))),
		DecodeImageGetRequest,
		EncodeImageGetResponse,
		serverOptions...,
	))
	r.Methods(http.MethodDelete).Path("/v1/user/self/pic").Handler(httptransport.NewServer(
		chain(authMiddleware(MakeImageDeleteEndpoint(imageUseCase))),
		DecodeImageDeleteRequest,
		EncodeImageDeleteResponse,
		serverOptions...,
	))

	if config.serveMetrics {
		r.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.Handler())
	}

	return addCommonHeaders(r)
}

// addCommonHeaders disables caching and sniffing on every response,
// error paths included.
func addCommonHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		next.ServeHTTP(w, r)
	})
}

func writeErrorCode(w http.ResponseWriter, errorCode error) {
	parsed := code.ParseErrorCode(errorCode)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(parsed.HTTPCode)
	json.NewEncoder(w).Encode(parsed)
}

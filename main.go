package main

import (
	"context"
	"net/http"
	"strconv"
	"syscall"

	"github.com/oklog/run"
	"go.opentelemetry.io/otel/trace"

	"github.com/superj80820/user-profile-service/config"
	deliveryHTTP "github.com/superj80820/user-profile-service/delivery/http"
	loggerKit "github.com/superj80820/user-profile-service/kit/logger"
	kafkaMQKit "github.com/superj80820/user-profile-service/kit/mq/kafka"
	memoryMQKit "github.com/superj80820/user-profile-service/kit/mq/memory"
	ormKit "github.com/superj80820/user-profile-service/kit/orm"
	redisKit "github.com/superj80820/user-profile-service/kit/redis"
	traceKit "github.com/superj80820/user-profile-service/kit/trace"
	utilKit "github.com/superj80820/user-profile-service/kit/util"
	mailSendGridRepo "github.com/superj80820/user-profile-service/repository/mail/sendgrid"
	objectStoreS3Repo "github.com/superj80820/user-profile-service/repository/objectstore/s3"
	accountUseCaseLib "github.com/superj80820/user-profile-service/usecase/account"
	authUseCaseLib "github.com/superj80820/user-profile-service/usecase/auth"
	healthUseCaseLib "github.com/superj80820/user-profile-service/usecase/health"
	imageUseCaseLib "github.com/superj80820/user-profile-service/usecase/image"

	accountPostgresRepo "github.com/superj80820/user-profile-service/repository/account/postgres"
	imagePostgresRepo "github.com/superj80820/user-profile-service/repository/image/postgres"

	mqKit "github.com/superj80820/user-profile-service/kit/mq"
)

const serviceName = "user-profile"

func main() {
	cfg := config.Load()

	logLevel := loggerKit.InfoLevel
	if cfg.Env == "development" {
		logLevel = loggerKit.DebugLevel
	}
	logger, err := loggerKit.NewLogger("./go.log", logLevel)
	if err != nil {
		panic(err)
	}

	var dialect ormKit.Option
	switch cfg.DBDialect {
	case "mysql":
		dialect = ormKit.UseMySQL(cfg.DBDSN)
	case "sqlite":
		dialect = ormKit.UseSQLite(cfg.DBDSN)
	default:
		dialect = ormKit.UsePostgres(cfg.DBDSN)
	}
	db, err := ormKit.CreateDB(dialect)
	if err != nil {
		panic(err)
	}

	objectStoreRepo, err := objectStoreS3Repo.CreateS3Repo(context.Background(), cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		panic(err)
	}

	var accountEventTopic mqKit.MQTopic
	if cfg.KafkaURL != "" {
		accountEventTopic = kafkaMQKit.CreateKafkaMQ(cfg.KafkaURL, cfg.AccountEventTopic)
	} else {
		accountEventTopic = memoryMQKit.CreateMemoryMQ()
	}

	mailRepo := mailSendGridRepo.CreateMailRepo(cfg.SendGridAPIKey, cfg.MailFromEmail, cfg.MailFromName)
	accountRepo := accountPostgresRepo.CreateAccountRepo(db)
	imageRepo := imagePostgresRepo.CreateProfileImageRepo(db)

	var tracer trace.Tracer
	if cfg.EnableTracer {
		tracer, err = traceKit.CreateTracer(context.Background(), serviceName)
		if err != nil {
			panic(err)
		}
	} else {
		tracer = traceKit.CreateNoOpTracer()
	}

	accountUseCase, err := accountUseCaseLib.CreateAccountUseCase(
		accountRepo,
		mailRepo,
		accountEventTopic,
		logger,
		cfg.AppBaseURL,
		cfg.VerificationTokenTTL,
		cfg.NotifyFailureAborts,
	)
	if err != nil {
		panic(err)
	}
	authUseCase, err := authUseCaseLib.CreateAuthUseCase(accountRepo, logger)
	if err != nil {
		panic(err)
	}
	imageUseCase, err := imageUseCaseLib.CreateProfileImageUseCase(imageRepo, objectStoreRepo, logger)
	if err != nil {
		panic(err)
	}
	healthUseCase := healthUseCaseLib.CreateHealthUseCase(db)

	routerOptions := []deliveryHTTP.RouterOption{}
	if cfg.EnableMetric {
		routerOptions = append(routerOptions, deliveryHTTP.AddMetrics(cfg.MetricNamespace, serviceName))
	}
	if cfg.EnableRateLimit {
		cache, err := redisKit.CreateCache(cfg.RedisURL, "", 0)
		if err != nil {
			panic(err)
		}
		rateLimit := utilKit.CreateCacheRateLimit(cache, cfg.RateLimitMaxRequests, cfg.RateLimitExpiry)
		routerOptions = append(routerOptions, deliveryHTTP.AddRateLimit(rateLimit.Pass))
	}

	handler := deliveryHTTP.CreateRouter(
		accountUseCase,
		authUseCase,
		imageUseCase,
		healthUseCase,
		logger,
		tracer,
		routerOptions...,
	)

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: handler,
	}

	var g run.Group
	g.Add(func() error {
		logger.Info("server listening", loggerKit.String("addr", server.Addr), loggerKit.String("env", cfg.Env))
		return server.ListenAndServe()
	}, func(error) {
		server.Shutdown(context.Background())
	})
	g.Add(run.SignalHandler(context.Background(), syscall.SIGINT, syscall.SIGTERM))
	mqDone := make(chan struct{})
	g.Add(func() error {
		<-mqDone
		return nil
	}, func(error) {
		accountEventTopic.Shutdown()
		close(mqDone)
	})

	if err := g.Run(); err != nil {
		logger.Error("server stopped", loggerKit.Error(err))
	}
}

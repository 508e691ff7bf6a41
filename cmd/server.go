package cmd

import (
	_ "audio2score/docs"
	"audio2score/internal/config"
	"audio2score/internal/core"
	"audio2score/internal/db"
	"audio2score/internal/http/handler"
	"audio2score/internal/http/handler/middleware"
	"audio2score/internal/http/payload"
	"audio2score/internal/http/server"
	"audio2score/internal/mirror"
	"audio2score/internal/repository"
	"audio2score/internal/scratch"
	"audio2score/internal/transcribe"
	"audio2score/pkg/jwt"
	"audio2score/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		// no logger yet, the environment decides its encoder
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("audio2score", zapcore.InfoLevel, !config.IsProduction())
	defer func() {
		_ = logger.Sync()
	}()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// jwt service
	jwtService, err := jwt.NewJWTService([]byte(config.JWTSecret), config.JWTAlgorithm)
	if err != nil {
		logger.Errorw("failed to create jwt service", "error", err)
		return err
	}

	// repository
	repo := repository.NewStore(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	area, err := scratch.NewArea(config.UploadDir)
	if err != nil {
		logger.Errorw("failed to prepare upload directory", "error", err, "dir", config.UploadDir)
		return err
	}

	transcriber := transcribe.NewBasicPitch(
		logger,
		transcribe.NewExecRunner(),
		config.BasicPitchBin,
		config.TranscribeWorkers,
		config.TranscribeTimeout)

	// scorer
	scorer := core.NewScorer(
		logger,
		repo,
		jwtService,
		transcriber,
		newMirror(logger, config.Mirror),
		area,
		config.TokenExpiration)

	// handler
	scoreHlr := handler.NewScoreHandler(
		logger,
		payload.Decoder{},
		scorer,
		dbConn,
		config.MaxUploadSizeBytes)

	authMw := middleware.NewAuthMiddleware(logger, scorer)

	// register routes
	mux := handler.NewRouter(scoreHlr, authMw, httpSwagger.WrapHandler)

	// middleware
	hdlr := cors.New(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	logger.Infow("starting audio2score",
		"environment", config.Environment,
		"port", config.Port,
		"upload_dir", config.UploadDir,
		"transcribe_workers", config.TranscribeWorkers,
		"mirror_enabled", config.Mirror.Enabled())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newMirror(logger *zap.SugaredLogger, cfg config.Mirror) core.Mirror {
	if !cfg.Enabled() {
		return mirror.Nop{}
	}

	logger.Infow("mirroring midi files", "bucket", cfg.Bucket, "endpoint", cfg.Endpoint)
	return mirror.NewS3Mirror(mirror.NewS3Client(cfg), cfg.Bucket)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}

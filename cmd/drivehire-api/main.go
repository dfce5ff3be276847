// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"drivehire/internal/config"
	httptransport "drivehire/internal/http"
	"drivehire/internal/infra"
	"drivehire/internal/maps"
	"drivehire/internal/modules/auth"
	"drivehire/internal/modules/booking"
	"drivehire/internal/modules/document"
	"drivehire/internal/modules/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := infra.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	s3Client, err := infra.NewS3(ctx, cfg.S3.Region)
	if err != nil {
		log.Fatalf("s3 init: %v", err)
	}

	profileStore := profile.NewStore(dbPool)
	profileSvc := profile.NewService(profileStore)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, profileSvc)
	draftStore := booking.NewDraftStore(redisClient)

	uploader := document.NewS3Uploader(s3Client, cfg.S3.Bucket, cfg.S3.Region)
	documentSvc := document.NewService(uploader, profileSvc)

	authSvc := auth.NewService(
		auth.NewStore(dbPool),
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		auth.NewCodeStore(redisClient),
		auth.NewRevoker(redisClient),
		auth.NewSessions(),
		profileSvc,
		logCodeSender{log: log},
	)

	var places *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		places, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	deps := httptransport.RouterDeps{
		Auth:      authSvc,
		Booking:   bookingSvc,
		Drafts:    draftStore,
		Profile:   profileSvc,
		Documents: documentSvc,
		City:      cfg.Maps.City,
		Log:       log,
	}
	if places != nil {
		deps.Places = places
	}

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(deps)}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", cfg.HTTP.Addr).Info("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// logCodeSender logs verification codes instead of emailing them. Replace
// with an SMTP or SMS sender in deployment.
type logCodeSender struct {
	log *logrus.Logger
}

func (s logCodeSender) Send(_ context.Context, email, code string) error {
	s.log.WithFields(logrus.Fields{"email": email, "code": code}).Info("verification code issued")
	return nil
}

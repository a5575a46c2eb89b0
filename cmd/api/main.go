package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/Gazi-Farhana/summer-camp-server/internal/auth"
	"github.com/Gazi-Farhana/summer-camp-server/internal/config"
	"github.com/Gazi-Farhana/summer-camp-server/internal/database"
	"github.com/Gazi-Farhana/summer-camp-server/internal/logger"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
	"github.com/Gazi-Farhana/summer-camp-server/internal/routes"
	"github.com/Gazi-Farhana/summer-camp-server/internal/utils"
)

func main() {
	defer logger.Sync()

	cfg := config.LoadConfig()

	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	router := routes.SetupRouter(routes.Deps{
		Tokens:    auth.NewService(cfg.JWTSecret),
		Users:     repository.NewMongoUserRepository(client, cfg.DatabaseName),
		Courses:   repository.NewMongoCourseRepository(client, cfg.DatabaseName),
		Cart:      repository.NewMongoCartRepository(client, cfg.DatabaseName),
		Payments:  repository.NewMongoPaymentRepository(client, cfg.DatabaseName),
		Mailer:    utils.NewMailer(cfg),
		StripeKey: cfg.StripeKey,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

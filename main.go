package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"coursetrack/config"
	"coursetrack/database"
	"coursetrack/database/seed"
	"coursetrack/middleware"
	"coursetrack/repository"
	"coursetrack/routers"
	"coursetrack/utils"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDb(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.New(db, repository.Options{
		BcryptCost:        cfg.SaltRound,
		RequireCompletion: cfg.CertificateRequireCompletion,
		EnforceTimeLimit:  cfg.QuizEnforceTimeLimit,
	})

	if cfg.SeedOnStart {
		seed.Run(context.Background(), repo)
	}

	notifier := &utils.Notifications{Mailer: utils.LogMailer{}}
	if cfg.SendgridAPIKey != "" {
		notifier.Mailer = utils.NewSendgridMailer(cfg.SendgridAPIKey, cfg.EmailSender)
	}
	if cfg.CertificateWebhookURL != "" {
		notifier.Webhook = utils.NewWebhookClient(cfg.CertificateWebhookURL)
	}

	app := routers.NewApp(routers.Deps{
		Repo:          repo,
		Auth:          middleware.NewAuth(cfg.JWTKey, cfg.JWTExpiresIn),
		Notifier:      notifier,
		CorsOrigins:   cfg.CorsOrigins,
		AuthRateLimit: cfg.AuthRateLimit,
		StaticDir:     "./public",
		AccessLog:     true,
	})

	scheduler, err := utils.InitializeReconcileScheduler(cfg.ReconcileSchedule, repo)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		<-scheduler.Stop().Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

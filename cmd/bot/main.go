package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/guildops/slack-lineup-bot/internal/config"
	"github.com/guildops/slack-lineup-bot/internal/domain/service"
	"github.com/guildops/slack-lineup-bot/internal/handlers"
	"github.com/guildops/slack-lineup-bot/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	log := logger.Get()

	if err := acquireLock(cfg); err != nil {
		log.Fatalf("Could not acquire instance lock: %v", err)
	}
	defer os.Remove(cfg.LockFile)

	client := slack.New(cfg.SlackBotToken)
	auth, err := client.AuthTest()
	if err != nil {
		log.Fatalf("Slack auth failed: %v", err)
	}
	log.Infof("Authenticated as %s (%s)", auth.User, auth.UserID)

	svcs, err := service.New(client, cfg, auth.UserID, log)
	if err != nil {
		log.Fatalf("Could not build services: %v", err)
	}

	svcs.Schedule.Start()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("%v", err)
	}

	handler := handlers.New(client, svcs.Lineup, svcs.Schedule, cfg, loc, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/slack/events", handler.HandleEvents)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: mux}
	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("Server shutdown: %v", err)
	}
	svcs.Schedule.Stop()
	log.Info("Shut down gracefully")
}

// acquireLock writes the single-instance lock file. Strict mode refuses to
// start when a lock already exists; best-effort mode clears a stale lock and
// continues.
func acquireLock(cfg *config.Config) error {
	if cfg.StrictSingleInstance {
		f, err := os.OpenFile(cfg.LockFile, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("another instance appears to be running (delete %s if not)", cfg.LockFile)
			}
			return err
		}
		defer f.Close()
		_, err = fmt.Fprintf(f, "%d", os.Getpid())
		return err
	}

	// Best effort: a stale or unwritable lock never blocks startup.
	_ = os.Remove(cfg.LockFile)
	_ = os.WriteFile(cfg.LockFile, fmt.Appendf(nil, "%d", os.Getpid()), 0o644)
	return nil
}

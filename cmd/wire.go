package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MuzzammilShah/pa-agent-cli/internal/adapters/api"
	sessionstore "github.com/MuzzammilShah/pa-agent-cli/internal/adapters/session"
	"github.com/MuzzammilShah/pa-agent-cli/internal/application"
	"github.com/MuzzammilShah/pa-agent-cli/internal/observability"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
	"github.com/MuzzammilShah/pa-agent-cli/internal/tools"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	client         *api.Client
	store          ports.SessionStore
	flow           *application.AuthFlow
	registry       *tools.Registry
	logger         *zap.Logger
	callbackListen string
	loginTimeout   time.Duration
}

func wireApp() (*app, error) {
	store, err := sessionstore.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	logger, err := wireLogger()
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	baseURL := envOrDefault("PA_API_URL", "http://localhost:8000")
	client, err := api.NewClient(baseURL, store, logger)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	registry, err := tools.DefaultRegistry(client.Email(), client.Calendar(), client.Docs(), client.Code())
	if err != nil {
		return nil, fmt.Errorf("wire tool registry: %w", err)
	}

	return &app{
		client:         client,
		store:          store,
		flow:           application.NewAuthFlow(client.Auth(), store, logger),
		registry:       registry,
		logger:         logger,
		callbackListen: envOrDefault("PA_CALLBACK_LISTEN", "127.0.0.1:3000"),
		loginTimeout:   5 * time.Minute,
	}, nil
}

func wireLogger() (*zap.Logger, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	return observability.NewFileLogger(
		filepath.Join(homeDir, ".paagent"),
		os.Getenv("PA_DEBUG") != "",
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

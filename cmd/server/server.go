// @title           Webcall Relay API
// @version         1.0
// @description     Exchanges a server-held Retell API key for short-lived web call tokens.
// @description     Browsers use the token to join the call directly.

// @contact.name   Jan Team
// @contact.url    https://github.com/janhq/jan-server

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8190
// @BasePath  /

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/janhq/webcall-relay/internal/config"
	"github.com/janhq/webcall-relay/internal/domain"
	"github.com/janhq/webcall-relay/internal/domain/webcall"
	"github.com/janhq/webcall-relay/internal/infrastructure"
	"github.com/janhq/webcall-relay/internal/infrastructure/logger"
	"github.com/janhq/webcall-relay/internal/infrastructure/observability"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver/handlers"
	"github.com/janhq/webcall-relay/internal/interfaces/httpserver/routes"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the application until ctx is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	registry, err := domain.ProvideAgentRegistry(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load agent registry")
	}
	warnMisconfiguration(cfg, registry, log)

	sanitizer := infrastructure.ProvideSanitizer(cfg)
	retellClient := infrastructure.ProvideRetellClient(cfg, sanitizer)
	webCallService := domain.ProvideWebCallService(registry, retellClient, sanitizer, cfg, log)

	handlerProvider := handlers.NewProvider(webCallService)
	routeProvider := routes.NewProvider(handlerProvider, cfg, log)
	httpServer := httpserver.New(cfg, log, routeProvider)

	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Strs("agent_types", registry.Types()).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// warnMisconfiguration logs missing secrets. Requests that need them fail
// with a 500 instead of the server refusing to start.
func warnMisconfiguration(cfg *config.Config, registry *webcall.Registry, log zerolog.Logger) {
	if strings.TrimSpace(cfg.RetellAPIKey) == "" {
		log.Warn().Msg("RETELL_API_KEY is not set; all call requests will fail")
	}
	if missing := registry.Unconfigured(); len(missing) > 0 {
		log.Warn().Strs("agent_types", missing).Msg("agent types without an agent id")
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

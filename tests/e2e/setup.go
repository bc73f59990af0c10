//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"entry-registry/cmd/bootstrap"
	"entry-registry/cmd/bootstrap/components"
	"entry-registry/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the full application graph in-process.
// The registry lives in memory, so every app starts empty.
// Returns router, config, and fx.App for lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App, error) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.CacheModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start fx app: %w", err)
	}
	if router == nil {
		return nil, nil, fmt.Errorf("router was not populated")
	}
	return router, app, nil
}

func setupE2EEnvironment(t *testing.T, cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	// Same global decoder setting as cmd/main.go init.
	gin.EnableJsonDecoderDisallowUnknownFields()

	router, app, err := buildE2EApp(cfg)
	require.NoError(t, err, "failed to build the application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router
}

// ------------------------------------------------------------
// Shared setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Config = config.NewTestConfig()
}

// SetupTest gives every test a fresh, empty registry.
func (s *SharedSuite) SetupTest() {
	s.Router = setupE2EEnvironment(s.T(), s.Config)
}

// SetupSubTest does the same for each s.Run.
func (s *SharedSuite) SetupSubTest() {
	s.Router = setupE2EEnvironment(s.T(), s.Config)
}

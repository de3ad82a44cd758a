package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avialab/aircatalog/api"
	"github.com/avialab/aircatalog/config"
	"github.com/avialab/aircatalog/internal/service/airlines"
	"github.com/avialab/aircatalog/pkg/logger"
	"github.com/avialab/aircatalog/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger, m *metrics.Metrics, airlineSvc airlines.AirlineUseCase) error {
	engine := newEngine(log, m, airlineSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("http server started", "address", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func newEngine(log logger.Logger, m *metrics.Metrics, airlineSvc airlines.AirlineUseCase) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(api.CorrelationID())
	engine.Use(api.RequestLogger(log, m))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	airlineHandler := api.NewAirlineHandler(airlineSvc)
	airlineHandler.Register(engine.Group("/api/v1/airlines"))

	return engine
}

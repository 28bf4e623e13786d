package gateway

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"github.com/jonanatree/bambora-sim/internal/fabricate"
	"github.com/jonanatree/bambora-sim/internal/middleware"
	"github.com/jonanatree/bambora-sim/internal/token"
)

// App is the main application: it wires the simulator core to its HTTP
// surface and is responsible for starting and stopping it.
type App struct {
	srv    *http.Server
	wg     *sync.WaitGroup
	Addr   string
	logger *slog.Logger
	config *Config
}

func NewApp(logger *slog.Logger, config *Config) *App {
	logger = logger.With(slog.String("app", "bambora-sim"))

	if config == nil {
		config = DefaultConfig()
	}

	return &App{
		wg:     &sync.WaitGroup{},
		logger: logger,
		config: config,
	}
}

func (a *App) Start() error {
	a.logger.Info("starting app...",
		slog.Bool("strict", a.config.Strict),
		slog.Bool("cache_enabled", !a.config.NoCache),
		slog.Int("store_capacity", a.config.StoreCapacity),
	)

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(a.logger))

	tokens := token.NewGenerator(time.Now())
	fab := fabricate.New(tokens, time.Now().UnixNano())
	simulator := NewService(tokens, fab, a.config.Policy(), a.config.StoreCapacity)

	api := NewAPI(simulator)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler: router,
	}

	a.wg.Add(1)
	go func() {
		a.logger.Info("http server started",
			slog.String("addr", a.Addr),
			slog.String("serial", tokens.Serial()),
		)

		if err := a.srv.Serve(l); err != nil {
			if err != http.ErrServerClosed {
				a.logger.Error("starting http server", "err", err)
			}

			a.logger.Info("http server stopped")
		}

		a.wg.Done()
	}()

	return nil
}

func (a *App) Shutdown() {
	a.logger.Info("shutting down app...")

	a.srv.Shutdown(context.Background())

	a.wg.Wait()

	a.logger.Info("app stopped")
}

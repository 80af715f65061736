package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ryabkov/cbrcourse/internal/core/handler"
	"github.com/ryabkov/cbrcourse/internal/core/logger"
	middlWre "github.com/ryabkov/cbrcourse/internal/core/middleware"
	"github.com/ryabkov/cbrcourse/internal/core/repository/cache"
	"github.com/ryabkov/cbrcourse/internal/core/repository/cbr"
	"github.com/ryabkov/cbrcourse/internal/core/usecase"
	"github.com/ryabkov/cbrcourse/pkg/config"
	"github.com/ryabkov/cbrcourse/pkg/redisdb"
	"github.com/ryabkov/cbrcourse/pkg/redisstore"
	"github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
)

type Server struct {
	router          *mux.Router
	log             logger.Logger
	httpServer      *http.Server
	addr            string
	currencyHandler *handler.CurrencyHandler
	courseHandler   *handler.CourseHandler
	redis           *redisdb.Database
}

func NewServer(log logger.Logger) (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	rdb, err := redisdb.NewRedisDB(cfg.Redis, log)
	if err != nil {
		return nil, err
	}

	store := redisstore.New(rdb.Client)

	// таймауты и ретраи - забота http-клиента, репозитории их не добавляют
	httpClient := &http.Client{Timeout: 10 * time.Second}

	cbrCurrencies := cbr.NewCurrencyRepository(httpClient, cfg.CBRBaseURL, log)
	cbrCourseRanges := cbr.NewCourseRangeRepository(httpClient, cfg.CBRBaseURL, log)

	cachedCurrencies, err := cache.NewCurrencyRepository(cbrCurrencies, store, cfg.CacheTTLSeconds)
	if err != nil {
		return nil, err
	}

	cachedCourseRanges, err := cache.NewCourseRangeRepository(cbrCourseRanges, cbrCourseRanges, store, cfg.CacheTTLSeconds)
	if err != nil {
		return nil, err
	}

	courseUsecase := usecase.NewCourseUsecase(cachedCurrencies, cachedCourseRanges, cachedCourseRanges, cfg.LookbackDays, log)

	server := &Server{
		log:             log,
		router:          mux.NewRouter(),
		addr:            cfg.ServerAddr,
		currencyHandler: handler.NewCurrencyHandler(courseUsecase, log),
		courseHandler:   handler.NewCourseHandler(courseUsecase, log),
		redis:           rdb,
	}

	server.router.Use(loggingMiddleware(server.log))

	mw := middleware.New(middleware.Config{
		Recorder: prometheus.NewRecorder(prometheus.Config{}),
	})

	server.router.Use(func(next http.Handler) http.Handler {
		return std.Handler("", mw, next)
	})

	server.RegisterRoutes()

	return server, nil
}

func (s *Server) Addr() string {
	return s.addr
}

func (s *Server) RegisterRoutes() {
	s.router.Use(
		middlWre.RequestID(),
		middlWre.Recovery(s.log),
	)
	s.courseHandler.RegisterRoutes(s.router)
	s.currencyHandler.RegisterRoutes(s.router)
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	s.router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)
}

func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       9 * time.Second,
		WriteTimeout:      12 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 60 * time.Second,
	}

	s.httpServer = srv

	return srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	var shutdownErr error

	go func() {
		if s.httpServer != nil {
			err := s.httpServer.Shutdown(ctx)
			if err != nil {
				s.log.Error("failed to shutdown HTTP server", logger.ErrorField("error", err))
				shutdownErr = fmt.Errorf("HTTP server shutdown error: %w", err)
			}
		}

		if s.redis != nil {
			err := s.redis.Close()
			if err != nil {
				s.log.Error("failed to close redis connection", logger.ErrorField("error", err))
				shutdownErr = fmt.Errorf("redis shutdown error: %w", err)
			}
		}

		close(done)
	}()

	select {
	case <-done:
		return shutdownErr
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

func loggingMiddleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Info("HTTP request",
				logger.StringField("method", r.Method),
				logger.StringField("path", r.URL.Path),
				logger.StringField("remote_addr", r.RemoteAddr),
				logger.StringField("user_agent", r.UserAgent()),
			)
			next.ServeHTTP(w, r)
		})
	}
}

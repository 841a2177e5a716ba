package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitguide/internal/assets"
	"github.com/2beens/fitguide/internal/cache"
	"github.com/2beens/fitguide/internal/catalog"
	"github.com/2beens/fitguide/internal/config"
	"github.com/2beens/fitguide/internal/guide"
	"github.com/2beens/fitguide/internal/middleware"
	"github.com/2beens/fitguide/internal/telemetry/metrics"
	"github.com/2beens/fitguide/internal/telemetry/tracing"
	"github.com/2beens/fitguide/internal/views"
	"github.com/2beens/fitguide/pkg"
)

const serviceName = "fitguide"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config    *config.Config
	catalog   *catalog.Catalog
	renderer  *views.Renderer
	images    guide.ImageStore // nil -> placeholders only
	pageCache *cache.PageCache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	HoneycombTracingEnabled bool
}

func NewServer(params NewServerParams) (*Server, error) {
	cfg := params.Config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	workoutCatalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Infof("catalog ready: %d days, %d exercises", len(workoutCatalog.Days()), workoutCatalog.ExercisesCount())

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	pageCache := cache.NewPageCache(cfg.PageCacheSizeMB)
	pageCacheCollector := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: serviceName,
		Subsystem: "main",
		Name:      "page_cache_entries",
		Help:      "Number of rendered pages currently held in the page cache",
	}, func() float64 {
		return float64(pageCache.EntryCount())
	})

	promRegistry := metrics.SetupPrometheus(pageCacheCollector)
	metricsManager := metrics.NewManager(serviceName, "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:    cfg,
		catalog:   workoutCatalog,
		renderer:  renderer,
		pageCache: pageCache,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	images, err := openImageStore(cfg.ImagesPath)
	if err != nil {
		otelShutdown()
		return nil, err
	}
	if images != nil {
		s.images = images
	}

	return s, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		log.Debugln("catalog path not set, using built-in catalog")
		return catalog.Default(), nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog [%s]: %w", path, err)
	}
	return c, nil
}

func openImageStore(path string) (*assets.DiskStore, error) {
	if path == "" {
		log.Warnln("images path not set, all images will be placeholders")
		return nil, nil
	}

	exists, err := pkg.PathExists(path, true)
	if err != nil {
		return nil, fmt.Errorf("check images dir: %w", err)
	}
	if !exists {
		log.Warnf("images dir [%s] does not exist, all images will be placeholders", path)
		return nil, nil
	}

	store, err := assets.NewDiskStore(path)
	if err != nil {
		return nil, fmt.Errorf("new disk store: %w", err)
	}
	log.Debugf("images dir [%s]: %d images", path, store.Count())
	return store, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	guideHandler := guide.NewHandler(
		s.catalog,
		s.renderer,
		s.images,
		s.pageCache,
		s.metricsManager,
	)
	guideHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "main-server"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.pageCache.Clear()
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

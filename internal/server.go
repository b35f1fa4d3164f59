package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/mdjurovic/liftcoach/internal/auth"
	"github.com/mdjurovic/liftcoach/internal/coach/feedback"
	"github.com/mdjurovic/liftcoach/internal/coach/handlers"
	"github.com/mdjurovic/liftcoach/internal/coach/history"
	"github.com/mdjurovic/liftcoach/internal/coach/library"
	"github.com/mdjurovic/liftcoach/internal/coach/records"
	"github.com/mdjurovic/liftcoach/internal/coach/report"
	"github.com/mdjurovic/liftcoach/internal/coach/volume"
	"github.com/mdjurovic/liftcoach/internal/config"
	"github.com/mdjurovic/liftcoach/internal/db"
	"github.com/mdjurovic/liftcoach/internal/middleware"
	"github.com/mdjurovic/liftcoach/internal/misc"
	"github.com/mdjurovic/liftcoach/internal/telemetry/metrics"
	"github.com/mdjurovic/liftcoach/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	deviceAppSecret   string // used by the companion logging app when posting sets
	versionInfo       string

	config  *config.Config
	dbPool  *pgxpool.Pool
	library *library.Library
	ledger  *records.Ledger

	workoutsRepo  *history.WorkoutsRepo
	readinessRepo *history.ReadinessRepo
	recordsRepo   *records.Repo
	orchestrator  *report.Orchestrator

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DeviceAppSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "liftcoach_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("coach", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "liftcoach-backend", rdb)
	if err != nil {
		return nil, err
	}

	exerciseLibrary := library.New()
	ledger := records.NewLedger()
	recordsRepo := records.NewRepo(dbPool)
	workoutsRepo := history.NewWorkoutsRepo(dbPool)
	readinessRepo := history.NewReadinessRepo(dbPool)

	// warm-start the ledger from the persisted snapshot; a cold ledger
	// still works, records just get rebuilt on the next rebuild call
	if snapshot, err := recordsRepo.LoadAll(ctx); err != nil {
		log.Errorf("failed to load records snapshot, starting with empty ledger: %s", err)
	} else {
		ledger.Load(snapshot)
		log.Debugf("records ledger warm start: %d records loaded", len(snapshot))
	}

	var reportCache *report.Cache
	if params.Config.ReportCacheTTLMinutes > 0 {
		reportCache = report.NewCache(
			rdb,
			time.Duration(params.Config.ReportCacheTTLMinutes)*time.Minute,
		)
	}

	orchestrator := report.NewOrchestrator(report.NewOrchestratorParams{
		Workouts:       workoutsRepo,
		Readiness:      readinessRepo,
		Library:        exerciseLibrary,
		Ledger:         ledger,
		Aggregator:     feedback.NewAggregator(nil),
		VolumeAnalyzer: volume.NewAnalyzer(exerciseLibrary),
		Metrics:        metricsManager,
		Cache:          reportCache,
	})

	return &Server{
		config:          params.Config,
		dbPool:          dbPool,
		deviceAppSecret: params.DeviceAppSecret,
		versionInfo:     params.VersionInfo,

		library:       exerciseLibrary,
		ledger:        ledger,
		workoutsRepo:  workoutsRepo,
		readinessRepo: readinessRepo,
		recordsRepo:   recordsRepo,
		orchestrator:  orchestrator,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("liftcoach-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	coachHandler := handlers.NewHandler(handlers.NewHandlerParams{
		Workouts:  s.workoutsRepo,
		Readiness: s.readinessRepo,
		Ledger:    s.ledger,
		Snapshots: s.recordsRepo,
		Reports:   s.orchestrator,
		Metrics:   s.metricsManager,
	})
	r.HandleFunc("/coach/sets", coachHandler.HandleCompletedSet).Methods("POST", "OPTIONS").Name("new-set")
	r.HandleFunc("/coach/workouts", coachHandler.HandleNewWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/coach/readiness", coachHandler.HandleNewReadiness).Methods("POST", "OPTIONS").Name("new-readiness")
	r.HandleFunc("/coach/readiness", coachHandler.HandleLatestReadiness).Methods("GET", "OPTIONS").Name("latest-readiness")
	r.HandleFunc("/coach/report", coachHandler.HandleWeeklyReport).Methods("GET", "OPTIONS").Name("weekly-report")
	r.HandleFunc("/coach/status", coachHandler.HandleQuickStatus).Methods("GET", "OPTIONS").Name("quick-status")
	r.HandleFunc("/coach/records", coachHandler.HandleRecords).Methods("GET", "OPTIONS").Name("records")
	r.HandleFunc("/coach/records/rebuild", coachHandler.HandleRebuildRecords).Methods("POST", "OPTIONS").Name("rebuild-records")
	r.HandleFunc("/coach/records/{exercise}", coachHandler.HandleExerciseRecords).Methods("GET", "OPTIONS").Name("exercise-records")
	r.HandleFunc("/coach/exercises/{exercise}/history", coachHandler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.deviceAppSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
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

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
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/workoutmanager/internal/auth"
	"github.com/2beens/workoutmanager/internal/config"
	"github.com/2beens/workoutmanager/internal/db"
	"github.com/2beens/workoutmanager/internal/exercises"
	"github.com/2beens/workoutmanager/internal/gym"
	"github.com/2beens/workoutmanager/internal/middleware"
	"github.com/2beens/workoutmanager/internal/misc"
	"github.com/2beens/workoutmanager/internal/nutrition"
	nutritionmcp "github.com/2beens/workoutmanager/internal/nutrition/mcp"
	"github.com/2beens/workoutmanager/internal/nutrition/openfoodfacts"
	"github.com/2beens/workoutmanager/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/workoutmanager/internal/telemetry/metrics/middleware"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"
	"github.com/2beens/workoutmanager/internal/workout"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config       *config.Config
	dbPool       *pgxpool.Pool
	redisClient  *redis.Client
	usersRepo    *auth.UsersRepo
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	nutritionRepo    *nutrition.Repo
	nutritionService *nutrition.Service
	ingredients      *nutrition.CachedIngredients
	importer         *nutrition.Importer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
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
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Config.PostgresInitSchema {
		if err := db.ApplySchema(ctx, dbPool); err != nil {
			return nil, err
		}
		log.Debugln("db schema applied")
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("workoutmanager", "main", promRegistry)
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

	usersRepo := auth.NewUsersRepo(dbPool)
	authService := auth.NewAuthService(usersRepo, auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(8 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "workoutmanager-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   15 * time.Second,
	}

	nutritionRepo := nutrition.NewRepo(dbPool)
	cachedIngredients := nutrition.NewCachedIngredients(
		nutritionRepo,
		nutritionRepo,
		params.Config.IngredientCacheMB,
		nutrition.DefaultIngredientCacheTTL,
		metricsManager,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		usersRepo:    usersRepo,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb, usersRepo),

		nutritionRepo: nutritionRepo,
		nutritionService: nutrition.NewService(
			nutritionRepo,
			cachedIngredients,
			params.Config.IngredientLanguages,
			metricsManager,
		),
		ingredients: cachedIngredients,
		importer: nutrition.NewImporter(
			openfoodfacts.NewClient(params.Config.OpenFoodFactsURL, tracedHttpClient),
			nutritionRepo,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	nutritionHandler := nutrition.NewHandler(s.nutritionRepo, s.nutritionService, s.importer, s.ingredients)
	r.HandleFunc("/api/ingredient/search", nutritionHandler.HandleSearchIngredients).Methods("GET", "OPTIONS").Name("search-ingredients")
	r.HandleFunc("/api/ingredient/import/{barcode}", nutritionHandler.HandleImportBarcode).Methods("POST", "OPTIONS").Name("import-ingredient")
	r.HandleFunc("/api/ingredient/{id}", nutritionHandler.HandleGetIngredient).Methods("GET", "OPTIONS").Name("get-ingredient")
	r.HandleFunc("/api/ingredient/{id}/status", nutritionHandler.HandleSetIngredientStatus).Methods("PUT", "OPTIONS").Name("ingredient-status")
	r.HandleFunc("/api/ingredient/{id}/weightunit", nutritionHandler.HandleAddIngredientUnit).Methods("POST", "OPTIONS").Name("new-ingredient-unit")
	r.HandleFunc("/api/ingredient/{id}/values", nutritionHandler.HandleIngredientValues).Methods("GET", "OPTIONS").Name("ingredient-values")
	r.HandleFunc("/api/weightunit", nutritionHandler.HandleWeightUnits).Methods("GET", "OPTIONS").Name("weight-units")
	r.HandleFunc("/api/nutritionplan", nutritionHandler.HandleListPlans).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/api/nutritionplan", nutritionHandler.HandleAddPlan).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/api/nutritionplan/{id}", nutritionHandler.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/api/nutritionplan/{id}", nutritionHandler.HandleUpdatePlan).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/api/nutritionplan/{id}", nutritionHandler.HandleDeletePlan).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.HandleFunc("/api/nutritionplan/{id}/values", nutritionHandler.HandlePlanValues).Methods("GET", "OPTIONS").Name("plan-values")
	r.HandleFunc("/api/nutritionplan/{id}/meal", nutritionHandler.HandleAddMeal).Methods("POST", "OPTIONS").Name("new-meal")
	r.HandleFunc("/api/meal/{id}", nutritionHandler.HandleUpdateMeal).Methods("PUT", "OPTIONS").Name("update-meal")
	r.HandleFunc("/api/meal/{id}", nutritionHandler.HandleDeleteMeal).Methods("DELETE", "OPTIONS").Name("delete-meal")
	r.HandleFunc("/api/meal/{id}/values", nutritionHandler.HandleMealValues).Methods("GET", "OPTIONS").Name("meal-values")
	r.HandleFunc("/api/meal/{id}/item", nutritionHandler.HandleAddMealItem).Methods("POST", "OPTIONS").Name("new-meal-item")
	r.HandleFunc("/api/mealitem/{id}", nutritionHandler.HandleUpdateMealItem).Methods("PUT", "OPTIONS").Name("update-meal-item")
	r.HandleFunc("/api/mealitem/{id}", nutritionHandler.HandleDeleteMealItem).Methods("DELETE", "OPTIONS").Name("delete-meal-item")
	r.HandleFunc("/api/mealitem/{id}/values", nutritionHandler.HandleMealItemValues).Methods("GET", "OPTIONS").Name("meal-item-values")

	gymHandler := gym.NewHandler(gym.NewRepo(s.dbPool), s.usersRepo)
	r.HandleFunc("/gym", gymHandler.HandleList).Methods("GET", "OPTIONS").Name("list-gyms")
	r.HandleFunc("/gym", gymHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-gym")
	r.HandleFunc("/gym/{id}", gymHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-gym")
	r.HandleFunc("/gym/{id}", gymHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-gym")
	r.HandleFunc("/gym/{id}/members", gymHandler.HandleMembers).Methods("GET", "OPTIONS").Name("gym-members")
	r.HandleFunc("/gym/{id}/members", gymHandler.HandleAddMember).Methods("POST", "OPTIONS").Name("new-gym-member")

	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool))
	r.HandleFunc("/exercises", exercisesHandler.HandleOverview).Methods("GET", "OPTIONS").Name("exercises-overview")
	r.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/muscles", exercisesHandler.HandleMuscles).Methods("GET", "OPTIONS").Name("muscles")
	r.HandleFunc("/exercises/category", exercisesHandler.HandleAddCategory).Methods("POST", "OPTIONS").Name("new-category")
	r.HandleFunc("/exercises/category/{id:[0-9]+}", exercisesHandler.HandleUpdateCategory).Methods("PUT", "OPTIONS").Name("update-category")
	r.HandleFunc("/exercises/category/{id:[0-9]+}", exercisesHandler.HandleDeleteCategory).Methods("DELETE", "OPTIONS").Name("delete-category")
	r.HandleFunc("/exercises/{id:[0-9]+}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/exercises/{id:[0-9]+}/comments", exercisesHandler.HandleAddComment).Methods("POST", "OPTIONS").Name("new-exercise-comment")

	workoutRepo := workout.NewRepo(s.dbPool)
	workoutHandler := workout.NewHandler(workoutRepo, workout.NewAnalyzer(workoutRepo))
	// log routes go first, otherwise /workout/{id} would take them
	r.HandleFunc("/workout/log", workoutHandler.HandleAddLog).Methods("POST", "OPTIONS").Name("new-workout-log")
	r.HandleFunc("/workout/log/exercise/{id}/history", workoutHandler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")
	r.HandleFunc("/workout", workoutHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workout", workoutHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workout/{id}", workoutHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workout/{id}", workoutHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workout/{id}/day", workoutHandler.HandleAddDay).Methods("POST", "OPTIONS").Name("new-workout-day")
	r.HandleFunc("/workout/{id}/day/{dayId}", workoutHandler.HandleUpdateDay).Methods("PUT", "OPTIONS").Name("update-workout-day")
	r.HandleFunc("/workout/{id}/day/{dayId}", workoutHandler.HandleDeleteDay).Methods("DELETE", "OPTIONS").Name("delete-workout-day")
	r.HandleFunc("/workout/{id}/day/{dayId}/set", workoutHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("new-workout-set")
	r.HandleFunc("/workout/{id}/day/{dayId}/set/{setId}", workoutHandler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-workout-set")
	r.HandleFunc("/workout/{id}/set/{setId}/setting", workoutHandler.HandleAddSetting).Methods("POST", "OPTIONS").Name("new-workout-setting")
	r.HandleFunc("/workout/{id}/set/{setId}/setting/{settingId}", workoutHandler.HandleDeleteSetting).Methods("DELETE", "OPTIONS").Name("delete-workout-setting")

	// same nutrition tools as cmd/nutrition_mcp, over streamable http;
	// one server per session, bound to the user who opened it
	mcpSchemaRepo := nutritionmcp.NewPoolSchemaRepo(s.dbPool)
	mcpHandler := mcpsdk.NewStreamableHTTPHandler(func(r *http.Request) *mcpsdk.Server {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			return nil
		}
		return nutritionmcp.NewServer(mcpSchemaRepo, s.nutritionService, &nutritionmcp.PlanAccess{
			Owners: s.nutritionRepo,
			UserID: user.ID,
		})
	}, nil)
	r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
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
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
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

package main

import (
	"alcyxob/weekly-plans/internal/api"
	"alcyxob/weekly-plans/internal/auth"
	"alcyxob/weekly-plans/internal/calendar"
	"alcyxob/weekly-plans/internal/config"
	"alcyxob/weekly-plans/internal/logging"
	"alcyxob/weekly-plans/internal/metrics"
	"alcyxob/weekly-plans/internal/progress"
	"alcyxob/weekly-plans/internal/repository"
	"alcyxob/weekly-plans/internal/repository/memory"
	"alcyxob/weekly-plans/internal/repository/mongo"
	"alcyxob/weekly-plans/internal/service"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// @title Weekly Plans API
// @version 1.0
// @description Trainers publish weekly training plans; students follow them and mark days done.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	configPath := flag.String("config", ".", "directory holding config.yaml")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugln("no .env file found, using system env")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logCloser := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	if logCloser != nil {
		defer logCloser.Close()
	}
	log.Infoln("starting weekly plans server ...")

	cal, err := calendar.Load(cfg.Calendar.Timezone)
	if err != nil {
		log.Fatalf("calendar timezone %q: %v", cfg.Calendar.Timezone, err)
	}

	tokens, err := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.Expiration)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, reg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore := openStore(ctx, cfg.Database)
	defer closeStore()
	store = repository.Instrument(repository.Guard(store), metricsManager)

	clock := calendar.SystemClock
	engine := progress.NewEngine(store, clock, cal, metricsManager)
	planService := service.NewPlanService(store, engine, clock, cal, metricsManager)
	studentService := service.NewStudentService(store, engine)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, tokens, planService, studentService, metricsManager, reg)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSig := <-quit
	log.Infof("signal [%s] received, shutting down ...", receivedSig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	log.Infoln("server exiting")
}

// openStore connects the configured plan store. The returned func releases it.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (repository.Store, func()) {
	if cfg.Driver == config.DriverMemory {
		log.Warnln("using the in-memory plan store, data is lost on restart")
		return memory.NewStore(), func() {}
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	client, err := mongo.ConnectDB(connectCtx, cfg.URI)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %v", err)
	}
	db := client.Database(cfg.Name)
	log.Infof("connected to MongoDB database %s", cfg.Name)

	go func() {
		indexCtx, indexCancel := context.WithTimeout(ctx, time.Minute)
		defer indexCancel()
		mongo.EnsurePlanIndexes(indexCtx, db)
		log.Debugln("index creation completed")
	}()

	return mongo.NewMongoPlanRepository(db), func() {
		log.Infoln("disconnecting MongoDB ...")
		if err := mongo.DisconnectDB(client); err != nil {
			log.Errorf("failed to disconnect MongoDB: %v", err)
		}
	}
}

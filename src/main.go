package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "SSAAM-Backend/docs"
	"SSAAM-Backend/src/config"
	"SSAAM-Backend/src/controllers"
	"SSAAM-Backend/src/database"
	"SSAAM-Backend/src/jobs"
	"SSAAM-Backend/src/logger"
	"SSAAM-Backend/src/middleware"
	"SSAAM-Backend/src/routes"
	"SSAAM-Backend/src/seeder"
	"SSAAM-Backend/src/services/masters"
	"SSAAM-Backend/src/services/settings"
	"SSAAM-Backend/src/services/students"
	"SSAAM-Backend/src/utils"

	"github.com/rs/zerolog"
)

type stores struct {
	students students.Store
	masters  masters.Store
	settings settings.Store
	ping     controllers.PingFunc
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to the database")
	}

	// Redis เป็น optional: ถ้าไม่มีจะใช้ ledger ในหน่วยความจำและไม่ส่งอีเมล
	var (
		ledger   middleware.Ledger
		notifier students.Notifier
	)
	if cfg.RedisURI != "" {
		if err := database.InitRedis(ctx, cfg.RedisURI); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, using in-memory registration ledger")
		}
	}
	if database.RedisClient != nil {
		ledger = middleware.NewRedisLedger(database.RedisClient, cfg.RegistrationCooldown)
		if database.InitAsynq() {
			notifier = jobs.NewAsynqNotifier(database.AsynqClient)
			defer database.AsynqClient.Close()
		}
	} else {
		mem := middleware.NewMemoryLedger(cfg.RegistrationCooldown)
		go mem.Run(ctx)
		ledger = mem
	}

	issuer := utils.NewTokenIssuer(cfg.MasterSigningKey, cfg.JWTExpiry)
	codec := utils.NewTimestampCodec(cfg.CryptoKey)

	studentSvc := students.NewService(st.students, notifier, students.Rules{
		CohortMin: cfg.CohortMin,
		CohortMax: cfg.CohortMax,
	}, log)
	masterSvc := masters.NewService(st.masters, issuer, cfg.BcryptCost, log)
	settingsSvc := settings.NewService(st.settings, log)

	if err := seeder.SeedMaster(ctx, masterSvc, cfg.SeedMasterUsername, cfg.SeedMasterPassword, log); err != nil {
		log.Error().Err(err).Msg("seed admin account")
	}

	app := routes.NewApp(log, cfg.AllowedOrigins)
	routes.InitRoutes(app, routes.Handlers{
		Students: controllers.NewStudentController(studentSvc, settingsSvc, log),
		Masters:  controllers.NewMasterController(masterSvc),
		Settings: controllers.NewSettingsController(settingsSvc),
		Health:   controllers.NewHealthController(st.ping),
	}, routes.Gates{
		StudentKey: middleware.StudentKeyAuth(cfg.StudentAPIKey),
		Master:     middleware.MasterAuth(issuer),
		AntiBot:    middleware.AntiBot(),
		RateLimit:  middleware.NewRegistrationLimiter(ledger, log).Handler(),
		Timestamp:  middleware.TimestampAuth(codec, cfg.TimestampMaxAge),
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("port", cfg.AppURI).Str("store", cfg.StoreDriver).Msg("Server is running")
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if database.RedisClient != nil {
		_ = database.RedisClient.Close()
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("disconnect mongodb")
	}
}

// openStores picks MongoDB or the in-memory stores from STORE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	if cfg.UseMemoryStore() {
		log.Warn().Msg("STORE_DRIVER=memory, data is lost on restart")
		return &stores{
			students: students.NewMemoryStore(),
			masters:  masters.NewMemoryStore(),
			settings: settings.NewMemoryStore(),
			ping:     func(context.Context) error { return nil },
		}, nil
	}

	if err := database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDB); err != nil {
		return nil, err
	}
	if err := database.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("db", cfg.MongoDB).Msg("Connected to MongoDB")

	return &stores{
		students: students.NewMongoStore(database.StudentCollection),
		masters:  masters.NewMongoStore(database.MasterCollection),
		settings: settings.NewMongoStore(database.SettingsCollection),
		ping:     database.Ping,
	}, nil
}

package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hospital_records/internal/handlers"
	"hospital_records/internal/logger"
	"hospital_records/internal/repository"
	"hospital_records/internal/repository/db"
	"hospital_records/internal/server"
	"hospital_records/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// @title        Hospital Records API
// @version      1.0
// @description  Doctor and patient records for the operator dashboard.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

const envPrefix = "HOSPITAL"

func main() {
	// .env is optional; real environment variables win
	envErr := godotenv.Load()

	cfgErr := loadConfig()

	// init logger
	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.format"))
	defer func() { _ = log.Sync() }()

	if envErr == nil {
		log.Infow("loaded .env file")
	}
	if cfgErr != nil {
		log.Infow("config file not loaded; using defaults and environment", "err", cfgErr)
	}

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: viper.GetString("auth.jwt_secret"),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	})

	if err := seedAdmin(services, log); err != nil {
		log.Fatalw("failed to provision seed user", "err", err)
	}

	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		AuthRequired:   viper.GetBool("auth.required"),
		AllowedOrigins: viper.GetStringSlice("cors.allowed_origins"),
	})

	// start HTTP server
	srv := server.New(server.Config{
		ReadHeaderTimeout: viper.GetDuration("server.read_header_timeout"),
		WriteTimeout:      viper.GetDuration("server.write_timeout"),
		IdleTimeout:       viper.GetDuration("server.idle_timeout"),
	})
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, viper.GetDuration("server.shutdown_timeout"), log)
}

func setDefaults() {
	viper.SetDefault("port", "8000")
	viper.SetDefault("db.path", "hospital.db")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("log.format", logger.FormatConsole)
	viper.SetDefault("auth.required", true)
	viper.SetDefault("auth.jwt_secret", "change-me")
	viper.SetDefault("auth.token_ttl", time.Hour)
	viper.SetDefault("auth.seed_username", "admin")
	viper.SetDefault("auth.seed_password", "password123")
	viper.SetDefault("cors.allowed_origins", []string{})
	viper.SetDefault("server.read_header_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.idle_timeout", 60*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// loadConfig reads configs/config.yml over the defaults; HOSPITAL_DB_PATH and
// friends override both.
func loadConfig() error {
	setDefaults()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening sqlite", "path", dbPath)
	return db.InitDB(dbPath)
}

// seedAdmin makes sure the dashboard operator account exists.
func seedAdmin(services *service.Service, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	username := viper.GetString("auth.seed_username")
	created, err := services.EnsureSeedUser(ctx, username, viper.GetString("auth.seed_password"))
	if err != nil {
		return err
	}
	log.Infow("seed user checked", "username", username, "created", created)
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, timeout time.Duration, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

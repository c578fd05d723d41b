// FitFusion serves a JWT-secured CRUD API for users, exercises, workouts and
// the links between users and workouts.
//
// @title FitFusion API
// @version 1.0
// @description CRUD API for users, exercises, workouts and user-workout links, secured with JWT bearer tokens.
// @contact.name API Support
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/user/fitfusion-go/config"
	"github.com/user/fitfusion-go/db"
	_ "github.com/user/fitfusion-go/docs" // Generated Swagger docs
	"github.com/user/fitfusion-go/logging"
	"github.com/user/fitfusion-go/router"
)

func main() {
	app := &cli.App{
		Name:  "fitfusion",
		Usage: "fitness tracking API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Usage:   "load environment variables from `FILE` before reading config",
				Value:   ".env",
				EnvVars: []string{"FITFUSION_ENV_FILE"},
			},
		},
		Before: loadEnvFile,
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("fitfusion exited with an error")
	}
}

// loadEnvFile reads the .env file if there is one. A missing file is normal
// outside development.
func loadEnvFile(c *cli.Context) error {
	path := c.String("env-file")
	if err := godotenv.Load(path); err != nil {
		if c.IsSet("env-file") {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		logrus.WithField("path", path).Debug("no env file loaded")
	}
	return nil
}

func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.Log)
	return cfg, nil
}

func migrate(_ *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return db.RunMigrations(cfg.Database)
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := db.OpenStore(c.Context, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close store")
		}
	}()
	logrus.WithField("driver", cfg.Database.Driver).Info("store opened")

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.New(cfg, st),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		logrus.WithField("signal", sig.String()).Info("server shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logrus.Info("server stopped gracefully")
	return nil
}

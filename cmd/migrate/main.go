package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/reviewlens/review-sentiment-api/internal/config"
	"github.com/reviewlens/review-sentiment-api/internal/database"
	"github.com/reviewlens/review-sentiment-api/internal/migration"
	pkglogger "github.com/reviewlens/review-sentiment-api/pkg/logger"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "config file path (default configs/config.<APP_ENV>.yaml)")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	config.LoadDotEnv(env)

	path := *configPath
	if path == "" {
		path = fmt.Sprintf("configs/config.%s.yaml", env)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *verbose {
		cfg.Database.Verbose = true
	}

	pkglogger.InitStructured(pkglogger.Options{Env: cfg.Environment, Level: cfg.Log.Level})

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.Info("Schema is up to date (%s)", cfg.Database.Driver)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/reviewlens/review-sentiment-api/internal/config"
	"github.com/reviewlens/review-sentiment-api/internal/database"
	"github.com/reviewlens/review-sentiment-api/internal/migration"
	"github.com/reviewlens/review-sentiment-api/internal/repository"
	"github.com/reviewlens/review-sentiment-api/internal/service"
	"github.com/reviewlens/review-sentiment-api/pkg/datecodec"
	pkglogger "github.com/reviewlens/review-sentiment-api/pkg/logger"
)

// reanalyze classifies stored reviews that have no sentiment analysis yet
// (e.g. after the classifier was unavailable when they were submitted).
func main() {
	configPath := flag.String("config", "", "config file path (default configs/config.<APP_ENV>.yaml)")
	limit := flag.Int("limit", 100, "maximum number of reviews to process")
	dryRun := flag.Bool("dry-run", false, "list pending reviews without classifying them")
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

	pkglogger.InitStructured(pkglogger.Options{Env: cfg.Environment, Level: cfg.Log.Level})

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid timezone: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := repository.NewReviewRepository(db)

	if *dryRun {
		pending, err := repo.ListPendingAnalysis(ctx, *limit)
		if err != nil {
			log.Fatalf("Failed to list pending reviews: %v", err)
		}
		codec := datecodec.New(loc)
		for _, r := range pending {
			fmt.Printf("[dry-run] review %d (%s) by %s\n", r.ID, codec.FromEpoch(r.ReviewDate), r.CustomerName)
		}
		fmt.Printf("[dry-run] %d review(s) pending\n", len(pending))
		return
	}

	classifier, err := service.NewLLMClassifier(cfg.AI)
	if err != nil {
		log.Fatalf("Failed to create classifier: %v", err)
	}

	svc := service.NewReviewService(repo, classifier, datecodec.New(loc), service.PageConfig{
		DefaultSize: cfg.App.DefaultPageSize,
		MaxSize:     cfg.App.MaxPageSize,
	})

	ok, failed, err := svc.ReanalyzePending(ctx, *limit)
	if err != nil {
		log.Printf("Re-analysis interrupted: %v", err)
	}
	fmt.Printf("analyzed=%d failed=%d\n", ok, failed)
	if err != nil || failed > 0 {
		os.Exit(1)
	}
}

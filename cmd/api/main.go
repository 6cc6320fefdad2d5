package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zotoio/halt.sh/internal/archive"
	"github.com/zotoio/halt.sh/internal/config"
	"github.com/zotoio/halt.sh/internal/editorial"
	"github.com/zotoio/halt.sh/internal/handler"
	"github.com/zotoio/halt.sh/internal/store"
	"github.com/zotoio/halt.sh/pkg/cdn"
	"github.com/zotoio/halt.sh/pkg/llm"
	"github.com/zotoio/halt.sh/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	artifactStore, err := store.New(cfg.CacheDir)
	if err != nil {
		log.Fatalf("error opening cache dir: %v", err)
	}

	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey)

	var textClient llm.TextClient = openaiClient
	if cfg.LLMProvider == "anthropic" {
		textClient = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}

	newsClient := news.NewTheNewsAPIClient(cfg.NewsAPIKey, cfg.PageSize, cfg.PageCount, cfg.SingleRandom)

	generator := editorial.NewService(
		artifactStore,
		newsClient,
		news.NewPageFetcher(),
		textClient,
		openaiClient,
		editorial.Options{
			CacheEnabled: cfg.CacheEnabled,
			CategoryTTL:  cfg.CategoryTTL,
		},
	)

	cdnClient := cdn.New(cfg.CDNPurgeURL, cfg.CDNPurgeToken, cfg.PrewarmURL, cfg.SharedSecret)

	editorialHandler := handler.NewEditorialHandler(generator, artifactStore, cdnClient, cfg.SharedSecret, cfg.Frequency)
	archiveHandler := handler.NewArchiveHandler(archive.NewIndex(artifactStore), artifactStore)
	imageHandler := handler.NewImageHandler(artifactStore)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}
	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Shared-Secret"},
	}))

	r.GET("/editorials", editorialHandler.GetEditorials)
	r.GET("/archive", archiveHandler.GetArchive)
	r.GET("/cache/images/:image", imageHandler.GetImage)
	r.GET("/health", archiveHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

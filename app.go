package kitchensage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"kitchensage/mealplan"
	"kitchensage/recipe"
	"kitchensage/slack"
	"kitchensage/tools"
	"kitchensage/tools/storage"
)

// App bundles the catalog, the meal plan store and the tools serving them.
type App struct {
	Catalog    *recipe.MemoryCatalog
	Plans      *mealplan.Manager
	Registry   *tools.Registry
	Dispatcher *Dispatcher
}

// NewRecipeState picks the S3 object when a bucket is configured and the
// local file otherwise.
func NewRecipeState(ctx context.Context, cfg CatalogConfig) (storage.RecipeState, error) {
	if !cfg.UseS3() {
		slog.Info("SETUP: Reading recipes from file", "path", cfg.Path)
		return storage.NewFileRecipeState(cfg.Path), nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRetryMaxAttempts(5))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	slog.Info("SETUP: Reading recipes from S3", "bucket", cfg.S3Bucket, "key", cfg.S3Key)
	return storage.NewS3RecipeState(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Key), nil
}

// NewApp wires a meal plan store and the tool registry around catalog. When a
// Slack webhook is configured, share_shopping_list is registered as well.
func NewApp(catalog *recipe.MemoryCatalog, srv ServerConfig, logger ToolCallLogger, httpClient HTTPClient, opts ...tools.RegistryOption) (*App, error) {
	plans := mealplan.NewManager(catalog)

	if srv.SlackWebhookURL != "" {
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		opts = append(opts, tools.WithSlack(slack.NewClient(srv.SlackWebhookURL, httpClient), srv.SlackChannel))
		slog.Info("SETUP: Slack delivery enabled", "channel", srv.SlackChannel)
	}

	registry, err := tools.NewRegistry(catalog, plans, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool registry: %w", err)
	}

	return &App{
		Catalog:    catalog,
		Plans:      plans,
		Registry:   registry,
		Dispatcher: NewDispatcher(registry, logger),
	}, nil
}

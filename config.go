package kitchensage

// CatalogConfig locates the recipe export. An S3 bucket takes precedence over
// the local path.
type CatalogConfig struct {
	Path     string `env:"CATALOG_PATH,default=artifacts/recipes.json"`
	S3Bucket string `env:"CATALOG_S3_BUCKET"`
	S3Key    string `env:"CATALOG_S3_KEY,default=recipes.json"`
}

// UseS3 reports whether the catalog should be read from S3.
func (c CatalogConfig) UseS3() bool {
	return c.S3Bucket != ""
}

// ServerConfig configures the MCP server and optional integrations.
// TOOL_LOG_PATH may be a file path, "auto" for a timestamped file under
// ./logs, or empty to disable the tool call log.
type ServerConfig struct {
	Name            string `env:"MCP_SERVER_NAME,default=kitchensage"`
	Version         string `env:"MCP_SERVER_VERSION,default=0.1.0"`
	ToolLogPath     string `env:"TOOL_LOG_PATH"`
	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL"`
	SlackChannel    string `env:"SLACK_CHANNEL,default=#groceries"`
}

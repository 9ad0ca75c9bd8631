package main

import (
	"context"
	"net/http"

	"kitchensage"
	"kitchensage/slack"
)

func postToSlack(ctx context.Context, cfg kitchensage.ServerConfig, message string) error {
	var client kitchensage.SlackClient = slack.NewClient(cfg.SlackWebhookURL, http.DefaultClient)
	return client.PostMessage(ctx, cfg.SlackChannel, message)
}

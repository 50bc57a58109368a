// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package dictionary is the typed client of the dictionary service.

It wires one HTTP transport into the tag, suggestion and permission domain
services:

	cfg, err := config.Load()
	if err != nil {
	    return err
	}

	client, err := dictionary.New(cfg, logger)
	if err != nil {
	    return err
	}

	industry, err := client.Tags.GetTagByID(ctx, tag.NewTagID("software", tag.Industry), true)

The client is stateless apart from its configuration and is safe for
concurrent use. Nothing is cached: every call reaches the service.
*/
package dictionary

import (
	"fmt"
	"log/slog"

	"github.com/taibuivan/dictionary/internal/platform/transport"
	"github.com/taibuivan/dictionary/pkg/config"
	"github.com/taibuivan/dictionary/pkg/dictionary/permission"
	"github.com/taibuivan/dictionary/pkg/dictionary/suggestion"
	"github.com/taibuivan/dictionary/pkg/dictionary/tag"
)

// Client groups the domain services of the dictionary service.
type Client struct {
	Tags        *tag.Service
	Suggestions *suggestion.Service
	Permissions *permission.Service
}

// New validates cfg and builds a [Client]. A nil logger uses slog.Default().
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "dictionary"))

	httpClient, err := transport.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}

	return &Client{
		Tags:        tag.NewService(tag.NewHTTPRepository(httpClient), logger),
		Suggestions: suggestion.NewService(suggestion.NewHTTPRepository(httpClient), logger),
		Permissions: permission.NewService(permission.NewHTTPRepository(httpClient), logger),
	}, nil
}

// NewFromEnv loads the configuration from the environment and builds a
// [Client].
func NewFromEnv(logger *slog.Logger) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	return New(cfg, logger)
}

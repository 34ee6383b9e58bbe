package deckgen

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	currencySymbol   string
	dateInputFormat  string
	dateOutputFormat string
	filenamePrefix   string
	catalog          *Catalog
	logger           *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		currencySymbol:   DefaultCurrencySymbol,
		dateInputFormat:  DefaultDateInputFormat,
		dateOutputFormat: DefaultDateOutputFormat,
		filenamePrefix:   DefaultFilenamePrefix,
		catalog:          nil,
		logger:           nil,
	}
}

// WithCurrencySymbol sets the symbol appended to currency values.
// Default: "€"
func WithCurrencySymbol(symbol string) Option {
	return func(c *engineConfig) {
		if symbol != "" {
			c.currencySymbol = symbol
		}
	}
}

// WithDateFormats sets the accepted input layout and the rendered
// output layout for date placeholders.
// Default: "2006-01-02" in, "02/01/2006" out
func WithDateFormats(input, output string) Option {
	return func(c *engineConfig) {
		if input != "" {
			c.dateInputFormat = input
		}
		if output != "" {
			c.dateOutputFormat = output
		}
	}
}

// WithFilenamePrefix sets the prefix of generated attachment filenames.
// Default: "SiliconCP_Proposal"
func WithFilenamePrefix(prefix string) Option {
	return func(c *engineConfig) {
		if prefix != "" {
			c.filenamePrefix = prefix
		}
	}
}

// WithCatalog replaces the built-in placeholder catalog.
// Default: DefaultCatalog()
func WithCatalog(catalog *Catalog) Option {
	return func(c *engineConfig) {
		c.catalog = catalog
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

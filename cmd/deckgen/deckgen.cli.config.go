package main

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cliConfig struct {
	HTTP struct {
		Addr string
	}
	Template struct {
		Path string
	}
	Catalog struct {
		Path string
	}
	CORS struct {
		Origins []string
	}
	Output struct {
		FilenamePrefix string
	}
	Log struct {
		Level string
		Dev   bool
	}
}

// loadConfig reads configuration from environment (DECKGEN_ prefix) and
// an optional deckgen.yaml in the working directory.
func loadConfig() (*cliConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(CfgEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName(CfgFileName)
	v.SetConfigType(CfgFileType)
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault(CfgKeyHTTPAddr, CfgDefaultAddr)
	v.SetDefault(CfgKeyLogLevel, CfgDefaultLogLvl)

	cfg := &cliConfig{}
	cfg.HTTP.Addr = v.GetString(CfgKeyHTTPAddr)
	cfg.Template.Path = v.GetString(CfgKeyTemplatePath)
	cfg.Catalog.Path = v.GetString(CfgKeyCatalogPath)
	cfg.CORS.Origins = v.GetStringSlice(CfgKeyCORSOrigins)
	cfg.Output.FilenamePrefix = v.GetString(CfgKeyFilenamePrefix)
	cfg.Log.Level = v.GetString(CfgKeyLogLevel)
	cfg.Log.Dev = v.GetBool(CfgKeyLogDev)

	return cfg, nil
}

// buildLogger constructs a zap logger from the log config. Production
// JSON output by default, console output with log.dev.
func buildLogger(cfg *cliConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.New(ErrMsgInvalidLogLevel + ": " + cfg.Log.Level)
	}

	var zapCfg zap.Config
	if cfg.Log.Dev {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

package main

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siliconcp/go-deckgen"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP render service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Template.Path == "" {
				return errors.New(ErrMsgTemplateRequired)
			}

			logger, err := buildLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			engine, tmpl, err := buildEngine(cfg, logger)
			if err != nil {
				return err
			}

			router := newRouter(routerDeps{
				Engine:   engine,
				Template: tmpl,
				Logger:   logger,
				Origins:  cfg.CORS.Origins,
			})

			logger.Info(LogMsgServerStarting,
				zap.String(LogFieldAddr, cfg.HTTP.Addr),
				zap.String(LogFieldTemplate, tmpl.Name()),
				zap.Int(LogFieldSlides, tmpl.SlideCount()))

			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}

// buildEngine assembles an engine from config and loads the template.
// The template is parsed once at startup so a corrupt file fails the
// process instead of the first request.
func buildEngine(cfg *cliConfig, logger *zap.Logger) (*deckgen.Engine, *deckgen.Template, error) {
	opts := []deckgen.Option{
		deckgen.WithLogger(logger),
		deckgen.WithFilenamePrefix(cfg.Output.FilenamePrefix),
	}

	if cfg.Catalog.Path != "" {
		catalog, err := deckgen.LoadCatalogFile(cfg.Catalog.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info(LogMsgCatalogFromFile, zap.String(LogFieldCatalog, cfg.Catalog.Path))
		opts = append(opts, deckgen.WithCatalog(catalog))
	}

	engine, err := deckgen.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	tmpl, err := engine.Load(cfg.Template.Path)
	if err != nil {
		return nil, nil, err
	}

	return engine, tmpl, nil
}

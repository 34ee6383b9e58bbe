package deckgen

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
)

// Engine renders proposal decks from a loaded template and a render
// request. An Engine holds no per-render state, so one instance is
// safe for concurrent use.
type Engine struct {
	config  *engineConfig
	catalog *Catalog
	tokens  []string
	logger  *zap.Logger
}

// New creates a new deckgen Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog := config.catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	logger.Debug(LogMsgEngineCreated, zap.Int(LogFieldPlaceholders, len(catalog.Placeholders)))

	return &Engine{
		config:  config,
		catalog: catalog,
		tokens:  tokenOrder(catalog),
		logger:  logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Catalog returns the engine's active placeholder catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Load reads a template file and parses it into a Template.
// The returned Template can be rendered any number of times.
func (e *Engine) Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewTemplateCorruptError(ErrMsgTemplateRead, "", err)
	}
	return e.load(data, path)
}

// LoadBytes parses a template already held in memory.
func (e *Engine) LoadBytes(data []byte) (*Template, error) {
	return e.load(data, "inline")
}

func (e *Engine) load(data []byte, name string) (*Template, error) {
	t, err := buildTemplate(data, name, e.logger)
	if err != nil {
		return nil, err
	}
	e.logger.Info(LogMsgTemplateLoaded,
		zap.String(LogFieldTemplate, t.Name()),
		zap.Int(LogFieldSlideCount, t.SlideCount()))
	return t, nil
}

// Render produces one deck. The request's values are resolved against
// the catalog, tagged slides are filtered by the request's toggles,
// placeholders are substituted, and the result is serialized in
// memory. Any failure aborts the render with no partial output.
func (e *Engine) Render(ctx context.Context, t *Template, req *RenderRequest) (*RenderResult, error) {
	if t == nil {
		return nil, NewRequestError(ErrMsgNilTemplate, nil)
	}
	if req == nil {
		return nil, NewRequestError(ErrMsgNilRequest, nil)
	}

	start := time.Now()
	e.logger.Debug(LogMsgRenderStart,
		zap.String(LogFieldTemplate, t.Name()),
		zap.Int(LogFieldSlideCount, t.SlideCount()))

	run := e.newRenderRun(t, req)
	result, err := run.run(ctx)
	if err != nil {
		e.logger.Error(LogMsgRenderFailed,
			zap.String(LogFieldState, run.state.String()),
			zap.Error(err))
		return nil, err
	}

	e.logger.Info(LogMsgDeckSerialized,
		zap.String(LogFieldTemplate, t.Name()),
		zap.Int(LogFieldSlideCount, result.SlideCount),
		zap.Int(LogFieldWarnings, len(result.Warnings)),
		zap.Int(LogFieldBytes, len(result.Document)),
		zap.Duration(LogFieldDuration, time.Since(start)))
	return result, nil
}

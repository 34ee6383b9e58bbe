package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/siliconcp/go-deckgen"
)

// routerDeps holds everything the API router needs.
type routerDeps struct {
	Engine   *deckgen.Engine
	Template *deckgen.Template
	Logger   *zap.Logger
	Origins  []string
}

// newRouter assembles the chi router with all middleware and routes.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(requestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(corsAllowlist(deps.Origins))

	r.Get(APIPathHealth, handleHealth(deps.Template))
	r.Get(APIPathTemplate, handleTemplate(deps.Template))
	r.Get(APIPathOpenAPI, handleOpenAPI)
	r.Post(APIPathRender, handleRender(deps))

	return r
}

// requestID assigns each request a uuid and echoes it as X-Request-Id.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one structured line per request with the status
// and duration.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info(LogMsgRequestHandled,
				zap.String(LogFieldMethod, r.Method),
				zap.String(LogFieldPath, r.URL.Path),
				zap.Int(LogFieldStatus, ww.Status()),
				zap.Duration(LogFieldDuration, time.Since(start)),
				zap.String(LogFieldRequestID, ww.Header().Get(HeaderRequestID)))
		})
	}
}

// corsAllowlist grants cross-origin access to the configured origins
// only. Preflight requests for allowed origins are answered directly.
func corsAllowlist(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		allowed[origin] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowed["*"] || allowed[origin]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				if r.Method == http.MethodOptions {
					w.Header().Set("Access-Control-Allow-Methods", CORSAllowMethods)
					w.Header().Set("Access-Control-Allow-Headers", CORSAllowHeaders)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type healthBody struct {
	Status string `json:"status"`
	Slides int    `json:"slides"`
}

type templateBody struct {
	Name       string              `json:"name"`
	SlideCount int                 `json:"slide_count"`
	Slides     []deckgen.SlideInfo `json:"slides"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// errorMessage renders the user-facing error text, appending the
// offending field when the error carries one.
func errorMessage(err error) string {
	if field, ok := deckgen.ErrorField(err); ok && field != "" {
		return err.Error() + ": " + field
	}
	return err.Error()
}

// errorStatus maps a render error to an HTTP status and error code.
// User-correctable problems are 400s, everything else is a 500.
func errorStatus(err error) (int, string) {
	switch {
	case deckgen.IsMissingFieldError(err):
		return http.StatusBadRequest, ErrCodeMissingField
	case deckgen.IsFormatError(err):
		return http.StatusBadRequest, ErrCodeFormat
	case deckgen.IsRequestError(err):
		return http.StatusBadRequest, ErrCodeRequest
	case deckgen.IsTemplateCorruptError(err):
		return http.StatusInternalServerError, ErrCodeTemplate
	default:
		return http.StatusInternalServerError, ErrCodeInternal
	}
}

func handleHealth(tmpl *deckgen.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthBody{Status: "ok", Slides: tmpl.SlideCount()})
	}
}

func handleTemplate(tmpl *deckgen.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, templateBody{
			Name:       tmpl.Name(),
			SlideCount: tmpl.SlideCount(),
			Slides:     tmpl.Slides(),
		})
	}
}

func handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(openAPIDocument()))
}

// handleRender renders a deck for the posted request. The document is
// built fully in memory before any byte reaches the response, so a
// failed render never leaks a partial file.
func handleRender(deps routerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrMsgBodyRead, ErrCodeRequest)
			return
		}

		req, err := deckgen.ParseRequest(body)
		if err != nil {
			deps.Logger.Warn(LogMsgRenderRejected, zap.String(LogFieldCode, ErrCodeRequest), zap.Error(err))
			writeError(w, http.StatusBadRequest, errorMessage(err), ErrCodeRequest)
			return
		}

		result, err := deps.Engine.Render(r.Context(), deps.Template, req)
		if err != nil {
			status, code := errorStatus(err)
			deps.Logger.Warn(LogMsgRenderRejected, zap.String(LogFieldCode, code), zap.Error(err))
			writeError(w, status, errorMessage(err), code)
			return
		}

		w.Header().Set(HeaderContentType, ContentTypePPTX)
		w.Header().Set(HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.Filename))
		if len(result.Warnings) > 0 {
			w.Header().Set(HeaderWarnings, strconv.Itoa(len(result.Warnings)))
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(result.Document)))
		_, _ = w.Write(result.Document)
	}
}

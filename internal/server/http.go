package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/toyz/fakegen/pkg/fakegen"
)

const shutdownTimeout = 5 * time.Second

// HTTPServer exposes the Service as a JSON API
type HTTPServer struct {
	svc    *Service
	logger *zap.Logger
	engine *echo.Echo
}

// MockResponse is the body of a successful POST /v1/mock
type MockResponse struct {
	Name    string               `json:"name"`
	Data    interface{}          `json:"data,omitempty"`
	Source  string               `json:"source,omitempty"`
	Target  string               `json:"target,omitempty"`
	Skipped []fakegen.Diagnostic `json:"skipped,omitempty"`
}

// ParseRequest is the body of POST /v1/parse
type ParseRequest struct {
	Interface string `json:"interface"`
}

// NewHTTPServer creates the API with its routes and middleware registered
func NewHTTPServer(svc *Service) *HTTPServer {
	h := &HTTPServer{
		svc:    svc,
		logger: svc.logger.Named("http"),
		engine: echo.New(),
	}

	h.engine.HideBanner = true
	h.engine.HidePort = true
	h.engine.HTTPErrorHandler = h.handleError

	h.engine.Use(middleware.Recover())
	h.engine.Use(middleware.BodyLimit("1M"))
	h.engine.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				h.logger.Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			h.logger.Info("request", fields...)
			return nil
		},
	}))

	h.engine.GET("/healthz", h.health)
	v1 := h.engine.Group("/v1")
	v1.POST("/mock", h.mock)
	v1.POST("/parse", h.parse)
	return h
}

// Handler returns the API as an http.Handler
func (h *HTTPServer) Handler() http.Handler {
	return h.engine
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully
func (h *HTTPServer) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("serving HTTP", zap.String("addr", addr))
		errCh <- h.engine.Start(addr)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	h.logger.Info("shutting down")
	return h.engine.Shutdown(shutdownCtx)
}

func (h *HTTPServer) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPServer) mock(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	res, target, err := h.svc.Generate(c.Request().Context(), req)
	if err != nil {
		return err
	}

	body := MockResponse{
		Name:    res.Definition.Name,
		Data:    res.Data,
		Source:  res.Source,
		Skipped: res.Definition.Diagnostics,
	}
	if res.Source != "" {
		body.Target = string(target)
	}
	return c.JSON(http.StatusOK, body)
}

func (h *HTTPServer) parse(c echo.Context) error {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	def, err := h.svc.Parse(c.Request().Context(), req.Interface)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, def)
}

func (h *HTTPServer) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he := newHTTPError(err)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.StatusCode)
	} else {
		err = c.JSON(he.StatusCode, he)
	}
	if err != nil {
		h.logger.Error("failed to write error response", zap.Error(err))
	}
}

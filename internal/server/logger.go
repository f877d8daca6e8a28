package server

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toyz/fakegen/internal/config"
	"github.com/toyz/fakegen/internal/errors"
)

// NewLogger builds the server logger. Logs always go to stderr since the MCP
// transport owns stdout.
func NewLogger(cfg config.ServerConfig) (*zap.Logger, error) {
	return newLogger(cfg, zapcore.Lock(os.Stderr))
}

func newLogger(cfg config.ServerConfig, sink zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.InvalidSetting("server.log_level", cfg.LogLevel, "debug", "info", "warn", "error")
		}
		level = parsed
	}

	var encoder zapcore.Encoder
	if cfg.LogJSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(encoder, sink, level)), nil
}

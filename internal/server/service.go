// Package server exposes mock generation as an MCP tool and as an HTTP API.
// Both surfaces delegate to one Service.
package server

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/toyz/fakegen/internal/config"
	"github.com/toyz/fakegen/internal/errors"
	"github.com/toyz/fakegen/internal/synth"
	"github.com/toyz/fakegen/internal/utils"
	"github.com/toyz/fakegen/pkg/fakegen"
)

// Version is reported to MCP clients
var Version = "1.0.0"

const (
	// maxCount bounds the records one request may ask for
	maxCount = 1000

	// cacheSize is the number of parsed definitions kept between requests
	cacheSize = 256
)

// GenerateRequest is one generation call from either surface
type GenerateRequest struct {
	Interface string `json:"interface"`
	Count     int    `json:"count,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Target    string `json:"target,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
}

// Service runs generation requests against a shared Synthesizer
type Service struct {
	cfg         config.Config
	synth       *synth.Synthesizer
	definitions *utils.Cache[string, *fakegen.InterfaceDefinition]
	logger      *zap.Logger
}

// NewService creates a service using cfg for request defaults
func NewService(cfg *config.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:         *cfg,
		synth:       synth.New(synth.WithSeed(cfg.Seed), synth.WithGoPackage(cfg.GoPackage)),
		definitions: utils.NewCache[string, *fakegen.InterfaceDefinition](cacheSize),
		logger:      logger,
	}
}

// Generate parses and synthesizes what req asks for
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*fakegen.Result, synth.Target, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	start := time.Now()

	if req.Count == 0 {
		req.Count = s.cfg.Count
	}
	if req.Count > maxCount {
		return nil, "", errors.InputError("count exceeds the limit of 1000",
			"Request at most 1000 records per call")
	}
	if req.Mode == "" {
		req.Mode = s.cfg.Mode
	}
	if req.Target == "" {
		req.Target = s.cfg.Target
	}

	target, err := synth.ParseTarget(req.Target)
	if err != nil {
		return nil, "", err
	}

	var data, source bool
	switch req.Mode {
	case config.ModeData:
		data = true
	case config.ModeSource:
		source = true
	case config.ModeBoth:
		data, source = true, true
	default:
		return nil, "", errors.InvalidSetting("mode", req.Mode, config.ModeData, config.ModeSource, config.ModeBoth)
	}

	if req.Interface == "" {
		return nil, "", errors.InputError("no definition given",
			"Pass a definition such as 'interface User { id: string }'")
	}
	def, err := s.parse(req.Interface)
	if err != nil {
		return nil, "", err
	}

	res, err := fakegen.GenerateFrom(s.synthesizer(req.Seed), def, fakegen.Request{
		Count:  req.Count,
		Data:   data,
		Source: source,
		Target: target,
	})
	if err != nil {
		s.logger.Warn("generation failed", zap.Error(err), zap.String("mode", req.Mode))
		return nil, "", err
	}

	s.logger.Info("generated mocks",
		zap.String("definition", res.Definition.Name),
		zap.Int("fields", len(res.Definition.Properties)),
		zap.Int("skipped", len(res.Definition.Diagnostics)),
		zap.Int("count", req.Count),
		zap.String("mode", req.Mode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, target, nil
}

// Parse returns the property tree of a definition
func (s *Service) Parse(ctx context.Context, text string) (*fakegen.InterfaceDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.parse(text)
}

// parse returns the cached definition for text, parsing it on first use.
// Parsed definitions are never mutated so they can be shared.
func (s *Service) parse(text string) (*fakegen.InterfaceDefinition, error) {
	def, err := s.definitions.GetOrCreate(text, func() (*fakegen.InterfaceDefinition, error) {
		return fakegen.Parse(text)
	})
	if err != nil {
		s.logger.Warn("parse failed", zap.Error(err))
		return nil, err
	}
	return def, nil
}

// CacheStats reports the parsed definition cache
func (s *Service) CacheStats() utils.CacheStats {
	return s.definitions.GetStats()
}

// synthesizer returns the shared Synthesizer, or a fresh one pinned to seed
func (s *Service) synthesizer(seed uint64) *synth.Synthesizer {
	if seed == 0 {
		return s.synth
	}
	return synth.New(synth.WithSeed(seed), synth.WithGoPackage(s.cfg.GoPackage))
}

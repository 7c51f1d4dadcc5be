package msisdn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Normalizer rewrites phone numbers for one country calling code.
type Normalizer struct {
	countryCode string
	strip       bool
	logger      *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStripNonDigits removes every character except digits and "+" before the
// rules run. Off by default.
func WithStripNonDigits() Option {
	return func(n *Normalizer) {
		n.strip = true
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.logger = l
		}
	}
}

// New creates a Normalizer for countryCode, given without "+", e.g. "27".
func New(countryCode string, opts ...Option) (*Normalizer, error) {
	if !validator.IsValidNumber(countryCode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCountryCode, countryCode)
	}

	n := &Normalizer{
		countryCode: countryCode,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger = n.logger.With(logger.Component("msisdn"))

	return n, nil
}

// NewFromConfig creates a Normalizer from cfg. Options are applied after the
// config, so WithStripNonDigits enables stripping even if cfg disables it.
func NewFromConfig(cfg Config, opts ...Option) (*Normalizer, error) {
	if cfg.StripNonDigits {
		opts = append([]Option{WithStripNonDigits()}, opts...)
	}
	return New(cfg.CountryCode, opts...)
}

// NewFromEnv loads Config with config.Load and creates a Normalizer from it.
// A load failure is logged through the logger given with WithLogger.
func NewFromEnv(opts ...Option) (*Normalizer, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		n := &Normalizer{logger: logger.Discard()}
		for _, opt := range opts {
			opt(n)
		}
		n.logger.Error("failed to load msisdn config", logger.Component("msisdn"), logger.Error(err))
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// CountryCode returns the configured country calling code.
func (n *Normalizer) CountryCode() string {
	return n.countryCode
}

// Normalize returns raw in "+<country><subscriber>" form where the rules of
// sanitizer.NormalizeMSISDN allow it.
func (n *Normalizer) Normalize(ctx context.Context, raw string) string {
	if n.strip {
		raw = sanitizer.StripMSISDN(raw)
	}

	rule := sanitizer.ClassifyMSISDN(raw, n.countryCode)
	normalized := sanitizer.NormalizeMSISDN(raw, n.countryCode)

	n.logger.DebugContext(ctx, "msisdn normalized",
		logger.Rule(string(rule)),
		logger.MSISDN(normalized),
	)

	return normalized
}

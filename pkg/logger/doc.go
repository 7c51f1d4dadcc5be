// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "signup"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "normalised phone", logger.MSISDN(raw), logger.Rule("national_prefix"))
//
// Attribute helpers return an empty slog.Attr for nil input, which slog drops,
// so callers can pass possibly-nil errors without checking.
package logger

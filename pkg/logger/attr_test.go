package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

func TestError(t *testing.T) {
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.Any().(error).Error())
}

func TestMSISDN(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{raw: "+27821234567", expected: "*********567"},
		{raw: "123", expected: "***"},
		{raw: "12", expected: "**"},
		{raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			attr := logger.MSISDN(tt.raw)
			assert.Equal(t, "msisdn", attr.Key)
			assert.Equal(t, tt.expected, attr.Value.String())
		})
	}
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, slog.String("component", "x"), logger.Component("x"))
	assert.Equal(t, slog.String("rule", "e164"), logger.Rule("e164"))
	assert.Equal(t, slog.String("lang", "uk"), logger.Lang("uk"))
}

package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

var firstWordInputs = []string{
	"Once there was a way to get back homeward",
	"O$ne Two",
	"O$1ne T2wo Th3ree",
	"   leading whitespace",
	"",
	strings.Repeat("a", 1000) + " tail",
}

func BenchmarkCleanFirstWord(b *testing.B) {
	for _, s := range firstWordInputs {
		b.Run(s[:min(20, len(s))], func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = sanitizer.CleanFirstWord(s)
			}
		})
	}
}

func BenchmarkToUpper(b *testing.B) {
	input := "hello world test string"
	b.ResetTimer()
	for b.Loop() {
		_ = sanitizer.ToUpper(input)
	}
}

func BenchmarkNormalizeMSISDN(b *testing.B) {
	inputs := []string{"0123", "0012345", "012345", "+12312345"}
	for _, raw := range inputs {
		b.Run(raw, func(b *testing.B) {
			for b.Loop() {
				_ = sanitizer.NormalizeMSISDN(raw, "123")
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	input := " (012) 345-6789 "
	normalize := func(s string) string { return sanitizer.NormalizeMSISDN(s, "27") }
	b.ResetTimer()
	for b.Loop() {
		_ = sanitizer.Apply(input, sanitizer.Trim, sanitizer.StripMSISDN, normalize)
	}
}

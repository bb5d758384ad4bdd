package pattern_test

import (
	"testing"

	"github.com/dmitrymomot/fakedata/pkg/pattern"
	"github.com/dmitrymomot/fakedata/pkg/rng"
)

func BenchmarkGenerate(b *testing.B) {
	s := rng.NewSeeded(42).Source()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = pattern.Generate(s, "ORD-####-????")
	}
}

func BenchmarkFromRegex(b *testing.B) {
	s := rng.NewSeeded(42).Source()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = pattern.FromRegex(s, `[a-z]{3,10}-[0-9]{4}\.(com|net|org)`)
	}
}

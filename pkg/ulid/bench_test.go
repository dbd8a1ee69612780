package ulid

import (
	"testing"

	"github.com/google/uuid"
	oklog "github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"
)

func BenchmarkGenerate(b *testing.B) {
	g := NewGenerator()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_FastEntropy(b *testing.B) {
	entropy, err := NewFastEntropy()
	if err != nil {
		b.Fatal(err)
	}
	g := NewGenerator(WithEntropy(entropy))
	b.ReportAllocs()
	for b.Loop() {
		if _, err := g.Generate(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateMonotonic(b *testing.B) {
	entropy, err := NewFastEntropy()
	if err != nil {
		b.Fatal(err)
	}
	g := NewGenerator(WithEntropy(entropy))
	prev, err := g.Generate()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for b.Loop() {
		next, err := g.GenerateMonotonic(prev)
		if err != nil {
			b.Fatal(err)
		}
		prev = next
	}
}

func BenchmarkMake(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Make()
	}
}

func BenchmarkString(b *testing.B) {
	u := MustParse(knownULID)
	b.ReportAllocs()
	for b.Loop() {
		_ = u.String()
	}
}

func BenchmarkAppendText(b *testing.B) {
	u := MustParse(knownULID)
	buf := make([]byte, 0, EncodedSize)
	b.ReportAllocs()
	for b.Loop() {
		buf, _ = u.AppendText(buf[:0])
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Parse(knownULID); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseStrict(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ParseStrict(knownULID); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIncrement(b *testing.B) {
	u := MustParse(knownULID)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = u.Increment()
	}
}

func BenchmarkGenerateString(b *testing.B) {
	entropy, err := NewFastEntropy()
	if err != nil {
		b.Fatal(err)
	}
	g := NewGenerator(WithEntropy(entropy))
	b.ReportAllocs()
	for b.Loop() {
		u, err := g.Generate()
		if err != nil {
			b.Fatal(err)
		}
		_ = u.String()
	}
}

func BenchmarkBytes(b *testing.B) {
	u := MustParse(knownULID)
	b.ReportAllocs()
	for b.Loop() {
		raw := u.Bytes(BigEndian)
		if _, err := FromBytes(raw[:], BigEndian); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID(b *testing.B) {
	u := MustParse(knownULID)
	b.ReportAllocs()
	for b.Loop() {
		_ = FromUUID(u.UUID())
	}
}

// Comparison points for the same operations in other identifier libraries.

func BenchmarkOklog_Make(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = oklog.Make()
	}
}

func BenchmarkOklog_String(b *testing.B) {
	u := oklog.MustParse(knownULID)
	b.ReportAllocs()
	for b.Loop() {
		_ = u.String()
	}
}

func BenchmarkOklog_Parse(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := oklog.Parse(knownULID); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKSUID_New(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = ksuid.New()
	}
}

func BenchmarkKSUID_String(b *testing.B) {
	id := ksuid.New()
	b.ReportAllocs()
	for b.Loop() {
		_ = id.String()
	}
}

func BenchmarkKSUID_Parse(b *testing.B) {
	s := ksuid.New().String()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ksuid.Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUIDv7_New(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := uuid.NewV7(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUIDv4_String(b *testing.B) {
	id := uuid.New()
	b.ReportAllocs()
	for b.Loop() {
		_ = id.String()
	}
}

func BenchmarkOklog_MakeString(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = oklog.Make().String()
	}
}

func BenchmarkKSUID_NewString(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = ksuid.New().String()
	}
}

func BenchmarkUUIDv7_NewString(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		id, err := uuid.NewV7()
		if err != nil {
			b.Fatal(err)
		}
		_ = id.String()
	}
}

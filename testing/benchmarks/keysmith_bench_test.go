package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/keysmith"
	"github.com/zoobzio/keysmith/json"
	keytest "github.com/zoobzio/keysmith/testing"
)

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = keysmith.Encode("Alice Smith")
	}
}

func BenchmarkDerive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = keysmith.Derive("Alice Smith")
	}
}

func BenchmarkDerive_LongName(b *testing.B) {
	name := "longer name with spaces 1234"
	for i := 0; i < b.N; i++ {
		_, _ = keysmith.Derive(name)
	}
}

func BenchmarkVerify(b *testing.B) {
	serial := keytest.KnownSerials["Alice Smith"]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = keysmith.Verify("Alice Smith", serial)
	}
}

func BenchmarkVerify_Malformed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = keysmith.Verify("Alice Smith", "BADFORMAT")
	}
}

func BenchmarkProcessor_Issue_NoTransformation(b *testing.B) {
	proc, _ := keysmith.NewProcessor[keytest.SimpleLicense](json.New())
	lic := &keytest.SimpleLicense{Name: "Alice Smith"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Issue(context.Background(), lic)
	}
}

func BenchmarkProcessor_Issue(b *testing.B) {
	proc := keytest.NewLicenseProcessor(b, json.New())
	lic := &keytest.License{Name: "Alice Smith", Email: "alice@example.com"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Issue(context.Background(), lic)
	}
}

func BenchmarkProcessor_Check(b *testing.B) {
	proc := keytest.NewLicenseProcessor(b, json.New())
	data, err := proc.Issue(context.Background(), &keytest.License{Name: "Alice Smith", Email: "alice@example.com"})
	if err != nil {
		b.Fatalf("Issue() error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Check(context.Background(), data)
	}
}

func BenchmarkProcessor_Store(b *testing.B) {
	proc := keytest.NewLicenseProcessor(b, json.New())
	lic := &keytest.License{
		Name:   "Alice Smith",
		Serial: keytest.KnownSerials["Alice Smith"],
		Token:  keysmith.Encode("Alice Smith"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Store(context.Background(), lic)
	}
}

func BenchmarkProcessor_Send(b *testing.B) {
	proc := keytest.NewLicenseProcessor(b, json.New())
	lic := &keytest.License{
		Name:   "Alice Smith",
		Email:  "alice@example.com",
		Serial: keytest.KnownSerials["Alice Smith"],
		Token:  keysmith.Encode("Alice Smith"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Send(context.Background(), lic)
	}
}

func BenchmarkProcessor_Check_Parallel(b *testing.B) {
	proc := keytest.NewLicenseProcessor(b, json.New())
	data, _ := proc.Issue(context.Background(), &keytest.License{Name: "Alice Smith"})

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = proc.Check(context.Background(), data)
		}
	})
}

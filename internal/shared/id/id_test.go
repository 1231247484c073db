package id

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateString(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateString()

	if len(id) != 26 {
		t.Errorf("ULID should be 26 characters, got %d", len(id))
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateWithPrefix(RequestPrefix)

	if !strings.HasPrefix(id, "req_") {
		t.Errorf("ID should start with 'req_', got: %s", id)
	}

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
	}

	if !IsValid(parts[1]) {
		t.Errorf("ULID part should be valid: %s", parts[1])
	}
}

func TestDeterministicEntropy(t *testing.T) {
	gen := NewGeneratorWithEntropy(bytes.NewReader(make([]byte, 10)))

	id := gen.GenerateString()
	if !strings.HasSuffix(id, "0000000000000000") {
		t.Errorf("Zero entropy should give a zero random component, got: %s", id)
	}
}

func TestNewRequestID(t *testing.T) {
	reqID := NewRequestID()

	if !strings.HasPrefix(reqID.String(), "req_") {
		t.Errorf("RequestID should start with 'req_', got: %s", reqID)
	}

	if _, ok := FromClient(reqID.String()); !ok {
		t.Errorf("Generated request ID should round-trip through FromClient: %s", reqID)
	}
}

func TestFromClient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RequestID
		ok    bool
	}{
		{name: "uuid", input: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", want: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", ok: true},
		{name: "uppercase uuid", input: "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", want: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", ok: true},
		{name: "prefixed ulid", input: "req_01ARZ3NDEKTSV4RRFFQ69G5FAV", want: "req_01ARZ3NDEKTSV4RRFFQ69G5FAV", ok: true},
		{name: "bare ulid", input: "01ARZ3NDEKTSV4RRFFQ69G5FAV", ok: false},
		{name: "empty", input: "  ", ok: false},
		{name: "garbage", input: "'; drop table", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromClient(tt.input)
			if ok != tt.ok {
				t.Fatalf("FromClient(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("FromClient(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	gen := NewGenerator()

	validID := gen.GenerateString()
	if !IsValid(validID) {
		t.Error("Generated ULID should be valid")
	}

	invalidIDs := []string{
		"",
		"invalid",
		"1234567890",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzz", // Invalid characters
	}

	for _, id := range invalidIDs {
		if IsValid(id) {
			t.Errorf("ID should be invalid: %s", id)
		}
	}
}

func TestTimestamp(t *testing.T) {
	before := time.Now()
	id := NewRequestID()
	after := time.Now()

	ts, err := Timestamp(id)
	if err != nil {
		t.Fatalf("Failed to extract timestamp: %v", err)
	}

	// ULID timestamps have millisecond precision
	if ts.UnixMilli() < before.UnixMilli() || ts.UnixMilli() > after.UnixMilli() {
		t.Errorf("Timestamp should be between %d and %d ms, got %d ms",
			before.UnixMilli(), after.UnixMilli(), ts.UnixMilli())
	}

	if _, err := Timestamp("6ba7b810-9dad-11d1-80b4-00c04fd430c8"); err == nil {
		t.Error("UUID request IDs carry no timestamp")
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()

	const goroutines = 50
	const idsPerGoroutine = 100

	var wg sync.WaitGroup
	idChan := make(chan string, goroutines*idsPerGoroutine)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < idsPerGoroutine; j++ {
				idChan <- gen.GenerateString()
			}
		}()
	}

	wg.Wait()
	close(idChan)

	seen := make(map[string]bool)
	for id := range idChan {
		if seen[id] {
			t.Errorf("Duplicate ID found in concurrent generation: %s", id)
		}
		seen[id] = true
	}

	if len(seen) != goroutines*idsPerGoroutine {
		t.Errorf("Expected %d unique IDs, got %d", goroutines*idsPerGoroutine, len(seen))
	}
}

func TestMonotonicOrdering(t *testing.T) {
	gen := NewGenerator()

	// Monotonic entropy keeps IDs sorted even within one millisecond
	prev := gen.GenerateString()
	for i := 0; i < 1000; i++ {
		next := gen.GenerateString()
		if next <= prev {
			t.Fatalf("IDs should be lexicographically sorted: %s should be > %s", next, prev)
		}
		prev = next
	}
}

func TestDefaultGenerator(t *testing.T) {
	gen1 := Default()
	gen2 := Default()

	if gen1 != gen2 {
		t.Error("Default() should return the same instance")
	}
}

func BenchmarkGenerateWithPrefix(b *testing.B) {
	gen := NewGenerator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.GenerateWithPrefix(RequestPrefix)
	}
}

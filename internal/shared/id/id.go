// Package id provides request ID generation for linea.
//
// Server-generated IDs are prefixed ULIDs (req_01H...), which sort by
// creation time and read well in logs. Clients may supply their own request
// ID as a UUID; anything else is replaced.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// RequestID identifies an API request
type RequestID string

// RequestPrefix marks server-generated request IDs
const RequestPrefix = "req"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	// Default generator with cryptographically secure entropy
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a ULID generator whose IDs increase monotonically
// within the same millisecond
func NewGenerator() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewGeneratorWithEntropy creates a generator with custom entropy source
// Useful for testing with deterministic entropy
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: entropy,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

func (id RequestID) String() string { return string(id) }

// FromClient accepts a client-supplied request ID. UUIDs are returned in
// canonical form and server-style prefixed ULIDs are returned unchanged;
// anything else is rejected.
func FromClient(candidate string) (RequestID, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", false
	}
	if u, err := uuid.Parse(candidate); err == nil {
		return RequestID(u.String()), true
	}
	if rest, ok := strings.CutPrefix(candidate, RequestPrefix+"_"); ok && IsValid(rest) {
		return RequestID(candidate), true
	}
	return "", false
}

// IsValid checks if an ID string is a valid ULID
func IsValid(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}

// Timestamp extracts the timestamp from a request ID generated here
func Timestamp(id RequestID) (time.Time, error) {
	raw := strings.TrimPrefix(string(id), RequestPrefix+"_")
	parsed, err := ulid.ParseStrict(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}

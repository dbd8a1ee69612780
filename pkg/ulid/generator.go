package ulid

import (
	"crypto/rand"
	"io"
	"log/slog"
	mrand "math/rand/v2"
	"sync"
	"time"

	"github.com/getmockd/ulidgen/pkg/logging"
)

// Generator produces ULIDs from a clock and a randomness source.
//
// A Generator is not safe for concurrent use. Give each goroutine its own,
// or serialize access. Monotonic modes take the previous ULID from the
// caller, so each ordered stream must serialize its own calls.
type Generator struct {
	entropy io.Reader
	now     func() time.Time
	logger  *slog.Logger
	buf     [EntropySize]byte
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy sets the randomness source. Defaults to crypto/rand.Reader.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// WithClock sets the wall clock. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger sets the logger used for clock regressions and refused
// strictly monotonic results. Defaults to logging.Nop().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: rand.Reader,
		now:     time.Now,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.entropy == nil {
		g.entropy = rand.Reader
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.logger == nil {
		g.logger = logging.Nop()
	}
	return g
}

// Generate returns a ULID for the current millisecond with fresh randomness.
func (g *Generator) Generate() (ULID, error) {
	ms, err := g.timestamp()
	if err != nil {
		return ULID{}, err
	}
	return g.fresh(ms)
}

// GenerateMonotonic returns a ULID greater than prev when called within the
// same millisecond as prev, by incrementing prev's randomness. If the clock
// has moved on it behaves like Generate.
//
// A clock that has moved backwards is not special-cased: the result is
// generated at the earlier timestamp and sorts before prev.
func (g *Generator) GenerateMonotonic(prev ULID) (ULID, error) {
	ms, err := g.timestamp()
	if err != nil {
		return ULID{}, err
	}

	last := prev.Timestamp()
	if ms == last {
		return prev.Increment()
	}
	if ms < last {
		g.logger.Debug("clock regressed",
			"previous_ms", last,
			"current_ms", ms,
		)
	}
	return g.fresh(ms)
}

// GenerateStrictlyMonotonic is like GenerateMonotonic but reports ok=false
// instead of returning a ULID that is not strictly greater than prev.
// Callers typically wait for the clock to pass prev and try again.
func (g *Generator) GenerateStrictlyMonotonic(prev ULID) (u ULID, ok bool, err error) {
	u, err = g.GenerateMonotonic(prev)
	if err != nil {
		return ULID{}, false, err
	}
	if u.Compare(prev) <= 0 {
		g.logger.Debug("refusing non-increasing ulid",
			"previous", prev,
			"candidate", u,
		)
		return ULID{}, false, nil
	}
	return u, true, nil
}

// timestamp reads the clock as milliseconds since the epoch. Instants
// before the epoch or past MaxTimestamp do not fit in 48 bits.
func (g *Generator) timestamp() (uint64, error) {
	ms := g.now().UnixMilli()
	if ms < 0 || uint64(ms) > MaxTimestamp {
		return 0, ErrTimestampOverflow
	}
	return uint64(ms), nil
}

func (g *Generator) fresh(ms uint64) (ULID, error) {
	if _, err := io.ReadFull(g.entropy, g.buf[:]); err != nil {
		return ULID{}, &GenerateRandomError{Err: err}
	}
	return Compose(ms, g.buf)
}

// NewFastEntropy returns a ChaCha8 stream seeded once from crypto/rand.
// It is faster than reading the OS source per ULID and is not safe for
// concurrent use.
func NewFastEntropy() (io.Reader, error) {
	var seed [32]byte
	if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
		return nil, &GenerateRandomError{Err: err}
	}
	return mrand.NewChaCha8(seed), nil
}

var (
	defaultMu  sync.Mutex
	defaultGen = NewGenerator()
)

// Make returns a new ULID from a package-level generator guarded by a
// mutex. It panics if the generator fails, which only happens when the OS
// randomness source is broken or the clock is outside the 48-bit range.
func Make() ULID {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	u, err := defaultGen.Generate()
	if err != nil {
		panic(err)
	}
	return u
}

package id

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/getmockd/ulidgen/pkg/logging"
	"github.com/getmockd/ulidgen/pkg/ulid"
)

// Mode selects how a Stream relates each ULID to the previous one.
type Mode int

const (
	// ModePlain draws fresh randomness for every ULID.
	ModePlain Mode = iota
	// ModeMonotonic increments the previous ULID within a millisecond.
	ModeMonotonic
	// ModeStrict is ModeMonotonic that never emits a ULID smaller than or
	// equal to the previous one, waiting for the clock instead.
	ModeStrict
)

const (
	// DefaultMaxWait bounds how long a Stream waits for the clock.
	DefaultMaxWait = time.Second

	// DefaultRandomRetries is how often a failed randomness read is retried.
	DefaultRandomRetries = 3

	pollInterval = time.Millisecond
)

var (
	// ErrWaitExceeded is returned when the clock did not pass the last
	// emitted ULID within MaxWait.
	ErrWaitExceeded = errors.New("id: clock did not advance within max wait")

	// ErrInvalidCount is returned by Batch for a negative count.
	ErrInvalidCount = errors.New("id: count must not be negative")
)

var modeNames = map[Mode]string{
	ModePlain:     "plain",
	ModeMonotonic: "monotonic",
	ModeStrict:    "strict",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "":
		return ModePlain, nil
	case "monotonic":
		return ModeMonotonic, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModePlain, fmt.Errorf("id: unknown mode %q (valid: plain, monotonic, strict)", s)
	}
}

// Config configures a Stream. Zero values select the defaults.
type Config struct {
	Mode          Mode
	MaxWait       time.Duration
	RandomRetries int
	Logger        *slog.Logger
}

// Stream hands out ULIDs from one generator and remembers the last one, so
// callers do not have to thread the previous value through themselves. It
// is safe for concurrent use.
type Stream struct {
	mu   sync.Mutex
	gen  *ulid.Generator
	last ulid.ULID

	mode          Mode
	maxWait       time.Duration
	randomRetries int
	logger        *slog.Logger
	sleep         func(time.Duration)
}

// NewStream creates a Stream that owns gen. gen must not be used elsewhere.
func NewStream(gen *ulid.Generator, cfg Config) *Stream {
	if gen == nil {
		gen = ulid.NewGenerator()
	}
	s := &Stream{
		gen:           gen,
		mode:          cfg.Mode,
		maxWait:       cfg.MaxWait,
		randomRetries: cfg.RandomRetries,
		logger:        cfg.Logger,
		sleep:         time.Sleep,
	}
	if s.maxWait <= 0 {
		s.maxWait = DefaultMaxWait
	}
	if s.randomRetries <= 0 {
		s.randomRetries = DefaultRandomRetries
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	return s
}

// Mode returns the stream's mode.
func (s *Stream) Mode() Mode {
	return s.mode
}

// Last returns the most recently emitted ULID, or ulid.Nil.
func (s *Stream) Last() ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Next returns the next ULID.
//
// In the monotonic modes an exhausted randomness field makes Next wait for
// the next millisecond, and in ModeStrict so does a clock that has moved
// backwards. Randomness failures are retried. A timestamp outside the 48-bit
// range is returned immediately.
func (s *Stream) Next() (ulid.ULID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next()
}

// Batch returns n ULIDs generated back to back under one lock.
func (s *Stream) Batch(n int) ([]ulid.ULID, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ulid.ULID, 0, n)
	for range n {
		u, err := s.next()
		if err != nil {
			return out, fmt.Errorf("id: batch item %d: %w", len(out), err)
		}
		out = append(out, u)
	}
	return out, nil
}

func (s *Stream) next() (ulid.ULID, error) {
	var waited time.Duration
	failures := 0
	for {
		u, ok, err := s.generate()
		switch {
		case err == nil && ok:
			s.last = u
			return u, nil
		case errors.Is(err, ulid.ErrGenerateRandom):
			failures++
			if failures > s.randomRetries {
				return ulid.Nil, err
			}
			s.logger.Warn("retrying ulid generation", "attempt", failures, "error", err)
		case err == nil, errors.Is(err, ulid.ErrRandomnessOverflow):
			if waited >= s.maxWait {
				return ulid.Nil, fmt.Errorf("%w (waited %s after %s)", ErrWaitExceeded, waited, s.last)
			}
			s.sleep(pollInterval)
			waited += pollInterval
		default:
			return ulid.Nil, err
		}
	}
}

func (s *Stream) generate() (ulid.ULID, bool, error) {
	switch s.mode {
	case ModeMonotonic:
		u, err := s.gen.GenerateMonotonic(s.last)
		return u, err == nil, err
	case ModeStrict:
		return s.gen.GenerateStrictlyMonotonic(s.last)
	default:
		u, err := s.gen.Generate()
		return u, err == nil, err
	}
}

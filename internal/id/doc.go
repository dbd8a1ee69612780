// Package id packages the caller side of monotonic ULID generation.
//
// A ulid.Generator takes the previously emitted ULID as an argument and
// leaves waiting and retrying to its caller. Stream holds that state behind
// a mutex:
//
//	s := id.NewStream(ulid.NewGenerator(), id.Config{Mode: id.ModeStrict})
//	u, err := s.Next()
//
// In ModeStrict a clock that moves backwards makes Next sleep in 1ms steps
// until the clock passes the last emitted ULID, bounded by Config.MaxWait.
package id

package testutil

import "errors"

// ErrSimulated is a sentinel error for error paths in tests.
var ErrSimulated = errors.New("simulated error for testing")

// Package lifecycle holds shared process-lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop work such as server shutdown and
// database pings.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations
// (server shutdown, database ping) driven by fx lifecycle hooks.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of a single component.
const DefaultTimeout = 15 * time.Second

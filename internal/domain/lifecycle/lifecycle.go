// Package lifecycle holds shared shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of the HTTP servers.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds process-wide start/stop settings shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, server shutdown,
// bucket close).
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds shared start/stop timing for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook and graceful shutdown.
const DefaultTimeout = 10 * time.Second

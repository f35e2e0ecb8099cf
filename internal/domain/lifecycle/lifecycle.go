// Package lifecycle holds shared timing constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second

// DrainTimeout bounds how long shutdown waits for detached background work.
const DrainTimeout = 30 * time.Second

// Package lifecycle holds timing limits shared by the lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart and OnStop hook.
const DefaultTimeout = 10 * time.Second

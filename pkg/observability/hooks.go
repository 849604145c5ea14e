// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation stays optional: the tick pipeline and the HTTP server emit
// events through small hook interfaces whose defaults do nothing. An
// application registers its own implementations once at startup.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so pkg/pipeline and the
// server never import a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetTickHooks(&myTickHooks{})
//	    observability.SetServerHooks(&myServerHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Ticks().OnCalculateStart(ctx, "textual", 12)
//	// ... compute ticks ...
//	observability.Ticks().OnCalculateComplete(ctx, "textual", 12, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Tick Hooks
// =============================================================================

// TickHooks receives events from tick computations.
type TickHooks interface {
	// OnCalculateStart records the start of one computation for an axis of
	// the given kind with the given number of categories.
	OnCalculateStart(ctx context.Context, kind string, categories int)

	// OnCalculateComplete records the end of a computation.
	OnCalculateComplete(ctx context.Context, kind string, categories int, duration time.Duration, err error)

	// OnExport records an export of computed ticks.
	OnExport(ctx context.Context, format string, size int)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the HTTP server.
type ServerHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, requestID, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, requestID, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopTickHooks is a no-op implementation of TickHooks.
type NoopTickHooks struct{}

func (NoopTickHooks) OnCalculateStart(context.Context, string, int) {}
func (NoopTickHooks) OnCalculateComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopTickHooks) OnExport(context.Context, string, int) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string, string) {}
func (NoopServerHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	tickHooks   TickHooks   = NoopTickHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetTickHooks registers custom tick hooks.
// This should be called once at application startup before any computation.
func SetTickHooks(h TickHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		tickHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup before serving.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Ticks returns the registered tick hooks.
func Ticks() TickHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return tickHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	tickHooks = NoopTickHooks{}
	serverHooks = NoopServerHooks{}
}

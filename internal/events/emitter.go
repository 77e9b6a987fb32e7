package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit publishes a settings event. It is a no-op until a real emitter is
// installed, so services can fire events unconditionally and headless tests
// stay silent.
var Emit = func(ctx context.Context, name string, evt SettingsEvent) {}

// EnableRuntimeEmitter routes events to the wails frontend and the runtime
// log. Called once from the app shell after the runtime context exists.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt SettingsEvent) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, evt)
	}
}

// SetCustomEmitter replaces the emitter, mainly for tests. Passing nil
// restores the no-op emitter.
func SetCustomEmitter(f func(ctx context.Context, name string, evt SettingsEvent)) {
	if f == nil {
		Emit = func(context.Context, string, SettingsEvent) {}
		return
	}
	Emit = f
}

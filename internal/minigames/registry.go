// Package minigames implements the playable stage engines behind the
// catalog's archetypes. Engines contain pure logic with no terminal
// dependencies; the platform maps input, runs the tick loop and renders.
// Each archetype registers a factory in an init() function, so the
// platform discovers engines through the catalog without hardcoded wiring.
package minigames

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pashakim/pasha-party/internal/core"
)

// Engine is the contract one stage implements. Reset parametrizes the
// stage, Step advances one fixed tick, Render draws into the screen
// buffer, and Finished reports the single StageResult once the stage ends.
type Engine interface {
	// Archetype returns the engine family name (e.g. "tap", "quiz").
	Archetype() string

	// Reset initializes the stage from its difficulty-adjusted parameters.
	Reset(p core.StageParams)

	// Step advances the simulation by one fixed tick with this tick's input.
	Step(in core.InputFrame)

	// Render draws the current stage state into the provided buffer.
	// The buffer is pre-cleared before this call.
	Render(dst *core.Screen)

	// Finished returns the stage outcome and true once the stage is over.
	// Before that it returns a zero result and false. The result is
	// produced exactly once per Reset and stable across repeated calls.
	Finished() (core.StageResult, bool)

	// Progress exposes live HUD numbers: current score and seconds left.
	Progress() (score int, secondsLeft float64)
}

// Factory creates a new engine instance.
type Factory func() Engine

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds an archetype factory. Called from init() functions.
// Panics on duplicate registration.
func Register(archetype string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[archetype]; exists {
		panic(fmt.Sprintf("minigames: archetype %q already registered", archetype))
	}
	factories[archetype] = f
}

// Create instantiates an engine for the given archetype.
func Create(archetype string) (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[archetype]
	if !ok {
		return nil, fmt.Errorf("minigames: unknown archetype %q", archetype)
	}
	return f(), nil
}

// Exists checks whether an archetype is registered.
func Exists(archetype string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[archetype]
	return ok
}

// List returns the registered archetype names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

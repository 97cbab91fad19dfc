package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LayerID uniquely identifies a toggleable drawing layer.
type LayerID string

// Layer IDs.
const (
	LayerRain     LayerID = "rain"
	LayerSymbols  LayerID = "symbols"
	LayerSnippets LayerID = "snippets"
	LayerLinks    LayerID = "links"
	LayerGlow     LayerID = "glow"
	LayerTrail    LayerID = "trail"
	LayerCursor   LayerID = "cursor"
)

// LayerDescriptor defines a layer that can be toggled.
type LayerDescriptor struct {
	ID       LayerID
	Name     string
	Key      int32  // Keyboard key to toggle (0 = no key)
	KeyLabel string // Key label for display
	Category string // "engine" or "host"
}

// LayerRegistry tracks which layers are drawn. Every layer starts enabled.
type LayerRegistry struct {
	descriptors []LayerDescriptor
	byID        map[LayerID]LayerDescriptor
	enabled     map[LayerID]bool
}

// NewLayerRegistry creates a registry with the default layers.
func NewLayerRegistry() *LayerRegistry {
	reg := &LayerRegistry{
		byID:    make(map[LayerID]LayerDescriptor),
		enabled: make(map[LayerID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *LayerRegistry) registerDefaults() {
	r.Register(LayerDescriptor{ID: LayerRain, Name: "Binary Rain", Key: rl.KeyOne, KeyLabel: "1", Category: "engine"})
	r.Register(LayerDescriptor{ID: LayerSymbols, Name: "Symbols", Key: rl.KeyTwo, KeyLabel: "2", Category: "engine"})
	r.Register(LayerDescriptor{ID: LayerSnippets, Name: "Snippets", Key: rl.KeyThree, KeyLabel: "3", Category: "engine"})
	r.Register(LayerDescriptor{ID: LayerLinks, Name: "Links", Key: rl.KeyFour, KeyLabel: "4", Category: "engine"})
	r.Register(LayerDescriptor{ID: LayerGlow, Name: "Pointer Glow", Key: rl.KeyFive, KeyLabel: "5", Category: "engine"})
	r.Register(LayerDescriptor{ID: LayerTrail, Name: "Trail Fade", Key: rl.KeySix, KeyLabel: "6", Category: "host"})
	r.Register(LayerDescriptor{ID: LayerCursor, Name: "Cursor", Key: rl.KeyC, KeyLabel: "C", Category: "host"})
}

// Register adds a layer to the registry, enabled.
func (r *LayerRegistry) Register(desc LayerDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = true
}

// Toggle switches a layer on/off and returns the new state.
func (r *LayerRegistry) Toggle(id LayerID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets a layer's state.
func (r *LayerRegistry) SetEnabled(id LayerID, enabled bool) {
	if _, ok := r.byID[id]; ok {
		r.enabled[id] = enabled
	}
}

// IsEnabled returns whether a layer is drawn.
func (r *LayerRegistry) IsEnabled(id LayerID) bool {
	return r.enabled[id]
}

// ByCategory returns layers filtered by category.
func (r *LayerRegistry) ByCategory(category string) []LayerDescriptor {
	var result []LayerDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *LayerRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeys toggles every layer whose key was pressed this frame.
func (r *LayerRegistry) HandleKeys() {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}

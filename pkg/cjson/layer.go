package cjson

import (
	"maps"
	"slices"
)

// Layer holds per-layer rendering and editing settings. Every array has one
// entry per layer.
type Layer struct {
	Enable   Enable   `json:"enable"   jsonschema:"required" jsonschema_description:"Enable flags for different render types for each layer."`
	Locked   []bool   `json:"locked"   jsonschema:"required" jsonschema_description:"List of locked layers (e.g., atoms in this layer should not change)"`
	Settings Settings `json:"settings" jsonschema:"required" jsonschema_description:"Settings for the render types."`
	Visible  []bool   `json:"visible"  jsonschema:"required" jsonschema_description:"List of visible layers (e.g., atoms in this layer should be visible / invisible)"`
}

// Count returns the number of layers.
func (l Layer) Count() int {
	return len(l.Visible)
}

// Enable flags each render type on or off, per layer.
type Enable struct {
	BallAndStick  []bool `json:"Ball and Stick,omitzero"`
	Cartoons      []bool `json:"Cartoons,omitzero"`
	CloseContacts []bool `json:"Close Contacts,omitzero"`
	Labels        []bool `json:"Labels,omitzero"`
	Licorice      []bool `json:"Licorice,omitzero"`
	VanDerWaals   []bool `json:"Van der Waals,omitzero"`
	Wireframe     []bool `json:"Wireframe,omitzero"`
}

// Styles returns the set render-type arrays keyed by wire name.
func (e Enable) Styles() map[string][]bool {
	out := map[string][]bool{}
	for name, v := range map[string][]bool{
		"Ball and Stick": e.BallAndStick,
		"Cartoons":       e.Cartoons,
		"Close Contacts": e.CloseContacts,
		"Labels":         e.Labels,
		"Licorice":       e.Licorice,
		"Van der Waals":  e.VanDerWaals,
		"Wireframe":      e.Wireframe,
	} {
		if v != nil {
			out[name] = v
		}
	}

	return out
}

// Settings holds serialized render-type settings, per layer.
type Settings struct {
	BallAndStick []string `json:"Ball and Stick,omitzero" jsonschema_description:"Settings for the Ball and Stick rendering type"`
	Cartoons     []string `json:"Cartoons,omitzero"`
	Wireframe    []string `json:"Wireframe,omitzero"`
}

// Styles returns the set render-type arrays keyed by wire name.
func (s Settings) Styles() map[string][]string {
	out := map[string][]string{}
	for name, v := range map[string][]string{
		"Ball and Stick": s.BallAndStick,
		"Cartoons":       s.Cartoons,
		"Wireframe":      s.Wireframe,
	} {
		if v != nil {
			out[name] = v
		}
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

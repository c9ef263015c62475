package render

import "github.com/ThomasCrouzet/nagmaps/internal/model"

// DefaultIconset is the NagVis iconset used when none is configured.
const DefaultIconset = "std_big"

// Renderer defines the interface for map generators.
type Renderer interface {
	GroupMap(group string, meta model.GroupMetadata) model.MapDocument
	Overview(targets []string, backend string) model.MapDocument
}

// GroupMap renders the map of a single host group with the default iconset.
func GroupMap(group string, meta model.GroupMetadata) model.MapDocument {
	return NewNagVis(DefaultIconset).GroupMap(group, meta)
}

// Overview renders the overview map with the default iconset.
func Overview(targets []string, backend string) model.MapDocument {
	return NewNagVis(DefaultIconset).Overview(targets, backend)
}

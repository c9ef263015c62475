package model

// PlaceholderLogo is the icon used when a group has no logo configured.
const PlaceholderLogo = "placeholder.png"

// GroupMetadata holds optional per-group display settings.
type GroupMetadata struct {
	Logo string `mapstructure:"logo" yaml:"logo"`
	URL  string `mapstructure:"url" yaml:"url"`
}

// MetadataFor returns the metadata configured for group with defaults
// filled in. A missing entry is valid.
func MetadataFor(groups map[string]GroupMetadata, group string) GroupMetadata {
	meta := groups[group]
	if meta.Logo == "" {
		meta.Logo = PlaceholderLogo
	}
	return meta
}

// MapDocument is a rendered NagVis map definition.
type MapDocument struct {
	Name    string
	Content string
}

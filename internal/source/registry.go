package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/ThomasCrouzet/nagmaps/internal/config"
)

// GroupSource returns the names of all host groups known to a backend.
type GroupSource interface {
	Groups(ctx context.Context) ([]string, error)
}

// RegisteredSource is a GroupSource that can be selected by name.
type RegisteredSource interface {
	GroupSource
	Metadata() SourceMetadata
	Configure(cfg *config.Config) error
	Validate() []ValidationError
}

// SourceMetadata describes a source for discovery and documentation.
type SourceMetadata struct {
	Name        string // value of the source config key, e.g. "livestatus"
	DisplayName string // human-readable, e.g. "MK Livestatus"
	Description string // one-line description
}

// ValidationError reports a config problem with a suggested fix.
type ValidationError struct {
	Field      string // config key, e.g. "livestatus_socket"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

var registry = map[string]func() RegisteredSource{}

// Register adds a source factory to the global registry.
// Each source calls this in its init().
func Register(name string, factory func() RegisteredSource) {
	registry[name] = factory
}

// Names returns the registered source names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns a fresh instance of the named source configured from cfg.
func New(name string, cfg *config.Config) (RegisteredSource, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown source %q (available: %v)", name, Names())
	}
	s := factory()
	if err := s.Configure(cfg); err != nil {
		return nil, &SourceError{Source: s.Metadata().DisplayName, Err: err}
	}
	return s, nil
}

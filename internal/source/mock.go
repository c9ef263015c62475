package source

import (
	"context"

	"github.com/ThomasCrouzet/nagmaps/internal/config"
)

func init() {
	Register("mock", func() RegisteredSource { return &MockSource{} })
}

// MockResponse is the Livestatus response served by MockSource.
const MockResponse = `[["cust-finance"], ["cust-catering"]]`

// MockSource serves a fixed list of host groups, for trying out filters
// and templates without a monitoring backend.
type MockSource struct{}

func (MockSource) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "mock",
		DisplayName: "Mock data",
		Description: "Serves two sample customer host groups",
	}
}

func (MockSource) Configure(*config.Config) error { return nil }

func (MockSource) Validate() []ValidationError { return nil }

func (MockSource) Groups(context.Context) ([]string, error) {
	return ParseGroups([]byte(MockResponse))
}

package source

import (
	"context"
	"fmt"
	"os"

	"github.com/ThomasCrouzet/nagmaps/internal/config"
)

func init() {
	Register("file", func() RegisteredSource { return &FileSource{} })
}

// FileSource reads a saved Livestatus hostgroups response, e.g. the output
// of `lq "GET hostgroups\nColumns: name\nOutputFormat: json"`.
type FileSource struct {
	Path string
}

func (fs *FileSource) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "file",
		DisplayName: "Livestatus JSON file",
		Description: "Reads host groups from a saved Livestatus JSON response",
	}
}

func (fs *FileSource) Configure(cfg *config.Config) error {
	fs.Path = cfg.SourceFile
	return nil
}

func (fs *FileSource) Validate() []ValidationError {
	if fs.Path == "" {
		return []ValidationError{{
			Field:      "source_file",
			Message:    "source_file is required for the file source",
			Suggestion: "set source_file to a JSON file like [[\"group-a\"], [\"group-b\"]]",
		}}
	}
	if _, err := os.Stat(fs.Path); err != nil {
		return []ValidationError{{
			Field:      "source_file",
			Message:    fmt.Sprintf("file not found: %s", fs.Path),
			Suggestion: "check the path",
		}}
	}
	return nil
}

func (fs *FileSource) Groups(context.Context) ([]string, error) {
	if fs.Path == "" {
		return nil, fmt.Errorf("source_file is not set")
	}
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return nil, err
	}
	return ParseGroups(data)
}

package source

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ParseGroups decodes a Livestatus JSON table with a single name column,
// e.g. [["cust-finance"], ["cust-catering"]], into a flat list.
func ParseGroups(data []byte) ([]string, error) {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing livestatus response: %w", err)
	}
	groups := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("parsing livestatus response: row %d is empty", i)
		}
		groups = append(groups, row[0])
	}
	return groups, nil
}

// DisplayName returns the human-readable name of s, or "source" for
// sources that are not registered.
func DisplayName(s GroupSource) string {
	if rs, ok := s.(RegisteredSource); ok {
		return rs.Metadata().DisplayName
	}
	return "source"
}

var errNoData = errors.New("no data")

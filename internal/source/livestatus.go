package source

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/ThomasCrouzet/nagmaps/internal/config"
)

func init() {
	Register("livestatus", func() RegisteredSource { return &LivestatusSource{} })
}

const (
	hostgroupsQuery = "GET hostgroups\nColumns: name\nOutputFormat: json\n"

	// maxResponseSize bounds how much of a Livestatus answer is read.
	maxResponseSize = 100_000_000

	defaultTimeout = 10 * time.Second
)

// LivestatusSource queries MK Livestatus for host group names.
// Address is a unix socket path, or tcp:host:port.
type LivestatusSource struct {
	Address string
	Timeout time.Duration
}

func (ls *LivestatusSource) Metadata() SourceMetadata {
	return SourceMetadata{
		Name:        "livestatus",
		DisplayName: "MK Livestatus",
		Description: "Queries host groups from Nagios, Icinga or Naemon via Livestatus",
	}
}

func (ls *LivestatusSource) Configure(cfg *config.Config) error {
	ls.Address = cfg.LivestatusSocket
	if ls.Timeout == 0 {
		ls.Timeout = defaultTimeout
	}
	return nil
}

func (ls *LivestatusSource) Validate() []ValidationError {
	if ls.Address == "" {
		return []ValidationError{{
			Field:      "livestatus_socket",
			Message:    "failed to detect Livestatus socket",
			Suggestion: "set livestatus_socket, or run inside an OMD site (OMD_ROOT)",
		}}
	}
	network, addr := ls.dialTarget()
	if network != "unix" {
		return nil
	}
	if _, err := os.Stat(addr); err != nil {
		return []ValidationError{{
			Field:      "livestatus_socket",
			Message:    fmt.Sprintf("socket not found: %s", addr),
			Suggestion: "check that the monitoring core is running with the Livestatus broker module",
		}}
	}
	return nil
}

func (ls *LivestatusSource) dialTarget() (network, addr string) {
	if rest, ok := strings.CutPrefix(ls.Address, "tcp:"); ok {
		return "tcp", rest
	}
	return "unix", ls.Address
}

// Groups sends a single hostgroups query and reads the answer until the
// server closes the connection.
func (ls *LivestatusSource) Groups(ctx context.Context) ([]string, error) {
	if ls.Address == "" {
		return nil, fmt.Errorf("failed to detect Livestatus socket")
	}
	data, err := ls.query(ctx, hostgroupsQuery)
	if err != nil {
		return nil, fmt.Errorf("fetching host groups from Livestatus: %w", err)
	}
	return ParseGroups(data)
}

func (ls *LivestatusSource) query(ctx context.Context, q string) ([]byte, error) {
	timeout := ls.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	network, addr := ls.dialTarget()
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	deadline := time.Now().Add(timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	if _, err := io.WriteString(conn, q); err != nil {
		return nil, err
	}
	// closing our side tells Livestatus the query is complete
	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		if err := cw.CloseWrite(); err != nil {
			return nil, err
		}
	}

	data, err := io.ReadAll(io.LimitReader(conn, maxResponseSize))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errNoData
	}
	return data, nil
}

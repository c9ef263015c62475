package detect

import (
	"os"
	"path/filepath"
)

// Well-known Livestatus socket locations of distribution packages.
var defaultSockets = []string{
	"/var/lib/nagios/rw/live",
	"/var/lib/icinga/rw/live",
}

// Result holds what was detected about the local monitoring site.
type Result struct {
	OMDRoot          string // $OMD_ROOT, empty outside an OMD site
	LivestatusSocket string // path if found, empty otherwise
	NagvisImagePath  string // NagVis image directory of the OMD site
}

// Detector abstracts environment and filesystem lookups for testing.
type Detector interface {
	Getenv(key string) string
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) Getenv(key string) string              { return os.Getenv(key) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Detect looks for a Livestatus socket and the NagVis image directory.
// Inside an OMD site the site's socket is used without checking it exists.
func Detect(d Detector) Result {
	if d == nil {
		d = OSDetector{}
	}

	result := Result{OMDRoot: d.Getenv("OMD_ROOT")}

	if result.OMDRoot != "" {
		result.LivestatusSocket = filepath.Join(result.OMDRoot, "tmp/run/live")
		result.NagvisImagePath = filepath.Join(result.OMDRoot, "local/share/nagvis/images") + "/"
		return result
	}

	for _, p := range defaultSockets {
		if _, err := d.Stat(p); err == nil {
			result.LivestatusSocket = p
			break
		}
	}

	return result
}

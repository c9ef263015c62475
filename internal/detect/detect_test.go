package detect

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockDetector implements Detector for testing.
type mockDetector struct {
	env   map[string]string
	files map[string]bool
}

func (m *mockDetector) Getenv(key string) string {
	return m.env[key]
}

type fakeFileInfo struct {
	name string
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return os.ModeSocket }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func (m *mockDetector) Stat(path string) (os.FileInfo, error) {
	if m.files[path] {
		return fakeFileInfo{name: path}, nil
	}
	return nil, os.ErrNotExist
}

func TestDetectOMDSite(t *testing.T) {
	d := &mockDetector{
		env:   map[string]string{"OMD_ROOT": "/omd/sites/prod"},
		files: map[string]bool{"/var/lib/nagios/rw/live": true},
	}
	result := Detect(d)
	assert.Equal(t, "/omd/sites/prod", result.OMDRoot)
	assert.Equal(t, "/omd/sites/prod/tmp/run/live", result.LivestatusSocket)
	assert.Equal(t, "/omd/sites/prod/local/share/nagvis/images/", result.NagvisImagePath)
}

func TestDetectNagiosSocket(t *testing.T) {
	d := &mockDetector{files: map[string]bool{
		"/var/lib/nagios/rw/live": true,
		"/var/lib/icinga/rw/live": true,
	}}
	result := Detect(d)
	assert.Equal(t, "/var/lib/nagios/rw/live", result.LivestatusSocket)
	assert.Empty(t, result.NagvisImagePath)
}

func TestDetectIcingaSocket(t *testing.T) {
	d := &mockDetector{files: map[string]bool{"/var/lib/icinga/rw/live": true}}
	result := Detect(d)
	assert.Equal(t, "/var/lib/icinga/rw/live", result.LivestatusSocket)
}

func TestDetectNothing(t *testing.T) {
	result := Detect(&mockDetector{})
	assert.Empty(t, result.OMDRoot)
	assert.Empty(t, result.LivestatusSocket)
	assert.Empty(t, result.NagvisImagePath)
}

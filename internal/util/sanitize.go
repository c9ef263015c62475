package util

import (
	"path"
	"strings"
)

var pathSeparators = strings.NewReplacer("/", "_", `\`, "_")

// MapFileName returns the file name of the map for a host group.
// Host group names may contain path separators, NagVis map names may not.
func MapFileName(group string) string {
	name := pathSeparators.Replace(group)
	if name == "" || name == "." || name == ".." {
		name = "unknown"
	}
	return name + ".cfg"
}

// URLBase returns the last element of a URL path, ignoring any query or
// fragment. It returns "" if there is no usable file name.
func URLBase(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	if i := strings.Index(ref, "://"); i >= 0 {
		ref = ref[i+3:]
		slash := strings.Index(ref, "/")
		if slash < 0 {
			return ""
		}
		ref = ref[slash:]
	}
	base := path.Base(ref)
	if base == "/" || base == "." {
		return ""
	}
	return base
}

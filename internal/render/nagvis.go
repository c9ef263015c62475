package render

import (
	"strings"
	"text/template"

	"github.com/ThomasCrouzet/nagmaps/internal/model"
)

// OverviewName is the document name of the overview map.
const OverviewName = "overview"

const groupMapTemplate = `define global {
object_id=0
iconset={{ .Iconset }}
dynmap_object_filter=Filter: groups >= {{ .Group }}

sources=dynmap
dynmap_object_types=host
grid_show=0
label_show=1
}

define shape {
icon={{ .Logo }}
x=50
y=32
url={{ .URL }}
url_target=_blank
}`

const overviewTemplate = `define global {
object_id=0
iconset={{ .Iconset }}
sources=dynmap
dynmap_object_types=hostgroup
grid_show=0
label_show=1
label_text=[name]
}
{{- range .Groups }}

define hostgroup {
object_id=1
hostgroup_name={{ .Name }}
x={{ .X }}
y={{ .Y }}
backend_id={{ $.Backend }}
}
{{- end }}`

var (
	groupMapTmpl = template.Must(template.New("group").Parse(groupMapTemplate))
	overviewTmpl = template.Must(template.New("overview").Parse(overviewTemplate))
)

// NagVis renders NagVis map definitions.
type NagVis struct {
	Iconset string
}

// NewNagVis returns a renderer using iconset, or DefaultIconset if empty.
func NewNagVis(iconset string) *NagVis {
	if iconset == "" {
		iconset = DefaultIconset
	}
	return &NagVis{Iconset: iconset}
}

type groupMapData struct {
	Iconset string
	Group   string
	Logo    string
	URL     string
}

type overviewGroup struct {
	Name string
	X, Y int
}

type overviewData struct {
	Iconset string
	Backend string
	Groups  []overviewGroup
}

// GroupMap renders a dynamic map showing the hosts of group, with the
// group's logo linking to its URL.
func (n *NagVis) GroupMap(group string, meta model.GroupMetadata) model.MapDocument {
	return model.MapDocument{
		Name: group,
		Content: execute(groupMapTmpl, groupMapData{
			Iconset: n.Iconset,
			Group:   group,
			Logo:    meta.Logo,
			URL:     meta.URL,
		}),
	}
}

// Overview renders a map placing every target group on a grid.
func (n *NagVis) Overview(targets []string, backend string) model.MapDocument {
	data := overviewData{Iconset: n.Iconset, Backend: backend}
	for i, p := range Layout(len(targets)) {
		data.Groups = append(data.Groups, overviewGroup{Name: targets[i], X: p.X, Y: p.Y})
	}
	return model.MapDocument{
		Name:    OverviewName,
		Content: execute(overviewTmpl, data),
	}
}

// execute panics if a fixed template fails to render.
func execute(t *template.Template, data any) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}

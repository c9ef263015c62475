package render

import (
	"strings"
	"testing"

	"github.com/ThomasCrouzet/nagmaps/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGroupMap(t *testing.T) {
	doc := GroupMap("cust-finance", model.GroupMetadata{
		Logo: "financelogo.png",
		URL:  "https://confluence.example.com/INT/finance",
	})

	expected := `define global {
object_id=0
iconset=std_big
dynmap_object_filter=Filter: groups >= cust-finance

sources=dynmap
dynmap_object_types=host
grid_show=0
label_show=1
}

define shape {
icon=financelogo.png
x=50
y=32
url=https://confluence.example.com/INT/finance
url_target=_blank
}`

	assert.Equal(t, "cust-finance", doc.Name)
	assert.Equal(t, expected, doc.Content)
}

func TestGroupMapEmptyURL(t *testing.T) {
	doc := GroupMap("cust-catering", model.MetadataFor(nil, "cust-catering"))

	assert.Contains(t, doc.Content, "icon=placeholder.png\n")
	assert.Contains(t, doc.Content, "url=\nurl_target=_blank")
}

func TestGroupMapIconset(t *testing.T) {
	doc := NewNagVis("std_small").GroupMap("web", model.GroupMetadata{Logo: "web.png"})
	assert.Contains(t, doc.Content, "iconset=std_small\n")
}

func TestOverview(t *testing.T) {
	doc := Overview([]string{"cust-finance", "cust-catering"}, "live_1")

	expected := `define global {
object_id=0
iconset=std_big
sources=dynmap
dynmap_object_types=hostgroup
grid_show=0
label_show=1
label_text=[name]
}

define hostgroup {
object_id=1
hostgroup_name=cust-finance
x=192
y=96
backend_id=live_1
}

define hostgroup {
object_id=1
hostgroup_name=cust-catering
x=288
y=96
backend_id=live_1
}`

	assert.Equal(t, OverviewName, doc.Name)
	assert.Equal(t, expected, doc.Content)
}

func TestOverviewNoGroups(t *testing.T) {
	doc := Overview(nil, "localhost")

	assert.True(t, strings.HasSuffix(doc.Content, "label_text=[name]\n}"))
	assert.NotContains(t, doc.Content, "define hostgroup")
}

func TestOverviewWrapsRows(t *testing.T) {
	groups := make([]string, 13)
	for i := range groups {
		groups[i] = string(rune('a' + i))
	}

	doc := Overview(groups, "localhost")
	assert.Equal(t, 13, strings.Count(doc.Content, "define hostgroup"))
	assert.Contains(t, doc.Content, "hostgroup_name=g\nx=192\ny=146\n")
	assert.Contains(t, doc.Content, "hostgroup_name=m\nx=192\ny=196\n")
}

func TestNewNagVisDefaultIconset(t *testing.T) {
	assert.Equal(t, DefaultIconset, NewNagVis("").Iconset)
}

var _ Renderer = (*NagVis)(nil)

package wizard

import (
	"bytes"
	"strings"
	"text/template"
)

// WizardAnswers holds all user responses from the wizard.
type WizardAnswers struct {
	// Group source
	Source           string // livestatus, file or mock
	LivestatusSocket string
	SourceFile       string

	// Filtering, comma separated as typed
	Prefixes  string
	Postfixes string
	Include   string
	Exclude   string

	// NagVis settings
	Backend   string
	ImagePath string

	// Add an example groups section
	ExampleGroups bool
}

// Example group metadata, kept in sync with the mock source's groups.
const exampleGroups = `groups:
  cust-finance:
    logo: 'financelogo.png'
    url: 'https://confluence.example.com/INT/finance'
  cust-catering:
    logo: 'cateringlogo.png'
    url: 'https://confluence.example.com/INT/catering'
`

const configTemplate = `# nagmaps configuration

source: {{ .Source }}
{{- if and (eq .Source "livestatus") .LivestatusSocket }}
livestatus_socket: {{ .LivestatusSocket }}
{{- end }}
{{- if eq .Source "file" }}
source_file: {{ .SourceFile }}
{{- end }}

backend: {{ .Backend }}
{{- if .ImagePath }}
image_path: {{ .ImagePath }}
{{- end }}

hostgroup_prefix:
{{- range list .Prefixes }}
  - '{{ . }}'
{{- else }}
  - ''
{{- end }}
hostgroup_postfix:
{{- range list .Postfixes }}
  - '{{ . }}'
{{- else }}
  - ''
{{- end }}
{{- with list .Include }}
hostgroup_include:
{{- range . }}
  - '{{ . }}'
{{- end }}
{{- end }}
{{- with list .Exclude }}
hostgroup_exclude:
{{- range . }}
  - '{{ . }}'
{{- end }}
{{- end }}
{{ if .ExampleGroups }}
` + exampleGroups + `{{ end }}`

// splitList turns "a, b,,c" into [a b c]. Single quotes are doubled for
// YAML single-quoted scalars.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, strings.ReplaceAll(part, "'", "''"))
	}
	return out
}

// GenerateConfig renders the YAML config from wizard answers.
func GenerateConfig(answers WizardAnswers) (string, error) {
	// Set defaults
	if answers.Source == "" {
		answers.Source = "livestatus"
	}
	if answers.Backend == "" {
		answers.Backend = "localhost"
	}

	tmpl, err := template.New("config").Funcs(template.FuncMap{"list": splitList}).Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}

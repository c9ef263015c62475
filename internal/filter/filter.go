package filter

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Rules selects which host groups get a map. Nil lists are treated as empty.
type Rules struct {
	Include []string
	Exclude []string
	Prefix  []string
	Postfix []string
}

// Filter applies Rules to a list of host group names.
type Filter struct {
	Rules Rules
	Log   zerolog.Logger
}

// New returns a Filter that traces its decisions to log at debug level.
func New(rules Rules, log zerolog.Logger) *Filter {
	return &Filter{Rules: rules, Log: log}
}

// Apply filters groups without tracing.
func Apply(groups []string, rules Rules) []string {
	return New(rules, zerolog.Nop()).Apply(groups)
}

// Apply returns the target groups in the order they first appear in groups.
// The result never holds the same group twice.
//
// When both prefix and postfix lists are set, a group has to match one
// entry of each to be selected.
func (f *Filter) Apply(groups []string) []string {
	r := f.Rules
	targets := make([]string, 0, len(groups))

	for _, group := range groups {
		f.Log.Debug().Str("group", group).Msg("looking at group")

		if slices.Contains(targets, group) {
			f.Log.Debug().Str("group", group).Msg("group already selected")
			continue
		}
		if len(r.Exclude) > 0 && slices.Contains(r.Exclude, group) {
			f.Log.Debug().Str("group", group).Msg("group excluded")
			continue
		}
		if len(r.Include) > 0 {
			if slices.Contains(r.Include, group) {
				targets = append(targets, group)
				f.Log.Debug().Str("group", group).Msg("include match")
			}
			continue
		}
		if len(r.Prefix) == 0 && len(r.Postfix) == 0 {
			targets = append(targets, group)
			continue
		}

		if !matchesAny(group, r.Prefix, strings.HasPrefix) {
			f.Log.Debug().Str("group", group).Msg("no prefix match")
			continue
		}
		if !matchesAny(group, r.Postfix, strings.HasSuffix) {
			f.Log.Debug().Str("group", group).Msg("prefix matched but no postfix match")
			continue
		}
		targets = append(targets, group)
		f.Log.Debug().Str("group", group).Msg("prefix and postfix match")
	}

	return targets
}

func matchesAny(group string, patterns []string, match func(s, p string) bool) bool {
	for _, p := range patterns {
		if match(group, p) {
			return true
		}
	}
	return false
}

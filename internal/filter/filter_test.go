package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultRules() Rules {
	return Rules{Prefix: []string{""}, Postfix: []string{""}}
}

func TestApplyDefaultsKeepsEverythingOnce(t *testing.T) {
	groups := []string{"web", "db", "web", "cust-finance", "db"}

	got := Apply(groups, defaultRules())
	assert.Equal(t, []string{"web", "db", "cust-finance"}, got)
}

func TestApplyExcludeWins(t *testing.T) {
	groups := []string{"cust-finance", "cust-catering", "cust-hr"}

	tests := []struct {
		name  string
		rules Rules
	}{
		{"defaults", Rules{Exclude: []string{"cust-hr"}, Prefix: []string{""}, Postfix: []string{""}}},
		{"include lists it", Rules{Exclude: []string{"cust-hr"}, Include: []string{"cust-hr", "cust-finance"}}},
		{"prefix matches it", Rules{Exclude: []string{"cust-hr"}, Prefix: []string{"cust-"}, Postfix: []string{""}}},
		{"no prefix rules", Rules{Exclude: []string{"cust-hr"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(groups, tt.rules)
			assert.NotContains(t, got, "cust-hr")
		})
	}
}

func TestApplyIncludeIsExhaustive(t *testing.T) {
	groups := []string{"linux", "cust-finance", "windows", "cust-catering"}
	rules := Rules{
		Include: []string{"cust-catering", "cust-finance", "missing"},
		Prefix:  []string{"linux"},
		Postfix: []string{""},
	}

	got := Apply(groups, rules)
	// source order, not include order; prefix rules ignored
	assert.Equal(t, []string{"cust-finance", "cust-catering"}, got)
}

func TestApplyIncludeAfterExclude(t *testing.T) {
	groups := []string{"a", "b", "c"}
	rules := Rules{Include: []string{"a", "b"}, Exclude: []string{"b"}}

	assert.Equal(t, []string{"a"}, Apply(groups, rules))
}

func TestApplyNoPrefixNoPostfix(t *testing.T) {
	groups := []string{"a", "b", "a"}

	assert.Equal(t, []string{"a", "b"}, Apply(groups, Rules{}))
	assert.Equal(t, []string{"a", "b"}, Apply(groups, Rules{Prefix: []string{}, Postfix: []string{}}))
}

func TestApplyPrefixAndPostfixBothRequired(t *testing.T) {
	groups := []string{"cust-finance", "cust-catering", "int-finance", "cust-finance-old"}

	tests := []struct {
		name     string
		rules    Rules
		expected []string
	}{
		{
			name:     "prefix with empty postfix",
			rules:    Rules{Prefix: []string{"cust-"}, Postfix: []string{""}},
			expected: []string{"cust-finance", "cust-catering", "cust-finance-old"},
		},
		{
			name:     "prefix and postfix",
			rules:    Rules{Prefix: []string{"cust-"}, Postfix: []string{"finance"}},
			expected: []string{"cust-finance"},
		},
		{
			name:     "postfix alone is not enough",
			rules:    Rules{Prefix: []string{"cust-"}, Postfix: []string{"-x"}},
			expected: []string{},
		},
		{
			name:     "several prefixes",
			rules:    Rules{Prefix: []string{"int-", "cust-"}, Postfix: []string{"finance"}},
			expected: []string{"cust-finance", "int-finance"},
		},
		{
			name:     "empty prefix list drops everything",
			rules:    Rules{Postfix: []string{"finance"}},
			expected: []string{},
		},
		{
			name:     "empty postfix list drops everything",
			rules:    Rules{Prefix: []string{"cust-"}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Apply(groups, tt.rules))
		})
	}
}

func TestApplyEmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, defaultRules()))
}

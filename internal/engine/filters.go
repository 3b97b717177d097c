package engine

import (
	"strings"

	"github.com/a11yscan/a11yscan/internal/ignore"
	"github.com/a11yscan/a11yscan/internal/types"
)

type issueFilter struct {
	allowed map[string]bool
	blocked map[string]bool
	minRank int
	ignore  *ignore.Matcher
}

func newIssueFilter(cfg Config) issueFilter {
	return issueFilter{
		allowed: parseIDList(cfg.IncludeRules),
		blocked: parseIDList(cfg.ExcludeRules),
		minRank: cfg.MinSeverity.Rank(),
		ignore:  cfg.Ignore,
	}
}

func parseIDList(s string) map[string]bool {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	out := map[string]bool{}
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out[id] = true
		}
	}
	return out
}

// apply returns the issues that pass every filter in a new slice. Rule lists
// match either the template id or the rule name.
func (f issueFilter) apply(issues []types.Issue) []types.Issue {
	out := make([]types.Issue, 0, len(issues))
	for _, is := range issues {
		if f.allowed != nil && !f.allowed[is.TemplateID] && !f.allowed[is.Rule] {
			continue
		}
		if f.blocked[is.TemplateID] || f.blocked[is.Rule] {
			continue
		}
		if is.Severity.Rank() < f.minRank {
			continue
		}
		if f.ignore.Match(is.FilePath) {
			continue
		}
		out = append(out, is)
	}
	return out
}

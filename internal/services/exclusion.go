package services

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// DefaultExclusionPatterns skip virtual filesystems whose sizes are
// meaningless and mounted volumes that would be counted twice.
var DefaultExclusionPatterns = []string{
	`^/proc$`,
	`^/sys$`,
	`^/mnt/[^/]+$`,
}

// ExclusionPolicy matches directory paths that must not be listed. Paths are
// compared in slash form so one pattern set works on every platform.
type ExclusionPolicy struct {
	patterns []*regexp.Regexp
}

// NewExclusionPolicy compiles the default patterns followed by extra.
func NewExclusionPolicy(extra ...string) (*ExclusionPolicy, error) {
	all := append(append([]string{}, DefaultExclusionPatterns...), extra...)
	policy := &ExclusionPolicy{patterns: make([]*regexp.Regexp, 0, len(all))}
	for _, pattern := range all {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		policy.patterns = append(policy.patterns, compiled)
	}
	return policy, nil
}

// Match reports whether path is excluded. A nil policy excludes nothing.
func (policy *ExclusionPolicy) Match(path string) bool {
	if policy == nil {
		return false
	}
	slashed := filepath.ToSlash(path)
	for _, pattern := range policy.patterns {
		if pattern.MatchString(slashed) {
			return true
		}
	}
	return false
}

func (policy *ExclusionPolicy) Patterns() []string {
	if policy == nil {
		return nil
	}
	out := make([]string, 0, len(policy.patterns))
	for _, pattern := range policy.patterns {
		out = append(out, pattern.String())
	}
	return out
}

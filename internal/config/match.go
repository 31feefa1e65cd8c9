package config

import (
	"path/filepath"

	"github.com/tidwall/match"
)

// Includes reports whether relPath (slash-separated, relative to the
// project root) is selected by this project's include globs and not
// rejected by any exclude glob. Exclude takes priority: a path
// matching both an include and an exclude pattern is excluded.
//
// match.Match's "*" matches any run of characters, including "/", so
// a "**/*.ts"-style doubled-star pattern already matches at any depth
// with a single match.Match call — no path-segment walking needed.
func (p *Project) Includes(relPath string) bool {
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range p.Exclude {
		if match.Match(relPath, pattern) {
			return false
		}
	}

	if len(p.Include) == 0 {
		return true
	}
	for _, pattern := range p.Include {
		if match.Match(relPath, pattern) {
			return true
		}
	}
	return false
}

package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cwbudde/go-tscheck/internal/ast"
)

// extensions tried, in order, when a specifier names neither a file
// that exists verbatim nor one with an extension already attached.
var extensions = []string{".ts", ".tsx", "/index.ts", "/index.tsx"}

// FSResolver is a Resolver backed by the real filesystem, used by
// cmd/tscheck to check an on-disk project the way MapResolver drives
// in-memory checker tests. A bare specifier ("fs", "left-pad") is
// returned unchanged, same as MapResolver — it is the builtin
// catalog's or an ambient `declare module` augmentation's job to give
// it meaning, not this resolver's.
type FSResolver struct {
	mu    sync.RWMutex
	cache map[string]*ast.Program
}

// NewFSResolver creates an FSResolver with an empty parse cache.
func NewFSResolver() *FSResolver {
	return &FSResolver{cache: map[string]*ast.Program{}}
}

func (r *FSResolver) Resolve(fromPath, spec string) (string, error) {
	if !strings.HasPrefix(spec, "./") && !strings.HasPrefix(spec, "../") {
		return spec, nil
	}
	dir := filepath.Dir(fromPath)
	joined := filepath.Clean(filepath.Join(dir, spec))

	if fileExists(joined) {
		return joined, nil
	}
	for _, ext := range extensions {
		if candidate := joined + ext; fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("resolver: cannot find module %q from %q", spec, fromPath)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (r *FSResolver) GetCachedModule(path string) (*ast.Program, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.cache[path]
	return m, ok
}

func (r *FSResolver) CacheModule(path string, module *ast.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[path] = module
}

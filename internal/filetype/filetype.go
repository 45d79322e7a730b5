// Package filetype resolves a filename to the highlighting options of its
// language. Options come from a built-in table and can be extended or
// overridden from a TOML file keyed by extension.
package filetype

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/xonecas/kite/internal/highlight"
)

// DefaultName is the name of the filetype used for unknown extensions.
const DefaultName = "No filetype"

// FileType is a named set of highlighting options.
type FileType struct {
	Name    string
	Options highlight.Options
}

// Default returns the filetype with every highlight class disabled.
func Default() FileType {
	return FileType{Name: DefaultName}
}

// Registry maps lower-case extensions (without the dot) to filetypes.
type Registry struct {
	byExt map[string]FileType
}

// NewRegistry returns a registry preloaded with the built-in filetypes.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]FileType, len(builtins))}
	for ext, ft := range builtins {
		r.byExt[ext] = ft
	}
	return r
}

// Register adds or replaces the filetype for ext. A leading dot is ignored.
func (r *Registry) Register(ext string, ft FileType) {
	r.byExt[normalizeExt(ext)] = ft
}

// Resolve returns the filetype for filename's extension, or Default.
func (r *Registry) Resolve(filename string) FileType {
	if r == nil || filename == "" {
		return Default()
	}
	ext := normalizeExt(filepath.Ext(filename))
	if ext == "" {
		return Default()
	}
	if ft, ok := r.byExt[ext]; ok {
		return ft
	}
	return Default()
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

package effects

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Override file extensions. <dir>/<name>.vert replaces the vertex stage and
// <dir>/<name>.frag the fragment stage of the effect called name.
const (
	VertexExt   = ".vert"
	FragmentExt = ".frag"
)

// ApplyOverride returns def with any stage found in dir replaced by the file contents.
// changed reports whether at least one stage was replaced. A missing dir or missing
// files are not errors.
func ApplyOverride(dir string, def Definition) (out Definition, changed bool, err error) {
	out = def
	if dir == "" {
		return out, false, nil
	}
	if src, ok, err := readStage(filepath.Join(dir, def.Name+VertexExt)); err != nil {
		return def, false, err
	} else if ok {
		out.Vertex = src
		changed = true
	}
	if src, ok, err := readStage(filepath.Join(dir, def.Name+FragmentExt)); err != nil {
		return def, false, err
	} else if ok {
		out.Fragment = src
		changed = true
	}
	return out, changed, nil
}

// ApplyOverrides runs ApplyOverride for every definition and returns the result in the same order.
func ApplyOverrides(dir string, defs []Definition) ([]Definition, error) {
	out := make([]Definition, len(defs))
	for i, d := range defs {
		o, _, err := ApplyOverride(dir, d)
		if err != nil {
			return nil, err
		}
		out[i] = o
	}
	return out, nil
}

// EffectForFile maps an override file path to the effect name it belongs to.
func EffectForFile(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != VertexExt && ext != FragmentExt {
		return "", false
	}
	name := strings.TrimSuffix(base, ext)
	if _, err := Lookup(name); err != nil {
		return "", false
	}
	return name, true
}

func readStage(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("effects: read override: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", false, nil
	}
	return string(data), true, nil
}

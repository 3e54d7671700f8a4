package loop

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"shapeshift/internal/assets"
	"shapeshift/internal/effects"
)

// AllEffects names every effect in a Reload call.
const AllEffects = "all"

// Pending reports effects whose sources changed since the last call.
type Pending interface {
	Drain() []string
}

// Reloader recompiles effect programs from the built-in sources plus any overrides in Dir.
// It runs on the render thread between frames.
type Reloader struct {
	cache  *assets.Cache
	shaded map[string]*assets.Surface
	dir    string
	log    *log.Logger
}

// NewReloader returns a reloader for the shared shaded surfaces.
func NewReloader(cache *assets.Cache, shaded map[string]*assets.Surface, dir string, logger *log.Logger) *Reloader {
	return &Reloader{cache: cache, shaded: shaded, dir: dir, log: logger}
}

// Reload recompiles one effect, or all of them for AllEffects. A failed compile keeps the
// previous program and is returned.
func (r *Reloader) Reload(name string) error {
	if name != AllEffects {
		return r.reload(name)
	}
	var errs []error
	for _, def := range effects.Definitions() {
		errs = append(errs, r.reload(def.Name))
	}
	return errors.Join(errs...)
}

// Poll reloads every effect p reports. Failures are logged, not returned, so a bad edit
// never stops the frame loop.
func (r *Reloader) Poll(p Pending) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, name := range p.Drain() {
		if err := r.reload(name); err != nil {
			r.log.Warn("shader reload failed, keeping previous program", "effect", name, "err", err)
			continue
		}
		n++
	}
	return n
}

func (r *Reloader) reload(name string) error {
	def, err := effects.Lookup(name)
	if err != nil {
		return err
	}
	surf, ok := r.shaded[name]
	if !ok {
		return fmt.Errorf("%w: %s not preloaded", effects.ErrUnknownEffect, name)
	}
	def, _, err = effects.ApplyOverride(r.dir, def)
	if err != nil {
		return err
	}
	return r.cache.ReloadEffect(surf, def)
}

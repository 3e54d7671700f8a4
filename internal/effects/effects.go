package effects

import (
	"errors"
	"slices"
)

// Uniform names every effect declares.
const (
	TimeUniform       = "iTime"
	ResolutionUniform = "iResolution"
)

// ErrUnknownEffect is returned when a name has no built-in definition.
var ErrUnknownEffect = errors.New("unknown effect")

// UniformKind is the GLSL type of a declared uniform.
type UniformKind int

const (
	Float UniformKind = iota
	Vec3
	Vec4
	// sampler uniforms are left at texture unit 0; instances hold no value for them.
	sampler
)

// UniformDecl declares one uniform input with its default value.
// Only the first N components of Default are used, N depending on Kind.
type UniformDecl struct {
	Name    string
	Kind    UniformKind
	Default [4]float32
}

// Definition is the immutable source bundle for one effect.
type Definition struct {
	Name     string
	Vertex   string
	Fragment string
	Uniforms []UniformDecl
}

// Uniform is a live uniform value held by an Instance.
type Uniform struct {
	Name  string
	Kind  UniformKind
	Value [4]float32
}

// Instance holds the mutable uniform values of one instantiated Definition.
// Instances are shared by reference; everything that draws the effect reads the same values.
type Instance struct {
	Def      *Definition
	uniforms []Uniform
	index    map[string]int
}

// NewInstance instantiates def with its declared defaults, zero time and the given viewport.
func NewInstance(def *Definition, width, height int) *Instance {
	inst := &Instance{
		Def:      def,
		uniforms: make([]Uniform, 0, len(def.Uniforms)),
		index:    make(map[string]int, len(def.Uniforms)),
	}
	for _, d := range def.Uniforms {
		if d.Kind == sampler {
			continue
		}
		inst.index[d.Name] = len(inst.uniforms)
		inst.uniforms = append(inst.uniforms, Uniform{Name: d.Name, Kind: d.Kind, Value: d.Default})
	}
	inst.SetTime(0)
	inst.SetResolution(width, height)
	return inst
}

// Name returns the definition name.
func (i *Instance) Name() string {
	return i.Def.Name
}

// SetTime sets the elapsed-seconds uniform.
func (i *Instance) SetTime(seconds float32) {
	i.set(TimeUniform, [4]float32{seconds})
}

// SetResolution sets the viewport uniform to (width, height, 1).
func (i *Instance) SetResolution(width, height int) {
	i.set(ResolutionUniform, [4]float32{float32(width), float32(height), 1})
}

// Time returns the current elapsed-seconds uniform.
func (i *Instance) Time() float32 {
	v, _ := i.Value(TimeUniform)
	return v[0]
}

// Resolution returns the current viewport uniform.
func (i *Instance) Resolution() [3]float32 {
	v, _ := i.Value(ResolutionUniform)
	return [3]float32{v[0], v[1], v[2]}
}

// Value returns the raw value of a named uniform.
func (i *Instance) Value(name string) ([4]float32, bool) {
	idx, ok := i.index[name]
	if !ok {
		return [4]float32{}, false
	}
	return i.uniforms[idx].Value, true
}

// Uniforms returns the live uniforms in declaration order. The slice is a copy.
func (i *Instance) Uniforms() []Uniform {
	return slices.Clone(i.uniforms)
}

func (i *Instance) set(name string, v [4]float32) {
	if idx, ok := i.index[name]; ok {
		i.uniforms[idx].Value = v
	}
}

// Definitions returns the six built-in effects in wall order.
func Definitions() []Definition {
	return []Definition{
		everflow(),
		pulse(),
		random(),
		fallenRose(),
		maze(),
		rain(),
	}
}

// Lookup returns the built-in effect with the given name.
func Lookup(name string) (Definition, error) {
	for _, d := range Definitions() {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, ErrUnknownEffect
}

// standardUniforms are declared by every effect.
func standardUniforms(extra ...UniformDecl) []UniformDecl {
	return append([]UniformDecl{
		{Name: TimeUniform, Kind: Float},
		{Name: ResolutionUniform, Kind: Vec3},
	}, extra...)
}

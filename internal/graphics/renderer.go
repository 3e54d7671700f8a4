package graphics

import (
	"image/color"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"shapeshift/internal/assets"
	"shapeshift/internal/effects"
	"shapeshift/internal/geom"
	"shapeshift/internal/scene"
)

var background = rl.NewColor(12, 12, 16, 255)

// Lit program constants; light color and intensity come from the scene light.
var ambient = [4]float32{0.2, 0.22, 0.26, 1.0}

const (
	specularPower    = float32(48.0)
	specularStrength = float32(0.35)
)

// Renderer draws a scene: the central object first, then the walls alpha blended back to
// front. It implements the loop's renderer.
type Renderer struct {
	log    *log.Logger
	width  int
	height int

	wallMaterial rl.Material
	order        []*scene.Wall
}

// NewRenderer returns a renderer. Only construct it after the window is open.
func NewRenderer(logger *log.Logger) *Renderer {
	return &Renderer{
		log:          logger,
		wallMaterial: rl.LoadMaterialDefault(),
	}
}

// SetSize records the framebuffer size.
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
}

// Close frees the wall material.
func (r *Renderer) Close() {
	rl.UnloadMaterial(r.wallMaterial)
}

// Render draws s. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Render(s *scene.Scene) {
	cam := rl.Camera3D{
		Position:   vec(s.Camera.Position),
		Target:     vec(s.Camera.Target),
		Up:         vec(s.Camera.Up),
		Fovy:       s.Camera.Fovy,
		Projection: rl.CameraPerspective,
	}
	rl.SetClipPlanes(float64(s.Camera.Near), float64(s.Camera.Far))
	rl.BeginMode3D(cam)
	r.drawObject(s)
	r.drawWalls(s)
	rl.EndMode3D()
}

func (r *Renderer) drawObject(s *scene.Scene) {
	obj := s.Object
	m, ok := obj.Shape.Mesh.(*mesh)
	if !ok {
		return
	}
	p, ok := obj.Surface.Program.(*program)
	if !ok {
		return
	}
	switch obj.Surface.Kind {
	case assets.Lit:
		setLitUniforms(p, s)
		if albedo := p.material.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = rgba(obj.Surface.Color, obj.Surface.Color.A)
		}
	case assets.Shaded:
		setEffectUniforms(p, obj.Surface.Effect)
	}

	// Center the mesh, scale it, then spin it about the origin.
	transform := rl.MatrixMultiply(
		rl.MatrixMultiply(
			rl.MatrixTranslate(m.offset.X, m.offset.Y, m.offset.Z),
			rl.MatrixScale(obj.Scale, obj.Scale, obj.Scale),
		),
		rl.MatrixRotateXYZ(rl.NewVector3(obj.Rotation.X, obj.Rotation.Y, obj.Rotation.Z)),
	)
	rl.DrawMesh(m.Mesh, p.material, transform)
}

func (r *Renderer) drawWalls(s *scene.Scene) {
	r.order = s.WallsBackToFront(r.order)
	if len(r.order) == 0 {
		return
	}
	rl.BeginBlendMode(rl.BlendAlpha)
	defer rl.EndBlendMode()

	for _, w := range r.order {
		surf := w.Surface
		alpha := surf.Alpha()
		if alpha <= 0 {
			continue
		}
		m, ok := w.Shape.Mesh.(*mesh)
		if !ok {
			continue
		}
		mtl := r.wallMaterial
		if p, ok := surf.Program.(*program); ok {
			mtl = p.material
		}
		if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = rgba(surf.Color, alpha)
		}
		if !surf.DepthWrite {
			rl.DisableDepthMask()
		}
		if surf.DoubleSided {
			rl.DisableBackfaceCulling()
		}
		transform := rl.MatrixMultiply(
			rl.MatrixRotateXYZ(rl.NewVector3(w.Rotation.X, w.Rotation.Y, w.Rotation.Z)),
			rl.MatrixTranslate(w.Position.X, w.Position.Y, w.Position.Z),
		)
		rl.DrawMesh(m.Mesh, mtl, transform)
		rl.EnableBackfaceCulling()
		rl.EnableDepthMask()
	}
}

func setLitUniforms(p *program, s *scene.Scene) {
	// Local arrays keep the values addressable for the cgo call.
	viewPos := s.Camera.Position.Array()
	lightDir := s.Light.Direction().Array()
	amb := ambient
	lightColor := [3]float32{s.Light.Color.R, s.Light.Color.G, s.Light.Color.B}
	if loc := p.loc("viewPos"); loc >= 0 {
		rl.SetShaderValueV(p.shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := p.loc("lightDir"); loc >= 0 {
		rl.SetShaderValueV(p.shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := p.loc("ambient"); loc >= 0 {
		rl.SetShaderValueV(p.shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := p.loc("lightColor"); loc >= 0 {
		rl.SetShaderValueV(p.shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := p.loc("lightIntensity"); loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{s.Light.Intensity}, rl.ShaderUniformFloat)
	}
	if loc := p.loc("specularPower"); loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := p.loc("specularStrength"); loc >= 0 {
		rl.SetShaderValue(p.shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

func setEffectUniforms(p *program, inst *effects.Instance) {
	if inst == nil {
		return
	}
	for _, u := range inst.Uniforms() {
		loc := p.loc(u.Name)
		if loc < 0 {
			continue
		}
		v := u.Value
		switch u.Kind {
		case effects.Float:
			rl.SetShaderValue(p.shader, loc, v[:1], rl.ShaderUniformFloat)
		case effects.Vec3:
			rl.SetShaderValueV(p.shader, loc, v[:3], rl.ShaderUniformVec3, 1)
		case effects.Vec4:
			rl.SetShaderValueV(p.shader, loc, v[:4], rl.ShaderUniformVec4, 1)
		}
	}
}

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

func rgba(c assets.Color, alpha float32) color.RGBA {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(alpha))
}

func channel(v float32) uint8 {
	return uint8(max(0, min(1, v))*255 + 0.5)
}

package graphics

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"shapeshift/internal/assets"
	"shapeshift/internal/geom"
)

// ErrShaderCompile is returned when raylib falls back to its default shader.
var ErrShaderCompile = errors.New("shader compile failed")

// Device allocates meshes and shader programs through raylib. Only construct it after the
// window is open.
type Device struct {
	log *log.Logger
}

// NewDevice returns a raylib device.
func NewDevice(logger *log.Logger) *Device {
	return &Device{log: logger}
}

type mesh struct {
	rl.Mesh
	offset geom.Vec3
	// Go-side vertex data of uploaded meshes, kept alive for raylib.
	vertices, normals, texcoords []float32
}

func (m *mesh) Unload() {
	rl.UnloadMesh(&m.Mesh)
}

// BuildMesh generates and uploads the mesh described by spec.
func (d *Device) BuildMesh(spec assets.ShapeSpec) (assets.Mesh, error) {
	m := &mesh{offset: spec.Offset}
	switch spec.Kind {
	case assets.KindBox:
		m.Mesh = rl.GenMeshCube(spec.Width, spec.Height, spec.Depth)
	case assets.KindCylinder:
		m.Mesh = rl.GenMeshCylinder(spec.Radius, spec.Height, spec.Segments)
	case assets.KindSphere:
		m.Mesh = rl.GenMeshSphere(spec.Radius, spec.Rings, spec.Segments)
	case assets.KindCone:
		m.Mesh = rl.GenMeshCone(spec.Radius, spec.Height, spec.Segments)
	case assets.KindTorus:
		m.Mesh = rl.GenMeshTorus(spec.TubeRadius, spec.Width, spec.Segments, spec.Rings)
	case assets.KindPolyhedron:
		if spec.Polyhedron == nil {
			return nil, fmt.Errorf("graphics: polyhedron mesh without vertices")
		}
		d.uploadPolyhedron(m, spec.Polyhedron)
	default:
		return nil, fmt.Errorf("graphics: unsupported shape kind %s", spec.Kind)
	}
	if m.VertexCount == 0 {
		return nil, fmt.Errorf("graphics: %s mesh has no vertices", spec.Kind)
	}
	d.log.Debug("mesh uploaded", "kind", spec.Kind, "vertices", m.VertexCount, "vao", m.VaoID)
	return m, nil
}

func (d *Device) uploadPolyhedron(m *mesh, p *assets.Polyhedron) {
	n := len(p.Vertices)
	m.vertices = make([]float32, 0, n*3)
	m.normals = make([]float32, 0, n*3)
	m.texcoords = make([]float32, 0, n*2)
	for i, v := range p.Vertices {
		nv := p.Normals[i]
		m.vertices = append(m.vertices, v.X, v.Y, v.Z)
		m.normals = append(m.normals, nv.X, nv.Y, nv.Z)
		m.texcoords = append(m.texcoords, p.UVs[i][0], p.UVs[i][1])
	}
	m.VertexCount = int32(n)
	m.TriangleCount = int32(p.TriangleCount())
	m.Vertices = unsafe.SliceData(m.vertices)
	m.Normals = unsafe.SliceData(m.normals)
	m.Texcoords = unsafe.SliceData(m.texcoords)
	rl.UploadMesh(&m.Mesh, false)
}

type program struct {
	shader   rl.Shader
	material rl.Material
	locs     map[string]int32
}

// Unload frees the shader along with the material wrapping it.
func (p *program) Unload() {
	rl.UnloadMaterial(p.material)
}

// loc returns the cached uniform location for name, -1 when the program does not use it.
func (p *program) loc(name string) int32 {
	if l, ok := p.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(p.shader, name)
	p.locs[name] = l
	return l
}

// CompileProgram compiles a vertex/fragment pair.
func (d *Device) CompileProgram(vertex, fragment string) (assets.Program, error) {
	shader := rl.LoadShaderFromMemory(vertex, fragment)
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() {
		return nil, ErrShaderCompile
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = shader
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.White
	}
	d.log.Debug("program compiled", "id", shader.ID)
	return &program{shader: shader, material: mtl, locs: make(map[string]int32)}, nil
}

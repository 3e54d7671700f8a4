package assets

import "shapeshift/internal/effects"

// SurfaceKind tells the renderer how to feed a surface's program.
type SurfaceKind int

const (
	// Lit surfaces use the directional light + ambient program and its light uniforms.
	Lit SurfaceKind = iota
	// Shaded surfaces run an effect program fed from their effects.Instance.
	Shaded
	// Translucent surfaces draw with the renderer's default program, alpha blended.
	Translucent
)

// Color is a linear RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

// Surface is the shading reference an object draws with.
// Shaded surfaces are shared between consumers; wall surfaces are per-wall clones.
type Surface struct {
	Name    string
	Kind    SurfaceKind
	Program Program
	Effect  *effects.Instance
	Color   Color
	// Opacity is not clamped here; values outside 0..1 are clamped by the renderer.
	Opacity     float32
	Transparent bool
	DoubleSided bool
	DepthWrite  bool
}

// BaseSurfaces are the fixed-appearance surfaces built by PreloadBaseSurfaces.
type BaseSurfaces struct {
	// Object is the lit surface the central object starts with.
	Object *Surface
	// Wall is the translucent template every wall clones.
	Wall *Surface
}

var (
	objectColor = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	wallColor   = Color{R: 0.55, G: 0.75, B: 1, A: 0.35}
)

// Lit program: simple directional light + ambient + Blinn-Phong highlight.
// viewPos, lightDir, ambient, lightColor, lightIntensity, specularPower and
// specularStrength are set by the renderer every frame.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// Alpha is the drawn alpha: Opacity clamped to 0..1, scaled by the color's own alpha.
func (s *Surface) Alpha() float32 {
	return max(0, min(1, s.Opacity)) * s.Color.A
}

package effects

// uvVS is the vertex stage shared by every effect: it forwards mesh texture coordinates
// as vUv. Attribute and matrix names are the ones raylib binds automatically.
const uvVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
uniform mat4 mvp;
out vec2 vUv;
void main() {
  vUv = vertexTexCoord;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const everflowFS = `#version 330
uniform float iTime;
uniform vec3 iResolution;
in vec2 vUv;
out vec4 finalColor;
void main() {
  vec2 pos = vUv * iResolution.xy;
  float r = sin(pos.x * 0.1 + iTime) * cos(pos.y * 0.1 + iTime * 0.5);
  vec3 col = 3.0 * sin(0.2 * vec3(1.0, 2.0, 3.0) * r);
  finalColor = vec4(col, 1.0);
}
`

const pulseFS = `#version 330
uniform float iTime;
uniform vec3 iResolution;
in vec2 vUv;
out vec4 finalColor;
void main() {
  vec2 uv = (vUv * 2.0 - 1.0) * vec2(iResolution.x / iResolution.y, 1.0);
  uv = fract(uv * 1.5) - 0.5;
  float d = abs(sin(length(uv) * 2.0 + iTime) / 18.0);
  d = 0.02 / d;
  vec3 col = vec3(0.0, sin(vUv.x * iResolution.x) / 3.0, 0.0);
  if (mod(iTime, 0.003) <= 0.0) {
    col = vec3(0.0, cos(vUv.x * iResolution.x) / 2.75, 0.0);
  }
  finalColor = vec4(col * d, 1.0);
}
`

const randomFS = `#version 330
uniform float iTime;
uniform vec3 iResolution;
in vec2 vUv;
out vec4 finalColor;
void main() {
  vec2 uv = vUv * 10.0 + iTime;
  float d = (tan(uv.x) * tan(uv.y) * sin(uv.x) * sin(uv.y)
            / tan(uv.x + uv.y) / sin(uv.y + uv.x)
            * tan(iTime) / cos(iTime))
            / log(iTime * (uv.x + uv.y));
  finalColor = vec4(vec3(abs(d + tan(iTime))), 1.0);
}
`

const fallenRoseFS = `#version 330
uniform float iTime;
uniform vec3 iResolution;
uniform vec4 iMouse;
in vec2 vUv;
out vec4 finalColor;

vec4 field(vec2 p) {
  vec2 uv = p / iResolution.xy;
  return vec4(sin(uv.x * 10.0 + iTime), cos(uv.y * 10.0 + iTime),
              sin(uv.x * uv.y * 5.0 + iTime), 1.0);
}

void main() {
  vec2 p = vUv * iResolution.xy;
  vec4 o = field(p);
  vec2 res = iResolution.xy;
  vec2 u = p / res.y;
  vec2 f = (res / res.y) / vec2(4.0, 3.0);
  vec2 g = abs(u - round(u / f) * f);
  float d = min(g.x, g.y);
  if (length(g) < f.y * 0.2) {
    o = clamp(o, 0.0, 1.0);
    o += 5.0 * clamp(exp(-880.0 * d), 0.0, 1.0);
    o.xy += 0.5 * clamp(exp(-880.0 * abs(g.y)), 0.0, 1.0);
  }
  finalColor = o;
}
`

const mazeFS = `#version 330
uniform float iTime;
uniform vec3 iResolution;
uniform sampler2D iChannel0;
in vec2 vUv;
out vec4 finalColor;

const vec2 mazeSize = vec2(31.0, 31.0);
const vec2 nesw[4] = vec2[4](vec2(0.0, -1.0), vec2(1.0, 0.0), vec2(0.0, 1.0), vec2(-1.0, 0.0));

float wall(vec2 p, vec2 d) {
  p = fract(mat2(d.y, d.x, -d.x, d.y) * p) - 0.5;
  p.y = max(0.0, -p.y);
  return 2.0 * length(p);
}

void main() {
  vec2 r = iResolution.xy;
  vec2 p = (vUv * r - 0.5 * r + 0.001) * mazeSize.y / r.y + 0.5 * mazeSize;
  p = clamp(p, vec2(0.5), mazeSize - 0.5);
  vec2 dir = vec2(cos(p.x * 0.5 + iTime), sin(p.y * 0.5 + iTime));
  float d = wall(p, dir);
  for (int i = 0; i < 4; ++i) {
    vec2 n = -dir;
    if (n.x == nesw[i].x && n.y == nesw[i].y) {
      d = min(d, wall(p, -n));
    }
  }
  d -= 1.0 / 3.0;
  float aa = mazeSize.y / r.y;
  finalColor = vec4(vec3(sqrt(smoothstep(-aa, aa, d))), 1.0);
}
`

const rainFS = `#version 330
uniform float iTime;
uniform vec3 iResolution;
in vec2 vUv;
out vec4 finalColor;

const int LAYERS = 6;
const float SCALE = 128.0;
const float LENGTH = 16.0;
const float LENGTH_SCALE = 0.8;
const float FADE = 0.6;
const float SPEED = 8.0;
const vec3 DROP_COLOR = vec3(0.54, 0.8, 0.94);
const vec3 BG_COLOR = vec3(0.23, 0.38, 0.6);

float rand(vec2 co) {
  float dt = dot(co, vec2(12.9898, 78.233));
  return fract(sin(mod(dt, 3.14)) * 43758.5453);
}

float drops(vec2 uv, float scale, float len, vec2 offset, float cutoff) {
  vec2 pos = uv * vec2(scale, scale / len) + offset;
  vec2 shift = vec2(0.0, floor(rand(floor(pos * vec2(1.0, 0.0))) * (len - 0.0001)) / len);
  return step(cutoff, rand(floor(pos + shift)));
}

vec4 over(vec4 a, vec4 b) {
  return vec4(mix(b.rgb, a.rgb, a.a), max(a.a, b.a));
}

void main() {
  vec2 uv = vUv;
  uv.x *= iResolution.x / iResolution.y;
  vec4 col = vec4(0.0);
  float len = LENGTH;
  float alpha = 1.0;
  for (int i = 0; i < LAYERS; i++) {
    float f = drops(uv, SCALE, len, vec2(SCALE * float(i), iTime * SPEED), 0.95);
    col = over(vec4(DROP_COLOR, f * alpha), col);
    len *= LENGTH_SCALE;
    alpha *= FADE;
  }
  finalColor = over(vec4(BG_COLOR, 1.0), col);
}
`

func everflow() Definition {
	return Definition{Name: "everflow", Vertex: uvVS, Fragment: everflowFS, Uniforms: standardUniforms()}
}

func pulse() Definition {
	return Definition{Name: "pulse", Vertex: uvVS, Fragment: pulseFS, Uniforms: standardUniforms()}
}

func random() Definition {
	return Definition{Name: "random", Vertex: uvVS, Fragment: randomFS, Uniforms: standardUniforms()}
}

func fallenRose() Definition {
	return Definition{
		Name:     "fallen-rose",
		Vertex:   uvVS,
		Fragment: fallenRoseFS,
		Uniforms: standardUniforms(UniformDecl{Name: "iMouse", Kind: Vec4}),
	}
}

func maze() Definition {
	return Definition{
		Name:     "maze",
		Vertex:   uvVS,
		Fragment: mazeFS,
		Uniforms: standardUniforms(UniformDecl{Name: "iChannel0", Kind: sampler}),
	}
}

func rain() Definition {
	return Definition{Name: "rain", Vertex: uvVS, Fragment: rainFS, Uniforms: standardUniforms()}
}

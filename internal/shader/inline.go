package shader

// Built-in pair: vertices wobble with time, color pulses around baseColor.
// Attribute and matrix names are the ones raylib binds by default.
const (
	inlineVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform float time;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec3 pos = vertexPosition + vertexNormal * sin(time * 2.0 + vertexPosition.y * 3.0) * 0.05;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * matModel * vec4(pos, 1.0);
}
`
	inlineFS = `#version 330
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform float time;
uniform vec3 baseColor;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  float light = 0.35 + 0.65 * max(dot(N, normalize(vec3(10.0, 10.0, 5.0))), 0.0);
  float pulse = 0.5 + 0.5 * sin(time + fragTexCoord.x * 6.2831853);
  vec3 color = mix(baseColor, vec3(1.0) - baseColor, pulse * 0.35);
  finalColor = vec4(color * light, 1.0);
}
`
)

package render

// Lit shaders for cube, sphere and plane: ambient plus one directional light, Lambert
// diffuse. The textured variant samples texture0 (raylib's albedo slot) with tiling.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 ambient;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 lit = ambient + lightColor * NdotL;
  finalColor = vec4(colDiffuse.rgb * lit, colDiffuse.a);
}
`
	litTexturedFS = `#version 330
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 ambient;
uniform vec2 tiling;
out vec4 finalColor;
void main() {
  vec4 texColor = texture(texture0, fragTexCoord * tiling);
  vec3 N = normalize(fragNormal);
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 lit = ambient + lightColor * NdotL;
  vec4 tint = texColor * colDiffuse;
  finalColor = vec4(tint.rgb * lit, tint.a);
}
`
)

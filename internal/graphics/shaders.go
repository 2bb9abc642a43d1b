package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"merry-go-round/internal/gpu"
)

// Vertex buffer slots raylib binds mesh arrays to when uploading a mesh.
var attribSlots = map[gpu.Attrib]int32{
	gpu.AttribPosition:  0,
	gpu.AttribTexCoords: 1,
	gpu.AttribNormal:    2,
	gpu.AttribColor:     3,
	gpu.AttribTexIndex:  5, // texcoords2.x
}

// raylib material slot each uniform is fed through by DrawMesh.
var uniformSlots = map[gpu.Uniform]int32{
	gpu.UniformTransformation: rl.ShaderLocMatrixModel,
	gpu.UniformModelView:      rl.ShaderLocMatrixView,
	gpu.UniformProjection:     rl.ShaderLocMatrixProjection,
	gpu.UniformCheckeredMap:   rl.ShaderLocMapAlbedo,
	gpu.UniformBillboardMap:   rl.ShaderLocMapMetalness,
}

var lightDir = [3]float32{0.5, 1, 0.5}

// Simple directional light with ambient. Texture index 1 samples the checkered map, 2 the
// billboard; 0 keeps the vertex color.
const (
	sceneVS = `#version 330
layout(location = %[10]d) in vec3 %[1]s;
layout(location = %[11]d) in vec4 %[2]s;
layout(location = %[12]d) in vec3 %[3]s;
layout(location = %[13]d) in vec2 %[4]s;
layout(location = %[14]d) in vec2 %[5]s;
uniform mat4 %[6]s;
uniform vec3 %[7]s[3];
uniform mat4 %[8]s;
uniform mat4 %[9]s;
out vec3 fragColor;
out vec3 fragNormal;
out vec2 fragTexCoord;
flat out float fragTexIndex;
void main() {
  mat3 normalMatrix = mat3(%[7]s[0], %[7]s[1], %[7]s[2]);
  fragColor = %[2]s.rgb;
  fragNormal = normalMatrix * %[3]s;
  fragTexCoord = %[4]s;
  fragTexIndex = %[5]s.x;
  gl_Position = %[9]s * %[8]s * %[6]s * vec4(%[1]s, 1.0);
}
`
	sceneFS = `#version 330
in vec3 fragColor;
in vec3 fragNormal;
in vec2 fragTexCoord;
flat in float fragTexIndex;
uniform sampler2D %[1]s;
uniform sampler2D %[2]s;
uniform vec3 lightDir;
out vec4 finalColor;
void main() {
  vec3 base = fragColor;
  if (fragTexIndex > 1.5) {
    base = texture(%[2]s, fragTexCoord).rgb;
  } else if (fragTexIndex > 0.5) {
    base = texture(%[1]s, fragTexCoord).rgb;
  }
  vec3 N = normalize(fragNormal);
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  finalColor = vec4(base * (0.35 + 0.65 * NdotL), 1.0);
}
`
)

func vertexSource() string {
	return fmt.Sprintf(sceneVS,
		gpu.AttribPosition.Name(), gpu.AttribColor.Name(), gpu.AttribNormal.Name(),
		gpu.AttribTexCoords.Name(), gpu.AttribTexIndex.Name(),
		gpu.UniformTransformation.Name(), gpu.UniformNormalTransformation.Name(),
		gpu.UniformModelView.Name(), gpu.UniformProjection.Name(),
		attribSlots[gpu.AttribPosition], attribSlots[gpu.AttribColor], attribSlots[gpu.AttribNormal],
		attribSlots[gpu.AttribTexCoords], attribSlots[gpu.AttribTexIndex])
}

func fragmentSource() string {
	return fmt.Sprintf(sceneFS, gpu.UniformCheckeredMap.Name(), gpu.UniformBillboardMap.Name())
}

// loadSceneShader compiles the program and points raylib's matrix and texture slots at the
// program's own uniform names. The normal matrix is uploaded by the device, so raylib's
// slot for it is disabled. Returns the location of the normal matrix uniform.
func loadSceneShader() (rl.Shader, int32, error) {
	shader := rl.LoadShaderFromMemory(vertexSource(), fragmentSource())
	if !rl.IsShaderValid(shader) {
		return shader, -1, fmt.Errorf("%w: scene shader failed to compile", ErrNoGraphics)
	}
	for u, slot := range uniformSlots {
		shader.UpdateLocation(slot, rl.GetShaderLocation(shader, u.Name()))
	}
	shader.UpdateLocation(rl.ShaderLocMatrixNormal, -1)
	shader.UpdateLocation(rl.ShaderLocMatrixMvp, -1)
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		dir := [3]float32{lightDir[0], lightDir[1], lightDir[2]}
		rl.SetShaderValueV(shader, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	return shader, rl.GetShaderLocation(shader, gpu.UniformNormalTransformation.Name()), nil
}

package graphics

import (
	"fmt"
	"image"
	"log/slog"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"merry-go-round/internal/gpu"
	"merry-go-round/internal/logger"
	"merry-go-round/internal/mesh"
	"merry-go-round/internal/textures"
	"merry-go-round/internal/xform"
)

// Device is the raylib-backed gpu.Device. Every mesh draw call becomes its own raylib mesh,
// expanded to a plain triangle list.
type Device struct {
	log       *logger.Logger
	clear     rl.Color
	shader    rl.Shader
	normalLoc int32
	mtl       rl.Material
	checkered rl.Texture2D
	billboard rl.Texture2D

	meshes map[gpu.Handle][]rl.Mesh
	next   gpu.Handle

	// frame state
	camera     rl.Camera3D
	in3D       bool
	projection rl.Matrix
	view       rl.Matrix
	model      rl.Matrix
	normal     [9]float32
}

// NewDevice compiles the scene shader and uploads both texture maps. Call after Open.
func NewDevice(clear [3]float32, log *logger.Logger) (*Device, error) {
	shader, normalLoc, err := loadSceneShader()
	if err != nil {
		return nil, err
	}
	d := &Device{
		log:       log,
		clear:     rl.NewColor(unit(clear[0]), unit(clear[1]), unit(clear[2]), 255),
		shader:    shader,
		normalLoc: normalLoc,
		meshes:    make(map[gpu.Handle][]rl.Mesh),
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, 0, 1),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       60,
			Projection: rl.CameraPerspective,
		},
		projection: toMatrix(mgl32.Ident4()),
		view:       toMatrix(mgl32.Ident4()),
	}
	d.SetTransform(xform.Identity)

	d.checkered = loadTexture(textures.Checkered())
	d.billboard = loadTexture(textures.Billboard())
	d.mtl = rl.LoadMaterialDefault()
	d.mtl.Shader = shader
	rl.SetMaterialTexture(&d.mtl, rl.MapAlbedo, d.checkered)
	rl.SetMaterialTexture(&d.mtl, rl.MapMetalness, d.billboard)
	log.Info("graphics device ready", slog.Int("shader", int(shader.ID)))
	return d, nil
}

func loadTexture(img image.Image) rl.Texture2D {
	im := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(im)
	rl.UnloadImage(im)
	rl.SetTextureFilter(tex, rl.FilterPoint)
	return tex
}

// Upload expands each draw call of m to a triangle list and uploads it.
func (d *Device) Upload(m *mesh.Mesh) (gpu.Handle, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	parts := make([]rl.Mesh, 0, len(m.Calls))
	for i := range m.Calls {
		v := flatten(m, m.Calls[i])
		rm := v.toRaylib()
		rl.UploadMesh(&rm, false)
		parts = append(parts, rm)
	}
	d.next++
	d.meshes[d.next] = parts
	d.log.Debug("mesh uploaded", slog.String("mesh", m.Name), slog.Int("handle", int(d.next)),
		slog.Int("calls", len(parts)))
	return d.next, nil
}

func (d *Device) Release(h gpu.Handle) {
	parts, ok := d.meshes[h]
	if !ok {
		return
	}
	for i := range parts {
		rl.UnloadMesh(&parts[i])
	}
	delete(d.meshes, h)
}

// Begin clears the frame and enters 3D mode with the current projection and view.
func (d *Device) Begin() {
	rl.ClearBackground(d.clear)
	rl.BeginMode3D(d.camera)
	rl.SetMatrixProjection(d.projection)
	rl.SetMatrixModelview(d.view)
	rl.DisableBackfaceCulling()
	d.in3D = true
}

func (d *Device) End() {
	rl.EnableBackfaceCulling()
	rl.EndMode3D()
	d.in3D = false
}

func (d *Device) SetProjection(p mgl32.Mat4) {
	d.projection = toMatrix(p)
	if d.in3D {
		rl.SetMatrixProjection(d.projection)
	}
}

func (d *Device) SetView(v mgl32.Mat4) {
	d.view = toMatrix(v)
	if d.in3D {
		rl.SetMatrixModelview(d.view)
	}
}

func (d *Device) SetTransform(t xform.Transform) {
	d.model = toMatrix(t.Model)
	d.normal = [9]float32(t.Normal)
}

func (d *Device) Draw(h gpu.Handle, call int) {
	parts, ok := d.meshes[h]
	if !ok {
		panic(fmt.Errorf("draw %d: %w", h, gpu.ErrUnknownHandle))
	}
	if d.normalLoc >= 0 {
		cols := d.normal
		rl.SetShaderValueV(d.shader, d.normalLoc, cols[:], rl.ShaderUniformVec3, 3)
	}
	rl.DrawMesh(parts[call], d.mtl, d.model)
}

// Close releases every mesh, both textures and the shader.
func (d *Device) Close() {
	for h := range d.meshes {
		d.Release(h)
	}
	rl.UnloadTexture(d.checkered)
	rl.UnloadTexture(d.billboard)
	rl.UnloadShader(d.shader)
}

// toMatrix copies a column-major mgl32 matrix into raylib's layout.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func unit(f float32) uint8 {
	return uint8(mgl32.Clamp(f, 0, 1)*255 + 0.5)
}

// vertices is one draw call expanded to an unindexed triangle list.
type vertices struct {
	positions []float32
	normals   []float32
	texcoords []float32
	selectors []float32 // texcoords2: x is the texture selector
	colors    []uint8
}

func flatten(m *mesh.Mesh, dc mesh.DrawCall) vertices {
	idx := m.Triangles(dc)
	n := len(idx)
	v := vertices{
		positions: make([]float32, 0, 3*n),
		normals:   make([]float32, 0, 3*n),
		texcoords: make([]float32, 0, 2*n),
		selectors: make([]float32, 0, 2*n),
		colors:    make([]uint8, 0, 4*n),
	}
	for _, i := range idx {
		p, nm, c, uv := m.Positions[i], m.Normals[i], m.Colors[i], m.TexCoords[i]
		v.positions = append(v.positions, p[0], p[1], p[2])
		v.normals = append(v.normals, nm[0], nm[1], nm[2])
		v.texcoords = append(v.texcoords, uv[0], uv[1])
		v.selectors = append(v.selectors, float32(m.TexIndex[i]), 0)
		v.colors = append(v.colors, unit(c[0]), unit(c[1]), unit(c[2]), 255)
	}
	return v
}

// toRaylib copies the arrays into raylib-allocated memory so UnloadMesh can free them.
func (v vertices) toRaylib() rl.Mesh {
	n := len(v.positions) / 3
	return rl.Mesh{
		VertexCount:   int32(n),
		TriangleCount: int32(n / 3),
		Vertices:      cFloats(v.positions),
		Normals:       cFloats(v.normals),
		Texcoords:     cFloats(v.texcoords),
		Texcoords2:    cFloats(v.selectors),
		Colors:        cBytes(v.colors),
	}
}

func cFloats(src []float32) *float32 {
	p := (*float32)(rl.MemAlloc(uint32(len(src) * 4)))
	copy(unsafe.Slice(p, len(src)), src)
	return p
}

func cBytes(src []uint8) *uint8 {
	p := (*uint8)(rl.MemAlloc(uint32(len(src))))
	copy(unsafe.Slice(p, len(src)), src)
	return p
}

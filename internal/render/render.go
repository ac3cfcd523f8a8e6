package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/GBraga29/ProjetoPG/internal/camera"
	"github.com/GBraga29/ProjetoPG/internal/geom"
	"github.com/GBraga29/ProjetoPG/internal/scene"
	"github.com/GBraga29/ProjetoPG/internal/shader"
	"github.com/GBraga29/ProjetoPG/internal/texture"
)

// Logger is the subset of the app logger used here.
type Logger interface {
	Log(line string)
	Logf(format string, args ...any)
}

// customShader is a compiled shader pair with its uniform locations.
type customShader struct {
	shader rl.Shader
	locs   map[string]int32
}

// Renderer owns the GPU side of a scene. GPU resources are created lazily on the first
// Draw for each object, after the window and GL context exist.
type Renderer struct {
	log Logger

	meshes    map[*scene.Object]rl.Mesh
	materials map[*scene.Object]rl.Material
	textures  map[*texture.Texture]rl.Texture2D
	custom    map[*shader.Pair]*customShader
	shaded    map[*scene.Object]*shader.Pair
	prisms    map[float32][]geom.Triangle

	lit         rl.Shader
	litTextured rl.Shader
	shadersOK   bool

	light lighting
}

// New returns an empty renderer.
func New(log Logger) *Renderer {
	return &Renderer{
		log:       log,
		meshes:    make(map[*scene.Object]rl.Mesh),
		materials: make(map[*scene.Object]rl.Material),
		textures:  make(map[*texture.Texture]rl.Texture2D),
		custom:    make(map[*shader.Pair]*customShader),
		shaded:    make(map[*scene.Object]*shader.Pair),
		prisms:    make(map[float32][]geom.Triangle),
	}
}

// Draw renders s from cam. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(s *scene.Scene, cam *camera.Camera) {
	r.ensureLitShaders()
	r.light = sceneLighting(s)
	r.setLitUniforms(r.lit)
	r.setLitUniforms(r.litTextured)

	rl.BeginMode3D(toRaylib(cam))
	for _, o := range s.Objects() {
		switch {
		case o.Kind == scene.Prism:
			r.drawPrism(o, cam.Position)
		case o.Material.Kind == scene.MaterialShader:
			r.drawShaded(o)
		default:
			r.drawLit(o)
		}
	}
	rl.EndMode3D()
}

// Close releases every GPU resource the renderer created.
func (r *Renderer) Close() {
	for o, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, o)
	}
	for t, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, t)
	}
	for p, c := range r.custom {
		rl.UnloadShader(c.shader)
		delete(r.custom, p)
	}
	if r.shadersOK {
		rl.UnloadShader(r.lit)
		rl.UnloadShader(r.litTextured)
		r.shadersOK = false
	}
	clear(r.materials)
	clear(r.shaded)
}

func (r *Renderer) ensureLitShaders() {
	if r.shadersOK {
		return
	}
	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	r.litTextured = rl.LoadShaderFromMemory(litVS, litTexturedFS)
	r.shadersOK = true
	if r.log == nil {
		return
	}
	if !shader.Usable(rl.IsShaderValid(r.lit), rl.GetShaderLocation(r.lit, "lightDir")) {
		r.log.Log("lit shader did not compile, objects are drawn unlit")
	}
	if !shader.Usable(rl.IsShaderValid(r.litTextured), rl.GetShaderLocation(r.litTextured, "lightDir")) {
		r.log.Log("textured lit shader did not compile, objects are drawn unlit")
	}
}

// setLitUniforms pushes this frame's light to shader (cgo-safe: local arrays).
func (r *Renderer) setLitUniforms(sh rl.Shader) {
	if !rl.IsShaderValid(sh) {
		return
	}
	dir := r.light.dir.Array()
	col := r.light.color
	amb := r.light.ambient
	if loc := rl.GetShaderLocation(sh, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(sh, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(sh, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(sh, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(sh, "ambient"); loc >= 0 {
		rl.SetShaderValueV(sh, loc, amb[:], rl.ShaderUniformVec3, 1)
	}
}

// mesh returns the cached GPU mesh for o, generating it on first use.
func (r *Renderer) mesh(o *scene.Object) rl.Mesh {
	if m, ok := r.meshes[o]; ok {
		return m
	}
	g := o.Geometry
	var m rl.Mesh
	switch o.Kind {
	case scene.Cube:
		m = rl.GenMeshCube(g.Size.X, g.Size.Y, g.Size.Z)
	case scene.Sphere:
		m = rl.GenMeshSphere(g.Radius, g.Rings, g.Slices)
	case scene.Plane:
		m = rl.GenMeshPlane(g.Size.X, g.Size.Y, 1, 1)
	}
	r.meshes[o] = m
	return m
}

// texture uploads t once. The CPU pixels are left untouched.
func (r *Renderer) texture(t *texture.Texture, wrap scene.Wrap) rl.Texture2D {
	if tex, ok := r.textures[t]; ok {
		return tex
	}
	img := rl.NewImageFromImage(t.Image())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	if wrap == scene.WrapRepeat {
		rl.SetTextureWrap(tex, rl.WrapRepeat)
	} else {
		rl.SetTextureWrap(tex, rl.WrapClamp)
	}
	r.textures[t] = tex
	return tex
}

func (r *Renderer) drawLit(o *scene.Object) {
	mat := o.Material
	mtl, ok := r.materials[o]
	if !ok {
		mtl = rl.LoadMaterialDefault()
		if mat.Texture != nil {
			mtl.Shader = r.litTextured
			rl.SetMaterialTexture(&mtl, rl.MapAlbedo, r.texture(mat.Texture, mat.Wrap))
		} else {
			mtl.Shader = r.lit
		}
		r.materials[o] = mtl
	}
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = toColor(mat.Color, 1)
	}
	if mat.Texture != nil {
		if loc := rl.GetShaderLocation(mtl.Shader, "tiling"); loc >= 0 {
			tiling := [2]float32{nonZero(mat.RepeatU), nonZero(mat.RepeatV)}
			rl.SetShaderValueV(mtl.Shader, loc, tiling[:], rl.ShaderUniformVec2, 1)
		}
	}
	rl.DrawMesh(r.mesh(o), mtl, modelMatrix(o))
}

func (r *Renderer) drawShaded(o *scene.Object) {
	p := shader.OrInline(o.Material.Shader)
	if prev, ok := r.shaded[o]; ok && prev != p {
		if old, ok := r.custom[prev]; ok {
			rl.UnloadShader(old.shader)
			delete(r.custom, prev)
		}
	}
	r.shaded[o] = p
	cs := r.compile(p)
	mtl, ok := r.materials[o]
	if !ok {
		mtl = rl.LoadMaterialDefault()
	}
	mtl.Shader = cs.shader
	r.materials[o] = mtl
	for name, v := range o.Material.Uniforms {
		cs.set(name, v)
	}
	rl.DrawMesh(r.mesh(o), mtl, modelMatrix(o))
}

// compile compiles p once. A pair raylib cannot compile is replaced by the inline pair.
func (r *Renderer) compile(p *shader.Pair) *customShader {
	if cs, ok := r.custom[p]; ok {
		return cs
	}
	sh := rl.LoadShaderFromMemory(p.Vertex, p.Fragment)
	if !p.IsInline() && !shader.Usable(rl.IsShaderValid(sh), rl.GetShaderLocation(sh, scene.UniformTime)) {
		if r.log != nil {
			r.log.Logf("shader from %s did not compile, using inline shaders", p.Origin)
		}
		if rl.IsShaderValid(sh) {
			rl.UnloadShader(sh)
		}
		inline := shader.Inline()
		sh = rl.LoadShaderFromMemory(inline.Vertex, inline.Fragment)
	}
	cs := &customShader{shader: sh, locs: make(map[string]int32)}
	r.custom[p] = cs
	return cs
}

func (c *customShader) set(name string, v []float32) {
	loc, ok := c.locs[name]
	if !ok {
		loc = rl.GetShaderLocation(c.shader, name)
		c.locs[name] = loc
	}
	if loc < 0 {
		return
	}
	switch len(v) {
	case 1:
		rl.SetShaderValue(c.shader, loc, v, rl.ShaderUniformFloat)
	case 2:
		rl.SetShaderValueV(c.shader, loc, v, rl.ShaderUniformVec2, 1)
	case 3:
		rl.SetShaderValueV(c.shader, loc, v, rl.ShaderUniformVec3, 1)
	case 4:
		rl.SetShaderValueV(c.shader, loc, v, rl.ShaderUniformVec4, 1)
	}
}

// drawPrism draws the octahedron as translucent flat-shaded triangles lit on the CPU.
func (r *Renderer) drawPrism(o *scene.Object, eye geom.Vec3) {
	faces, ok := r.prisms[o.Geometry.Radius]
	if !ok {
		faces = geom.Octahedron(o.Geometry.Radius)
		r.prisms[o.Geometry.Radius] = faces
	}
	mat := o.Material
	for _, f := range faces {
		w := f.Transformed(o.Transform)
		c := r.light.phong(mat.Color, w.Normal(), eye.Sub(w.Centroid()), mat.Shininess)
		alpha := float32(1)
		if mat.Transparent() {
			alpha = mat.Opacity
		}
		rl.DrawTriangle3D(vec(w.A), vec(w.B), vec(w.C), rl.NewColor(channel(c.X), channel(c.Y), channel(c.Z), channel(alpha)))
	}
}

// modelMatrix composes raylib matrices for o: scale, Z, Y, X rotation, translate.
// raylib's plane lies in XZ; it is first stood up into XY so a -π/2 X rotation lays it flat.
func modelMatrix(o *scene.Object) rl.Matrix {
	tr := o.Transform
	m := rl.MatrixScale(tr.Scale.X, tr.Scale.Y, tr.Scale.Z)
	if o.Kind == scene.Plane {
		m = rl.MatrixMultiply(rl.MatrixRotateX(math32.Pi/2), m)
	}
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(tr.Rotation.Z))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(tr.Rotation.Y))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(tr.Rotation.X))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(tr.Position.X, tr.Position.Y, tr.Position.Z))
}

// toRaylib maps a camera to raylib's Camera3D. For orthographic cameras raylib takes the
// view height in Fovy and derives the width from the screen aspect.
func toRaylib(c *camera.Camera) rl.Camera3D {
	cam := rl.Camera3D{
		Position: vec(c.Position),
		Target:   vec(c.Target),
		Up:       vec(c.Up),
	}
	if c.Kind == camera.Orthographic {
		cam.Fovy = c.ViewHeight()
		cam.Projection = rl.CameraOrthographic
	} else {
		cam.Fovy = c.Fov
		cam.Projection = rl.CameraPerspective
	}
	return cam
}

func vec(v geom.Vec3) rl.Vector3 { return rl.NewVector3(v.X, v.Y, v.Z) }

func toColor(c scene.Color, alpha float32) rl.Color {
	rgba := c.ToRGBA()
	return rl.NewColor(rgba.R, rgba.G, rgba.B, channel(alpha))
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

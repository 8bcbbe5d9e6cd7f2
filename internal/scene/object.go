// Package scene owns renderable objects, their transforms and the per-frame
// render pass.
package scene

import (
	"mini-engine/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform and texture unit names expected by the object shader.
const (
	ModelUniform      = "model"
	SamplerUniform    = "tex"
	UseTextureUniform = "useTexture"

	TextureUnit = 0
)

// Transform is a position, an Euler rotation in degrees applied X then Y
// then Z, and a per-axis scale.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// DefaultTransform sits at the origin, unrotated, at unit scale.
func DefaultTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix composes T · Rx · Ry · Rz · S.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X()))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z()))).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Object is one renderable entity. The shader and texture are borrowed:
// whoever created them must keep them alive while the object exists.
// The model matrix is rebuilt by every mutator, so reads never lag.
type Object struct {
	transform Transform
	model     mgl32.Mat4

	mesh    graphics.Mesh
	shader  graphics.Uniforms
	texture graphics.Binder

	systems []namedSystem
}

func newObject(shader graphics.Uniforms, mesh graphics.Mesh, t Transform) *Object {
	o := &Object{
		transform: t,
		mesh:      mesh,
		shader:    shader,
	}
	o.rebuild()
	return o
}

func (o *Object) rebuild() {
	o.model = o.transform.Matrix()
}

func (o *Object) SetPosition(x, y, z float32) {
	o.transform.Position = mgl32.Vec3{x, y, z}
	o.rebuild()
}

func (o *Object) AddPosition(dx, dy, dz float32) {
	o.transform.Position = o.transform.Position.Add(mgl32.Vec3{dx, dy, dz})
	o.rebuild()
}

// SetRotation sets Euler angles in degrees. Values are not wrapped.
func (o *Object) SetRotation(x, y, z float32) {
	o.transform.Rotation = mgl32.Vec3{x, y, z}
	o.rebuild()
}

func (o *Object) AddRotation(dx, dy, dz float32) {
	o.transform.Rotation = o.transform.Rotation.Add(mgl32.Vec3{dx, dy, dz})
	o.rebuild()
}

func (o *Object) SetScale(x, y, z float32) {
	o.transform.Scale = mgl32.Vec3{x, y, z}
	o.rebuild()
}

func (o *Object) AddScale(dx, dy, dz float32) {
	o.transform.Scale = o.transform.Scale.Add(mgl32.Vec3{dx, dy, dz})
	o.rebuild()
}

// SetTransform replaces all three vectors at once.
func (o *Object) SetTransform(t Transform) {
	o.transform = t
	o.rebuild()
}

func (o *Object) Position() mgl32.Vec3    { return o.transform.Position }
func (o *Object) Rotation() mgl32.Vec3    { return o.transform.Rotation }
func (o *Object) Scale() mgl32.Vec3       { return o.transform.Scale }
func (o *Object) Transform() Transform    { return o.transform }
func (o *Object) ModelMatrix() mgl32.Mat4 { return o.model }

func (o *Object) Mesh() graphics.Mesh       { return o.mesh }
func (o *Object) Shader() graphics.Uniforms { return o.shader }
func (o *Object) Texture() graphics.Binder  { return o.texture }

// SetTexture attaches a texture, or detaches it when tex is nil.
func (o *Object) SetTexture(tex graphics.Binder) {
	o.texture = tex
}

// Render uploads the model matrix, binds the texture to unit 0 when one is
// attached, binds the mesh and draws it as a triangle list. The shader,
// vertex array and texture unit bindings are left changed.
func (o *Object) Render(p graphics.Pipeline) {
	o.shader.Use()
	o.shader.SetMatrix4(ModelUniform, &o.model[0])

	if o.texture != nil {
		o.texture.Bind(TextureUnit)
		o.shader.SetInt(SamplerUniform, TextureUnit)
		o.shader.SetBool(UseTextureUniform, true)
	} else {
		o.shader.SetBool(UseTextureUniform, false)
	}

	p.BindVertexArray(o.mesh.VAO)
	p.DrawTriangles(o.mesh.VertexCount)
}

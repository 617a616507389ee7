/*
Package triangle draws a single flat-colored triangle into a gl.Context from
golang.org/x/mobile/gl.  It is the smallest useful program: one vertex buffer,
one shader program, a color uniform and a transform uniform.

All methods must be called on the goroutine that owns the gl.Context.

	r, err := triangle.New(glctx)
	if err != nil {
		log.Printf("error creating triangle: %v", err)
		return
	}
	r.SetTransform(mvp)
	r.Draw()
*/
package triangle

import (
	"encoding/binary"
	"fmt"
	"image/color"

	"github.com/bmatsuo/mobile-gl-triangle/xform"
	"golang.org/x/image/colornames"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"
)

const (
	// CoordsPerVertex is the number of float32 coordinates in each vertex.
	CoordsPerVertex = 3

	// VertexStride is the size in bytes of one vertex in the vertex buffer.
	VertexStride = CoordsPerVertex * 4

	// VertexCount is the number of vertices submitted by Draw.
	VertexCount = len(Vertices) / CoordsPerVertex
)

// Vertices holds the triangle corners in model space.
var Vertices = [9]float32{
	0.0, 0.5, 0.0, // top
	-0.5, -0.5, 0.0, // bottom left
	0.5, -0.5, 0.0, // bottom right
}

// DefaultColor is the fill color used by New.
var DefaultColor color.Color = colornames.Lime

// Names of the shader inputs looked up on each draw.
const (
	attribPosition = "vPosition"
	uniformColor   = "vColor"
	uniformMVP     = "uMVPMatrix"
)

// Renderer owns the GL program and vertex buffer for one triangle.
type Renderer struct {
	gl        gl.Context
	program   gl.Program
	buf       gl.Buffer
	color     [4]float32
	transform [16]float32
}

// New compiles the default shaders and uploads the triangle geometry into
// glctx.  The triangle is filled with DefaultColor.
func New(glctx gl.Context) (*Renderer, error) {
	return NewColor(glctx, DefaultColor)
}

// NewColor is like New but fills the triangle with c.
func NewColor(glctx gl.Context, c color.Color) (*Renderer, error) {
	return NewFromSource(glctx, VertexShader, FragmentShader, c)
}

// NewFromSource is like NewColor but compiles the given shader sources.  The
// sources must declare the vPosition attribute and the vColor and uMVPMatrix
// uniforms.
func NewFromSource(glctx gl.Context, vertexSrc, fragmentSrc string, c color.Color) (*Renderer, error) {
	r := &Renderer{
		gl:        glctx,
		color:     colorVec4(c),
		transform: xform.Identity(),
	}

	data := f32.Bytes(binary.LittleEndian, Vertices[:]...)

	program, err := glutil.CreateProgram(r.gl, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("triangle program: %v", err)
	}
	r.program = program

	r.buf = r.gl.CreateBuffer()
	r.gl.BindBuffer(gl.ARRAY_BUFFER, r.buf)
	r.gl.BufferData(gl.ARRAY_BUFFER, data, gl.STATIC_DRAW)

	return r, nil
}

// SetTransform stores a column-major model-view-projection matrix which is
// uploaded by the next call to Draw.
func (r *Renderer) SetTransform(m [16]float32) {
	r.transform = m
}

// SetTransformMat4 is like SetTransform but takes a row-major f32.Mat4.
func (r *Renderer) SetTransformMat4(m *f32.Mat4) {
	xform.Serialize(r.transform[:], m)
}

// Transform returns the matrix that the next Draw will upload.
func (r *Renderer) Transform() [16]float32 {
	return r.transform
}

// Color returns the fill color as RGBA components in [0, 1].
func (r *Renderer) Color() [4]float32 {
	return r.color
}

// Draw renders the triangle with the current transform.
func (r *Renderer) Draw() {
	r.gl.UseProgram(r.program)

	// locations are resolved by name every frame
	position := r.gl.GetAttribLocation(r.program, attribPosition)
	fill := r.gl.GetUniformLocation(r.program, uniformColor)
	mvp := r.gl.GetUniformLocation(r.program, uniformMVP)

	r.gl.EnableVertexAttribArray(position)
	r.gl.BindBuffer(gl.ARRAY_BUFFER, r.buf)
	r.gl.VertexAttribPointer(position, CoordsPerVertex, gl.FLOAT, false, VertexStride, 0)

	r.gl.Uniform4f(fill, r.color[0], r.color[1], r.color[2], r.color[3])
	r.gl.UniformMatrix4fv(mvp, r.transform[:])

	r.gl.DrawArrays(gl.TRIANGLES, 0, VertexCount)

	r.gl.DisableVertexAttribArray(position)
}

// Release deletes the GL objects held by r.  The Renderer must not be drawn
// after Release.
func (r *Renderer) Release() {
	if r.gl == nil {
		return
	}
	if r.buf.Value != 0 {
		r.gl.DeleteBuffer(r.buf)
		r.buf = gl.Buffer{}
	}
	if r.program.Value != 0 {
		r.gl.DeleteProgram(r.program)
		r.program = gl.Program{}
	}
}

func colorVec4(c color.Color) [4]float32 {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return [4]float32{
		float32(n.R) / 0xffff,
		float32(n.G) / 0xffff,
		float32(n.B) / 0xffff,
		float32(n.A) / 0xffff,
	}
}

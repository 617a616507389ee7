// Package xform builds the 4x4 matrices handed to GL shaders.
//
// Matrices are f32.Mat4 values from golang.org/x/mobile/exp/f32, whose vectors
// are rows.  GL expects column-major data, so Serialize transposes while
// flattening.
package xform

import (
	"github.com/chewxy/math32"
	"golang.org/x/mobile/exp/f32"
)

// Identity returns the serialized identity matrix.
func Identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective sets m to a perspective projection with a vertical field of
// view fovy, matching gluPerspective.
func Perspective(m *f32.Mat4, fovy f32.Radian, aspect, near, far float32) {
	f := 1 / math32.Tan(float32(fovy)/2)
	depth := near - far
	*m = f32.Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / depth, 2 * far * near / depth},
		{0, 0, -1, 0},
	}
}

// LookAt is like f32.Mat4.LookAt but the result is transposed so that it
// composes with Perspective.
func LookAt(m *f32.Mat4, eye, center, up *f32.Vec3) {
	m.LookAt(eye, center, up)
	Transpose(m)
}

// Transpose performs an in-place matrix transpose of m.
func Transpose(m *f32.Mat4) {
	*m = f32.Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// ViewProjection stores projection * view in dst.  dst may alias either
// argument.
func ViewProjection(dst, projection, view *f32.Mat4) {
	dst.Mul(projection, view)
}

// Serialize writes m into dst in column-major order and returns dst.  If
// len(dst) is less than 16 a new slice is allocated.
func Serialize(dst []float32, m *f32.Mat4) []float32 {
	if len(dst) < 16 {
		dst = make([]float32, 16)
	}
	dst = dst[:16]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[col*4+row] = m[row][col]
		}
	}
	return dst
}

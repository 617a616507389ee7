package triangle

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// recorder is a gl.Context that logs the calls made by this package.  Calls
// to methods it does not override panic through the nil embedded Context.
type recorder struct {
	gl.Context

	calls []string
	next  uint32

	failCompile bool
	failLink    bool

	buffers   map[gl.Buffer][]byte
	bound     gl.Buffer
	uniform4  map[gl.Uniform][4]float32
	uniformM4 map[gl.Uniform][]float32
	pointer   struct {
		size, stride, offset int
		ty                   gl.Enum
	}
	deletedPrograms int
	deletedBuffers  int
}

func newRecorder() *recorder {
	return &recorder{
		buffers:   map[gl.Buffer][]byte{},
		uniform4:  map[gl.Uniform][4]float32{},
		uniformM4: map[gl.Uniform][]float32{},
	}
}

func (r *recorder) log(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) id() uint32 {
	r.next++
	return r.next
}

// count returns the number of recorded calls with the given name.
func (r *recorder) count(name string) int {
	var n int
	for _, c := range r.calls {
		if c == name || len(c) > len(name) && c[:len(name)+1] == name+"(" {
			n++
		}
	}
	return n
}

func (r *recorder) CreateProgram() gl.Program {
	r.log("CreateProgram")
	return gl.Program{Init: true, Value: r.id()}
}

func (r *recorder) CreateShader(ty gl.Enum) gl.Shader {
	r.log("CreateShader")
	return gl.Shader{Value: r.id()}
}

func (r *recorder) ShaderSource(s gl.Shader, src string) { r.log("ShaderSource") }
func (r *recorder) CompileShader(s gl.Shader)            { r.log("CompileShader") }

func (r *recorder) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if r.failCompile {
		return 0
	}
	return 1
}

func (r *recorder) GetShaderInfoLog(s gl.Shader) string { return "syntax error" }

func (r *recorder) AttachShader(p gl.Program, s gl.Shader) { r.log("AttachShader") }
func (r *recorder) LinkProgram(p gl.Program)               { r.log("LinkProgram") }
func (r *recorder) DeleteShader(s gl.Shader)               { r.log("DeleteShader") }

func (r *recorder) GetProgrami(p gl.Program, pname gl.Enum) int {
	if r.failLink {
		return 0
	}
	return 1
}

func (r *recorder) GetProgramInfoLog(p gl.Program) string { return "link error" }

func (r *recorder) DeleteProgram(p gl.Program) {
	r.log("DeleteProgram")
	r.deletedPrograms++
}

func (r *recorder) CreateBuffer() gl.Buffer {
	r.log("CreateBuffer")
	return gl.Buffer{Value: r.id()}
}

func (r *recorder) BindBuffer(target gl.Enum, b gl.Buffer) {
	r.log("BindBuffer")
	r.bound = b
}

func (r *recorder) BufferData(target gl.Enum, src []byte, usage gl.Enum) {
	r.log("BufferData")
	r.buffers[r.bound] = append([]byte(nil), src...)
}

func (r *recorder) DeleteBuffer(b gl.Buffer) {
	r.log("DeleteBuffer")
	r.deletedBuffers++
}

func (r *recorder) UseProgram(p gl.Program) { r.log("UseProgram") }

func (r *recorder) GetAttribLocation(p gl.Program, name string) gl.Attrib {
	r.log("GetAttribLocation(%s)", name)
	return gl.Attrib{Value: 7}
}

func (r *recorder) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	r.log("GetUniformLocation(%s)", name)
	switch name {
	case uniformColor:
		return gl.Uniform{Value: 1}
	case uniformMVP:
		return gl.Uniform{Value: 2}
	}
	return gl.Uniform{Value: -1}
}

func (r *recorder) EnableVertexAttribArray(a gl.Attrib)  { r.log("EnableVertexAttribArray") }
func (r *recorder) DisableVertexAttribArray(a gl.Attrib) { r.log("DisableVertexAttribArray") }

func (r *recorder) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	r.log("VertexAttribPointer")
	r.pointer.size = size
	r.pointer.ty = ty
	r.pointer.stride = stride
	r.pointer.offset = offset
}

func (r *recorder) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	r.log("Uniform4f")
	r.uniform4[dst] = [4]float32{v0, v1, v2, v3}
}

func (r *recorder) UniformMatrix4fv(dst gl.Uniform, src []float32) {
	r.log("UniformMatrix4fv")
	r.uniformM4[dst] = append([]float32(nil), src...)
}

func (r *recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.log("DrawArrays(%d,%d,%d)", mode, first, count)
}

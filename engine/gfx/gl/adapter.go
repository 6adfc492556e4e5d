package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jfehr/glint/engine/assets"
	"github.com/jfehr/glint/engine/colors"
	"github.com/jfehr/glint/engine/gfx"
	"github.com/jfehr/glint/engine/logger"
)

// Adapter is the GL-backed gfx.RenderAdapter. It owns every GPU resource it
// creates: one shader program, one VAO/VBO/EBO triangle mesh, and the single
// matrix uniform slot written once per frame.
type Adapter struct {
	log       *logger.Logger
	shaderDir string

	width  int
	height int

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	wvpLoc  int32
	tintLoc int32

	indexCount int32
}

// NewAdapter prepares an uninitialized adapter. Initialize must be called on
// the thread that owns the GL context before any draw call.
func NewAdapter(log *logger.Logger, shaderDir string) *Adapter {
	log.Log(logger.Info, "GL render adapter created")
	return &Adapter{log: log, shaderDir: shaderDir}
}

// Initialize compiles the shader pair, builds the static triangle mesh
// centered on the given client dimensions, and fixes the pipeline state
// (no depth test, no culling, no blending). Any failure here is fatal for
// the session; the caller must abort startup.
func (a *Adapter) Initialize(width, height int) error {
	a.log.Log(logger.Info, "initializing GL render adapter")

	a.width = width
	a.height = height

	vs, err := assets.LoadShader(a.shaderDir, "triangle.vert")
	if err != nil {
		a.log.Errorf("vertex shader load failed: %v", err)
		return err
	}
	fs, err := assets.LoadShader(a.shaderDir, "triangle.frag")
	if err != nil {
		a.log.Errorf("fragment shader load failed: %v", err)
		return err
	}

	a.program, err = makeProgram(vs, fs)
	if err != nil {
		a.log.Errorf("shader program build failed: %v", err)
		return err
	}

	a.wvpLoc = gl.GetUniformLocation(a.program, gl.Str("uWorldViewProj\x00"))
	a.tintLoc = gl.GetUniformLocation(a.program, gl.Str("uTint\x00"))
	if a.wvpLoc < 0 || a.tintLoc < 0 {
		a.Cleanup()
		err := fmt.Errorf("shader uniforms missing (uWorldViewProj=%d, uTint=%d)", a.wvpLoc, a.tintLoc)
		a.log.Errorf("%v", err)
		return err
	}

	verts := flatten(triangleVertices(width, height))
	indices := triangleIndices()
	a.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &a.vao)
	gl.BindVertexArray(a.vao)

	gl.GenBuffers(1, &a.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, a.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &a.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, a.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices[:]), gl.STATIC_DRAW)

	// layout(location = 0) in vec3 aPos;
	// layout(location = 1) in vec4 aColor;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, gfx.VertexStride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, gfx.VertexStride, unsafe.Pointer(uintptr(3*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.Viewport(0, 0, int32(width), int32(height))

	a.log.Log(logger.Info, "GL render adapter initialized")
	return nil
}

// Resize stores the new client dimensions and updates the viewport. The mesh
// keeps the dimensions it was built with.
func (a *Adapter) Resize(width, height int) {
	a.width = width
	a.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame is a hook for per-frame setup; clearing and target binding are
// owned by the application shell.
func (a *Adapter) BeginFrame() {}

// EndFrame is a hook for per-frame teardown; presentation is owned by the
// application shell.
func (a *Adapter) EndFrame() {}

// DrawTriangle uploads the transform into the single matrix slot, written in
// the shaders' row-vector convention, and issues one indexed draw of the
// static mesh.
func (a *Adapter) DrawTriangle(transform mgl32.Mat4, color colors.Color) {
	gl.UseProgram(a.program)

	m := gfx.ShaderMatrix(transform)
	gl.UniformMatrix4fv(a.wvpLoc, 1, false, &m[0])
	gl.Uniform4fv(a.tintLoc, 1, &color[0])

	gl.BindVertexArray(a.vao)
	gl.DrawElements(gl.TRIANGLES, a.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Cleanup releases the adapter's GPU resources. Handles are zeroed so a
// second call releases nothing.
func (a *Adapter) Cleanup() {
	if a.program == 0 && a.vao == 0 && a.vbo == 0 && a.ebo == 0 {
		return
	}
	a.log.Log(logger.Info, "cleaning up GL render adapter")

	if a.ebo != 0 {
		gl.DeleteBuffers(1, &a.ebo)
		a.ebo = 0
	}
	if a.vbo != 0 {
		gl.DeleteBuffers(1, &a.vbo)
		a.vbo = 0
	}
	if a.vao != 0 {
		gl.DeleteVertexArrays(1, &a.vao)
		a.vao = 0
	}
	if a.program != 0 {
		gl.DeleteProgram(a.program)
		a.program = 0
	}
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}

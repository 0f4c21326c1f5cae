// Package renderer draws evaluated scene objects with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/affinity/internal/engine/scene"
	"github.com/Faultbox/affinity/internal/engine/shader"
	"github.com/Faultbox/affinity/internal/engine/transform"
	"github.com/Faultbox/affinity/internal/logger"
	"github.com/Faultbox/affinity/pkg/math"
)

// Material names understood by Submit.
const (
	MaterialLit      = "lit"
	MaterialEmissive = "emissive"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Renderer draws cube objects and implements scene.FrameSink.
type Renderer struct {
	config Config

	lit      *shader.Program
	emissive *shader.Program

	cubeVAO     uint32
	cubeVBO     uint32
	cubeEBO     uint32
	cubeIndices int32

	frame     scene.Frame
	drawCalls int
}

var _ scene.FrameSink = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	if err := r.createPrograms(); err != nil {
		r.Close()
		return nil, err
	}
	r.createCube(CubeMesh())

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.cubeEBO != 0 {
		gl.DeleteBuffers(1, &r.cubeEBO)
	}
	if r.lit != nil {
		r.lit.Delete()
	}
	if r.emissive != nil {
		r.emissive.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.drawCalls = 0
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// DrawCalls returns the number of draws since Begin.
func (r *Renderer) DrawCalls() int {
	return r.drawCalls
}

// ReadPixels reads back the default framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

// BeginFrame uploads the per-frame light and eye uniforms. Lighting runs in
// view space, so the eye sits at the origin.
func (r *Renderer) BeginFrame(f scene.Frame) error {
	r.frame = f
	r.lit.Use()
	r.lit.SetVec3("u_light_pos", f.Light.ViewPosition(f.View))
	r.lit.SetVec3("u_light_color", f.Light.Radiance())
	r.lit.SetVec3("u_view_pos", math.Vec3{})
	return nil
}

// Submit draws one object with the matrices evaluated for this frame.
func (r *Renderer) Submit(obj *transform.Object, set scene.FrameMatrixSet) error {
	mode, err := PrimitiveMode(obj.Primitive)
	if err != nil {
		return err
	}
	count := int32(obj.VertexCount)
	if count == 0 {
		count = r.cubeIndices
	}
	if count > r.cubeIndices {
		return fmt.Errorf("vertex count %d exceeds cube mesh (%d)", count, r.cubeIndices)
	}

	u := set.Uniforms()
	switch obj.Material {
	case "", MaterialLit:
		r.lit.Use()
		r.lit.SetMat4("u_mvp_mat", u.MVP)
		r.lit.SetMat4("u_model_view_mat", u.ModelView)
		r.lit.SetMat3("u_normal_mat", u.Normal)
		r.lit.SetVec3("u_color", obj.Color)
	case MaterialEmissive:
		r.emissive.Use()
		r.emissive.SetMat4("u_mvp_mat", u.MVP)
		r.emissive.SetVec3("u_color", r.frame.Light.Color)
	default:
		return fmt.Errorf("unknown material %q", obj.Material)
	}

	gl.BindVertexArray(r.cubeVAO)
	gl.DrawElements(mode, count, gl.UNSIGNED_SHORT, nil)
	r.drawCalls++
	return nil
}

func (r *Renderer) createPrograms() error {
	var err error
	r.lit, err = shader.NewProgram(MaterialLit, litVertexShader, litFragmentShader)
	if err != nil {
		return err
	}
	if err := r.lit.Require("u_mvp_mat", "u_model_view_mat", "u_normal_mat",
		"u_light_pos", "u_light_color", "u_view_pos", "u_color"); err != nil {
		return err
	}

	r.emissive, err = shader.NewProgram(MaterialEmissive, emissiveVertexShader, emissiveFragmentShader)
	if err != nil {
		return err
	}
	if err := r.emissive.Require("u_mvp_mat", "u_color"); err != nil {
		return err
	}

	logger.Debug("shader programs created",
		zap.Uint32("lit", r.lit.ID),
		zap.Uint32("emissive", r.emissive.ID),
	)
	return nil
}

// createCube uploads the cube mesh shared by every object.
func (r *Renderer) createCube(m Mesh) {
	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.BindVertexArray(r.cubeVAO)

	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.cubeEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.cubeEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride*4, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, vertexStride*4, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.cubeIndices = int32(len(m.Indices))
	logger.Debug("cube mesh created",
		zap.Uint32("vao", r.cubeVAO),
		zap.Int("vertices", m.VertexCount()),
		zap.Int32("indices", r.cubeIndices),
	)
}

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Streaming buffer capacities, in vertices. A frame draws two road
// bands, a few dozen lane dashes, two signal heads and the active
// vehicles; rects use 6 vertices each.
const (
	maxRectVerts = 4096
	maxLampVerts = 64
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	rectProg uint32
	rectVAO  uint32
	rectVBO  uint32
	rectURes int32

	lampProg   uint32
	lampVAO    uint32
	lampVBO    uint32
	lampURes   int32
	lampUScale int32

	// Reusable client-side buffers to avoid per-frame heap allocations.
	rectBuf []float32
	lampBuf []float32
}

func NewRenderer() (*Renderer, error) {
	rectProg, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	lampProg, err := linkProgram(lampVertSrc, lampFragSrc)
	if err != nil {
		gl.DeleteProgram(rectProg)
		return nil, fmt.Errorf("lamp program: %w", err)
	}

	r := &Renderer{
		rectProg: rectProg,
		lampProg: lampProg,
	}

	// Rect VAO/VBO: streaming triangles, 6 floats per vertex (pos + rgba).
	rectStride := int32(6 * 4)
	gl.GenVertexArrays(1, &r.rectVAO)
	gl.GenBuffers(1, &r.rectVBO)
	gl.BindVertexArray(r.rectVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
	gl.BufferData(gl.ARRAY_BUFFER, maxRectVerts*int(rectStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, rectStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, rectStride, glOffset(2*4))

	gl.UseProgram(rectProg)
	r.rectURes = gl.GetUniformLocation(rectProg, gl.Str("uResolution\x00"))

	// Lamp VAO/VBO: streaming points, 7 floats per vertex (pos + size + rgba).
	lampStride := int32(7 * 4)
	gl.GenVertexArrays(1, &r.lampVAO)
	gl.GenBuffers(1, &r.lampVBO)
	gl.BindVertexArray(r.lampVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lampVBO)
	gl.BufferData(gl.ARRAY_BUFFER, maxLampVerts*int(lampStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lampStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, lampStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, lampStride, glOffset(3*4))

	gl.UseProgram(lampProg)
	r.lampURes = gl.GetUniformLocation(lampProg, gl.Str("uResolution\x00"))
	r.lampUScale = gl.GetUniformLocation(lampProg, gl.Str("uScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.rectVBO, r.lampVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.rectVAO, r.lampVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.rectProg, r.lampProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.rectBuf = r.rectBuf[:0]
	r.lampBuf = r.lampBuf[:0]
}

// PushRect queues an axis-aligned rectangle in world units.
func (r *Renderer) PushRect(x, y, w, h float32, cr, cg, cb, ca float32) {
	x2, y2 := x+w, y+h
	for _, p := range [6][2]float32{
		{x, y}, {x2, y}, {x2, y2},
		{x, y}, {x2, y2}, {x, y2},
	} {
		r.rectBuf = append(r.rectBuf, p[0], p[1], cr, cg, cb, ca)
	}
}

// PushLamp queues one circular lamp centered at (x, y) with the given
// diameter in world units.
func (r *Renderer) PushLamp(x, y, size float32, cr, cg, cb, ca float32) {
	r.lampBuf = append(r.lampBuf, x, y, size, cr, cg, cb, ca)
}

// Flush uploads the queued geometry and draws it. worldW/worldH are
// the world rectangle mapped to the window; fbW scales lamp point
// sizes on high-DPI framebuffers.
func (r *Renderer) Flush(worldW, worldH float64, fbW int) {
	if n := len(r.rectBuf) / 6; n > 0 {
		if n > maxRectVerts {
			n = maxRectVerts
		}
		gl.UseProgram(r.rectProg)
		gl.BindVertexArray(r.rectVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.rectVBO)
		gl.Uniform2f(r.rectURes, float32(worldW), float32(worldH))
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*6*4, gl.Ptr(&r.rectBuf[0]))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	}
	if n := len(r.lampBuf) / 7; n > 0 {
		if n > maxLampVerts {
			n = maxLampVerts
		}
		gl.UseProgram(r.lampProg)
		gl.BindVertexArray(r.lampVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.lampVBO)
		gl.Uniform2f(r.lampURes, float32(worldW), float32(worldH))
		gl.Uniform1f(r.lampUScale, float32(float64(fbW)/worldW))
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*7*4, gl.Ptr(&r.lampBuf[0]))
		gl.DrawArrays(gl.POINTS, 0, int32(n))
	}
	gl.BindVertexArray(0)
}

package main

import (
	gl "github.com/go-gl/gl/v3.1/gles2"
	"unsafe"
)

const (
	canvasVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    };` + "\x00"
	canvasFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    uniform vec3 u_bg;
    uniform vec3 u_ink;
    varying vec2 v_texcoord;
    void main(void) {
      float a = texture2D(u_tex, v_texcoord).a;
      gl_FragColor = vec4(mix(u_bg, u_ink, a), 1.0);
    };` + "\x00"
)

// Trace colors: dark teal ink sinking into a neutral gray field.
var (
	canvasBackground = [3]float32{128.0 / 255.0, 128.0 / 255.0, 128.0 / 255.0}
	canvasInk        = [3]float32{0.0, 70.0 / 255.0, 70.0 / 255.0}
)

type quadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// CanvasDisplay draws the ink canvas as a window-filling quad. The
// ink bytes go up as an alpha texture every frame and the fragment
// shader mixes background toward ink by intensity. Nearest filtering
// keeps cells as crisp blocks when the window scales them up.
type CanvasDisplay struct {
	canvas     *Canvas
	tex        Texture
	program    Program
	a_position int32
	a_texcoord int32
	u_tex      int32
	u_bg       int32
	u_ink      int32
	vertices   [6]quadVertex
}

func CreateCanvasDisplay(canvas *Canvas) (*CanvasDisplay, error) {
	program, err := CreateProgram(canvasVertexShader, canvasFragmentShader)
	if err != nil {
		return nil, err
	}
	tex := CreateAlphaTexture(canvas.side, canvas.side, canvas.ink, gl.NEAREST)
	cd := &CanvasDisplay{
		canvas:     canvas,
		tex:        tex,
		program:    program,
		a_position: program.GetAttribLocation("a_position\x00"),
		a_texcoord: program.GetAttribLocation("a_texcoord\x00"),
		u_tex:      program.GetUniformLocation("u_tex\x00"),
		u_bg:       program.GetUniformLocation("u_bg\x00"),
		u_ink:      program.GetUniformLocation("u_ink\x00"),
	}
	// Texture row zero is the top of the trace, so the quad maps
	// t=0 to the top edge.
	quad := [4]quadVertex{
		{position: [2]float32{-1, 1}, texcoord: [2]float32{0, 0}},
		{position: [2]float32{-1, -1}, texcoord: [2]float32{0, 1}},
		{position: [2]float32{1, -1}, texcoord: [2]float32{1, 1}},
		{position: [2]float32{1, 1}, texcoord: [2]float32{1, 0}},
	}
	cd.vertices = [6]quadVertex{quad[0], quad[1], quad[2], quad[2], quad[3], quad[0]}
	return cd, nil
}

func (cd *CanvasDisplay) Render() {
	cd.program.Use()
	cd.tex.Update(cd.canvas.side, cd.canvas.side, cd.canvas.ink)
	var activeTexture int32
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &activeTexture)
	gl.Uniform1i(cd.u_tex, activeTexture-gl.TEXTURE0)
	gl.Uniform3f(cd.u_bg, canvasBackground[0], canvasBackground[1], canvasBackground[2])
	gl.Uniform3f(cd.u_ink, canvasInk[0], canvasInk[1], canvasInk[2])
	gl.EnableVertexAttribArray(uint32(cd.a_position))
	gl.VertexAttribPointer(
		uint32(cd.a_position), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(quadVertex{})),
		gl.Ptr(&cd.vertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(cd.a_texcoord))
	gl.VertexAttribPointer(
		uint32(cd.a_texcoord), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(quadVertex{})),
		gl.Ptr(&cd.vertices[0].texcoord[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cd.vertices)))
	gl.DisableVertexAttribArray(uint32(cd.a_position))
	gl.DisableVertexAttribArray(uint32(cd.a_texcoord))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (cd *CanvasDisplay) Close() error {
	cd.tex.Close()
	return cd.program.Close()
}

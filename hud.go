package main

import (
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	hudVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    };` + "\x00"
	hudFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).a);
    };` + "\x00"
)

const (
	hudAtlasCols = 16
	hudAtlasRows = 6
	hudRuneBase  = ' '
	hudScale     = 2
	hudPadding   = 4
)

// HUD renders the status line with the fixed 7x13 face, one textured
// quad per glyph, additively blended over the trace at the bottom of
// the window. The glyph atlas is built once from the face's mask.
type HUD struct {
	tex         Texture
	program     Program
	a_position  int32
	a_texcoord  int32
	u_transform int32
	u_tex       int32
	tileW       int
	tileH       int
	vertices    []quadVertex
}

// hudAtlas rasterizes the printable ASCII range into a fixed grid.
func hudAtlas() (*image.Alpha, int, int) {
	face := basicfont.Face7x13
	tileW := face.Advance
	tileH := face.Ascent + face.Descent
	atlas := image.NewAlpha(image.Rect(0, 0, hudAtlasCols*tileW, hudAtlasRows*tileH))
	for i := 0; i < hudAtlasCols*hudAtlasRows; i++ {
		r := rune(hudRuneBase + i)
		if r > '~' {
			break
		}
		col := i % hudAtlasCols
		row := i / hudAtlasCols
		dot := fixed.Point26_6{
			X: fixed.I(col * tileW),
			Y: fixed.I(row*tileH + face.Ascent),
		}
		dstRect, mask, maskPt, _, ok := face.Glyph(dot, r)
		if !ok || mask == nil {
			continue
		}
		draw.Draw(atlas, dstRect, mask, maskPt, draw.Src)
	}
	return atlas, tileW, tileH
}

func CreateHUD() (*HUD, error) {
	program, err := CreateProgram(hudVertexShader, hudFragmentShader)
	if err != nil {
		return nil, err
	}
	atlas, tileW, tileH := hudAtlas()
	size := atlas.Bounds().Size()
	hud := &HUD{
		tex:         CreateAlphaTexture(size.X, size.Y, atlas.Pix, gl.NEAREST),
		program:     program,
		a_position:  program.GetAttribLocation("a_position\x00"),
		a_texcoord:  program.GetAttribLocation("a_texcoord\x00"),
		u_transform: program.GetUniformLocation("u_transform\x00"),
		u_tex:       program.GetUniformLocation("u_tex\x00"),
		tileW:       tileW,
		tileH:       tileH,
		vertices:    make([]quadVertex, 0, 6*256),
	}
	return hud, nil
}

func (hud *HUD) drawRune(x, y int, r rune) {
	if r < hudRuneBase || r > '~' {
		r = '?'
	}
	i := int(r - hudRuneBase)
	col := i % hudAtlasCols
	row := i / hudAtlasCols
	x0 := float32(x)
	x1 := float32(x + 1)
	y0 := float32(-y)
	y1 := float32(-y - 1)
	s0 := float32(col) / hudAtlasCols
	s1 := s0 + 1.0/hudAtlasCols
	t0 := float32(row) / hudAtlasRows
	t1 := t0 + 1.0/hudAtlasRows
	hud.vertices = append(hud.vertices,
		quadVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
		quadVertex{position: [2]float32{x0, y1}, texcoord: [2]float32{s0, t1}},
		quadVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		quadVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		quadVertex{position: [2]float32{x1, y0}, texcoord: [2]float32{s1, t0}},
		quadVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}})
}

// Render draws one line of text in the bottom left corner.
func (hud *HUD) Render(text string) {
	hud.vertices = hud.vertices[:0]
	x := 0
	for _, r := range text {
		hud.drawRune(x, 0, r)
		x++
	}
	if len(hud.vertices) == 0 {
		return
	}
	hud.program.Use()
	hud.tex.Bind()
	var activeTexture int32
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &activeTexture)
	gl.Uniform1i(hud.u_tex, activeTexture-gl.TEXTURE0)
	gl.EnableVertexAttribArray(uint32(hud.a_position))
	gl.VertexAttribPointer(
		uint32(hud.a_position), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(quadVertex{})),
		gl.Ptr(&hud.vertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(hud.a_texcoord))
	gl.VertexAttribPointer(
		uint32(hud.a_texcoord), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(quadVertex{})),
		gl.Ptr(&hud.vertices[0].texcoord[0]))
	ux := 2.0 / float32(fbWidth)
	uy := 2.0 / float32(fbHeight)
	mScale := mgl.Scale3D(ux*float32(hud.tileW*hudScale), uy*float32(hud.tileH*hudScale), 1)
	tx := -1.0 + ux*hudPadding
	ty := -1.0 + uy*float32(hudPadding+hud.tileH*hudScale)
	mTranslate := mgl.Translate3D(tx, ty, 0)
	mTransform := mTranslate.Mul4(mScale)
	gl.UniformMatrix4fv(hud.u_transform, 1, false, &mTransform[0])
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(hud.vertices)))
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(uint32(hud.a_position))
	gl.DisableVertexAttribArray(uint32(hud.a_texcoord))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (hud *HUD) Close() error {
	hud.tex.Close()
	return hud.program.Close()
}

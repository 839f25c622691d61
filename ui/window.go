// Package ui renders a running Console to a window via OpenGL/GLFW and
// feeds keyboard state back into the primary joypad.
package ui

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/nesforge/gones/nes"
)

// Shaders for a single full-screen textured quad.
const (
	vertexShader = `
  #version 330

  attribute vec3 position;
  attribute vec2 uv;
  varying vec2 vuv;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vuv = uv;
  }
  ` + "\x00"

	fragmentShader = `
  #version 330

  varying vec2 vuv;
  uniform sampler2D texture;
  void main(void){
    gl_FragColor = texture2D(texture, vuv);
  }
  ` + "\x00"
)

func compileShader(code string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	ccode := gl.Str(code)
	gl.ShaderSource(shader, 1, &ccode, nil)
	gl.CompileShader(shader)
	var result int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v\n%v", code, log)
	}
	return shader, nil
}

func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var result int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

var vertexPosition = []float32{
	1, 1,
	-1, 1,
	-1, -1,
	1, -1,
}
var vertexUV = []float32{
	1, 0,
	0, 0,
	0, 1,
	1, 1,
}

func updateTexture(program uint32, img *image.RGBA) {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Rect.Size().X), int32(img.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	positionLocation := uint32(gl.GetAttribLocation(program, gl.Str("position\x00")))
	uvLocation := uint32(gl.GetAttribLocation(program, gl.Str("uv\x00")))
	textureLocation := gl.GetUniformLocation(program, gl.Str("texture\x00"))
	gl.EnableVertexAttribArray(positionLocation)
	gl.EnableVertexAttribArray(uvLocation)
	gl.Uniform1i(textureLocation, 0)
	gl.VertexAttribPointer(positionLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexPosition))
	gl.VertexAttribPointer(uvLocation, 2, gl.FLOAT, false, 0, gl.Ptr(vertexUV))
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

// toRGBA converts a composed NES framebuffer to an *image.RGBA suitable for
// uploading as a texture.
func toRGBA(frame *nes.Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, 240))
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			rgb := frame[y][x]
			offset := img.PixOffset(x, y)
			img.Pix[offset] = rgb[0]
			img.Pix[offset+1] = rgb[1]
			img.Pix[offset+2] = rgb[2]
			img.Pix[offset+3] = 0xFF
		}
	}
	return img
}

func readKeys(window *glfw.Window) byte {
	var keys byte
	if window.GetKey(glfw.KeyD) == glfw.Press {
		keys |= nes.ButtonRight
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		keys |= nes.ButtonLeft
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		keys |= nes.ButtonDown
	}
	if window.GetKey(glfw.KeyW) == glfw.Press {
		keys |= nes.ButtonUp
	}
	if window.GetKey(glfw.KeyG) == glfw.Press {
		keys |= nes.ButtonStart
	}
	if window.GetKey(glfw.KeyF) == glfw.Press {
		keys |= nes.ButtonSelect
	}
	if window.GetKey(glfw.KeyH) == glfw.Press {
		keys |= nes.ButtonB
	}
	if window.GetKey(glfw.KeyJ) == glfw.Press {
		keys |= nes.ButtonA
	}
	return keys
}

// Start opens a window sized width x height, builds a Console around
// romBytes, and runs it until the window is closed or the CPU halts. The
// Console's Bus fires our frame callback once per completed PPU frame
// (see nes.Bus); drawing and input polling both happen there, since that
// is the only point where a new picture actually exists to show.
func Start(romBytes []byte, width, height int) {
	if err := glfw.Init(); err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	window, err := glfw.CreateWindow(width, height, "gones", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	program, err := newProgram()
	if err != nil {
		glog.Fatalln(err)
	}
	gl.UseProgram(program)

	onFrame := func(ppu *nes.PPU, joypad1 *nes.Joypad) {
		updateTexture(program, toRGBA(ppu.FrameBuffer()))
		joypad1.Release(0xFF)
		joypad1.Press(readKeys(window))
		window.SwapBuffers()
		glfw.PollEvents()
	}

	console, err := nes.NewConsole(romBytes, onFrame)
	if err != nil {
		glog.Fatalln(err)
	}

	for !window.ShouldClose() && !console.Halted() {
		time.Sleep(1 * time.Millisecond)
		console.Step()
	}
}

package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// fixed attribute slots, shared by every mesh
const (
	PositionAttribute uint32 = 0
	NormalAttribute   uint32 = 1
)

var attributeNames = map[uint32]string{
	PositionAttribute: "vertexPosition",
	NormalAttribute:   "vertexNormal",
}

type Program struct {
	program  uint32
	uniforms map[string]int32
}

// ReadShaderSource loads a glsl file and terminates it for the gl string
// conversion.
func ReadShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", path, err)
	}

	return terminate(string(data)), nil
}

func terminate(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

// NewProgram compiles and links a vertex and fragment shader pair. On compile
// or link errors the program is still returned together with the driver
// info logs, it may not be usable for drawing.
func NewProgram(vertex, fragment string) (*Program, error) {
	var errs []error

	// vertex shader
	vshader, err := compileShader(terminate(vertex), gl.VERTEX_SHADER)
	if err != nil {
		errs = append(errs, fmt.Errorf("vertex shader error: %w", err))
	}
	defer gl.DeleteShader(vshader)

	// fragment shader
	fshader, err := compileShader(terminate(fragment), gl.FRAGMENT_SHADER)
	if err != nil {
		errs = append(errs, fmt.Errorf("fragment shader error: %w", err))
	}
	defer gl.DeleteShader(fshader)

	// program
	prg := &Program{
		program:  gl.CreateProgram(),
		uniforms: make(map[string]int32),
	}

	gl.AttachShader(prg.program, vshader)
	gl.AttachShader(prg.program, fshader)
	for loc, name := range attributeNames {
		gl.BindAttribLocation(prg.program, loc, gl.Str(name+"\x00"))
	}
	gl.LinkProgram(prg.program)

	var status int32
	gl.GetProgramiv(prg.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prg.program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prg.program, logLength, nil, gl.Str(log))

		errs = append(errs, fmt.Errorf("linker error: %v", strings.TrimRight(log, "\x00")))
	}

	return prg, errors.Join(errs...)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return shader, errors.New(strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

// Uniform returns the cached location of a uniform, -1 if the linked
// program does not have it.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}

	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// set after changing active program
func (p *Program) SetMatrix(name string, m mgl32.Mat4) {
	if loc := p.Uniform(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

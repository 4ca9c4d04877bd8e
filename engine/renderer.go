package engine

import (
	"context"
	"log"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Renderer struct {
	context *Context
	program *Program
	mesh    *Mesh

	spin  *Spin
	ortho Ortho
	clear mgl32.Vec4

	// 0 disables fps logging
	FPSInterval time.Duration
}

func NewRenderer(c *Context, p *Program, m *Mesh, s *Spin, o Ortho, clear mgl32.Vec4) *Renderer {
	return &Renderer{
		context: c,
		program: p,
		mesh:    m,
		spin:    s,
		ortho:   o,
		clear:   clear,
	}
}

// Frame draws the mesh once and presents it.
func (r *Renderer) Frame() {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	for _, u := range r.uniforms() {
		r.program.SetMatrix(u.name, u.value)
	}

	r.mesh.Draw()

	r.context.Update()
	r.spin.Advance()
}

type matrixUniform struct {
	name  string
	value mgl32.Mat4
}

// uniforms of the current frame, unknown names are skipped by the program
func (r *Renderer) uniforms() []matrixUniform {
	model, projection := r.spin.Model(), r.ortho.Matrix()

	return []matrixUniform{
		{"modelMatrix", model},
		{"projectionMatrix", projection},
		{"mvpMatrix", MVP(projection, model)},
	}
}

// Run renders until the window is closed or ctx is done.
func (r *Renderer) Run(ctx context.Context) {
	var (
		counter = NewFrameCounter(0.01)
		report  <-chan time.Time
	)

	if r.FPSInterval > 0 {
		t := time.NewTicker(r.FPSInterval)
		defer t.Stop()
		report = t.C
	}

	for !r.context.ShouldClose() {
		select {
		case <-ctx.Done():
			r.context.Close()
			continue
		case <-report:
			log.Printf("%.1f fps", counter.FPS())
		default:
		}

		r.Frame()
		counter.Tick(time.Now())
	}
}

// FrameCounter keeps a moving average of the frame rate.
type FrameCounter struct {
	ratio float64
	fps   float64
	last  time.Time
}

func NewFrameCounter(ratio float64) *FrameCounter {
	return &FrameCounter{ratio: ratio}
}

func (c *FrameCounter) Tick(now time.Time) {
	if !c.last.IsZero() {
		if ds := now.Sub(c.last).Seconds(); ds > 0 {
			if c.fps == 0 {
				c.fps = 1.0 / ds
			} else {
				c.fps = c.fps*(1-c.ratio) + (1.0/ds)*c.ratio
			}
		}
	}
	c.last = now
}

func (c *FrameCounter) FPS() float64 {
	return c.fps
}

package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/der-antikeks/modelview/config"
	"github.com/der-antikeks/modelview/engine"
)

var (
	configPath = flag.String("config", "modelview.yml", "optional yaml config file")
	modelPath  = flag.String("model", "", "model file, overrides the config")
)

func init() {
	// gl context and glfw events stay on the main thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	initLog(os.Stdout)

	os.Exit(run())
}

// all messages, including failures, go to standard output
func initLog(w io.Writer) {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(w)
}

func run() int {
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Println("config:", err)
		return -1
	}
	if *modelPath != "" {
		cfg.Assets.Model = *modelPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// init
	wm, err := engine.NewContext(engine.ContextOptions{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		log.Println(err)
		return -1
	}
	defer wm.Cleanup()

	w, h := wm.Size()
	log.Printf("window %dx%d", w, h)

	assets, ok := loadAssets(ctx, cfg.Assets)
	if !ok {
		return 0
	}

	program, err := engine.NewProgram(assets.VertexSource, assets.FragmentSource)
	if err != nil {
		log.Println("shader program:", err)
	}

	model := engine.NewMesh(assets.Model)

	// uploaded but not drawn
	cube := engine.NewMesh(engine.CubeGeometry())
	log.Printf("cube uploaded: %d indices", cube.Count)

	r := engine.NewRenderer(wm, program, model,
		engine.NewSpin(cfg.Render.DegreesPerFrame),
		engine.DefaultOrtho(),
		cfg.Render.Color(),
	)
	r.FPSInterval = cfg.Render.FPSInterval

	// main loop
	r.Run(ctx)

	return 0
}

// loadAssets reads shaders and model and logs what failed. It only reports
// false when loading was interrupted.
func loadAssets(ctx context.Context, paths config.Assets) (*engine.Assets, bool) {
	assets, err := engine.LoadAssets(ctx, engine.AssetPaths{
		Vertex:   paths.Vertex,
		Fragment: paths.Fragment,
		Model:    paths.Model,
	})
	if err != nil {
		log.Println("interrupted:", err)
		return nil, false
	}

	if assets.ShaderErr != nil {
		log.Println("read shaders:", assets.ShaderErr)
	}

	if assets.ModelErr != nil {
		log.Println("model loading failed:", assets.ModelErr)
	} else {
		lo, hi := assets.Model.Bounds()
		log.Printf("model %s: %d vertices, %d triangles, bounds %v %v",
			paths.Model, assets.Model.VertexCount(), assets.Model.TriangleCount(), lo, hi)
	}

	return assets, true
}

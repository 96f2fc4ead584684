package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
	"github.com/rtrace/go-ray-forest/pkg/renderer"
	"github.com/rtrace/go-ray-forest/pkg/scene"
	"github.com/rtrace/go-ray-forest/web/server"
)

type renderOptions struct {
	width      int
	height     int
	depth      int
	method     string
	output     string
	toTerminal bool
	stats      bool
}

func main() {
	opts := &renderOptions{}

	rootCmd := &cobra.Command{
		Use:   "rtrace",
		Short: "A Whitted ray tracer with cached re-shading",
		Long: "rtrace renders a scene with recursive ray tracing. The forest method\n" +
			"caches every traced ray per pixel so material edits can be re-shaded\n" +
			"without re-intersecting the scene.",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the scene to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts)
		},
	}
	renderCmd.Flags().IntVarP(&opts.width, "width", "w", 512, "width in pixels of the rendered image")
	renderCmd.Flags().IntVar(&opts.height, "height", 512, "height in pixels of the rendered image")
	renderCmd.Flags().IntVarP(&opts.depth, "depth", "d", 8, "maximum recursion depth for reflections and transmissions")
	renderCmd.Flags().StringVar(&opts.method, "method", "basic", "rendering method: basic or forest")
	renderCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG path (default output/<timestamp>.png)")
	renderCmd.Flags().BoolVarP(&opts.toTerminal, "to-terminal", "t", false, "draw a low resolution preview to the terminal")
	renderCmd.Flags().BoolVar(&opts.stats, "stats", false, "with the forest method, print stats about the forest")

	var port int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive renderer over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.NewServer(port, scene.Default(), opts.width, opts.height, opts.depth)
			return srv.Start()
		},
	}
	serveCmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().IntVarP(&opts.width, "width", "w", 512, "width in pixels of the rendered image")
	serveCmd.Flags().IntVar(&opts.height, "height", 512, "height in pixels of the rendered image")
	serveCmd.Flags().IntVarP(&opts.depth, "depth", "d", 8, "maximum recursion depth for reflections and transmissions")

	var runs int
	var filterMode bool
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated renders for performance analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts, runs, filterMode)
		},
	}
	benchCmd.Flags().IntVarP(&runs, "runs", "n", 10, "how many times to run the test")
	benchCmd.Flags().BoolVarP(&filterMode, "filter", "f", false, "time the filtered forest re-render instead of a full render")
	benchCmd.Flags().IntVarP(&opts.width, "width", "w", 512, "width in pixels of the rendered image")
	benchCmd.Flags().IntVar(&opts.height, "height", 512, "height in pixels of the rendered image")
	benchCmd.Flags().IntVarP(&opts.depth, "depth", "d", 8, "maximum recursion depth for reflections and transmissions")
	benchCmd.Flags().StringVar(&opts.method, "method", "basic", "rendering method: basic or forest")

	rootCmd.AddCommand(renderCmd, serveCmd, benchCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func runRender(opts *renderOptions) error {
	sc := scene.Default()
	camera := renderer.NewCamera(opts.width, opts.height)
	rt := renderer.NewRaytracer(sc, camera, opts.depth)
	buffer := renderer.NewRenderBuffer(opts.width, opts.height)

	start := time.Now()
	switch opts.method {
	case "basic":
		rt.Render(buffer)
	case "forest":
		forest := rt.BuildForest()
		built := time.Now()
		rt.RenderForest(forest, buffer)
		log.Printf("BuildForest: %dms, RenderForest: %dms",
			built.Sub(start).Milliseconds(), time.Since(built).Milliseconds())
		if opts.stats {
			printForestStats(sc, forest)
		}
	default:
		return fmt.Errorf("unknown method %q, want basic or forest", opts.method)
	}
	log.Printf("Render time: %dms", time.Since(start).Milliseconds())

	if opts.toTerminal {
		drawToTerminal(sc, opts.depth)
	}

	return savePNG(buffer, opts.output)
}

func runBench(opts *renderOptions, runs int, filterMode bool) error {
	sc := scene.Default()
	camera := renderer.NewCamera(opts.width, opts.height)
	rt := renderer.NewRaytracer(sc, camera, opts.depth)
	buffer := renderer.NewRenderBuffer(opts.width, opts.height)

	if filterMode {
		forest := rt.BuildForest()
		rt.RenderForest(forest, buffer)

		shape, ok := sc.FindShape("blue")
		if !ok {
			return fmt.Errorf("benchmark scene has no blue sphere")
		}
		phong := shape.Material().(*material.Phong)
		mutated := map[int]struct{}{shape.ID(): {}}

		total := time.Duration(0)
		for i := 0; i < runs; i++ {
			phong.SetDiffuse(math.Color{R: float64(i) / float64(runs), G: 0, B: 1})
			start := time.Now()
			rt.RenderForestFilter(forest, buffer, mutated)
			elapsed := time.Since(start)
			total += elapsed
			fmt.Printf("run %d: %dms\n", i+1, elapsed.Milliseconds())
		}
		fmt.Printf("average filtered re-render: %dms over %d runs (%d of %d pixels)\n",
			(total / time.Duration(runs)).Milliseconds(), runs,
			forest.TreesWith(shape.ID()), opts.width*opts.height)
		return nil
	}

	total := time.Duration(0)
	for i := 0; i < runs; i++ {
		start := time.Now()
		switch opts.method {
		case "basic":
			rt.Render(buffer)
		case "forest":
			forest := rt.BuildForest()
			rt.RenderForest(forest, buffer)
		default:
			return fmt.Errorf("unknown method %q, want basic or forest", opts.method)
		}
		elapsed := time.Since(start)
		total += elapsed
		fmt.Printf("run %d: %dms\n", i+1, elapsed.Milliseconds())
	}
	fmt.Printf("average %s render: %dms over %d runs\n",
		opts.method, (total / time.Duration(runs)).Milliseconds(), runs)
	return nil
}

func printForestStats(sc *scene.Scene, forest *renderer.RayForest) {
	fmt.Printf("forest: %dx%d pixels, %d intersections\n", forest.W, forest.H, forest.Size())
	for _, shape := range sc.Shapes() {
		fmt.Printf("  %s (id %d): in %d trees\n", shape.Name(), shape.ID(), forest.TreesWith(shape.ID()))
	}
}

func savePNG(buffer *renderer.RenderBuffer, path string) error {
	if path == "" {
		path = filepath.Join("output", fmt.Sprintf("%d.png", time.Now().Unix()))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, buffer.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	log.Printf("Saved render to %s", path)
	return nil
}

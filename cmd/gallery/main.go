package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/gekko3d/gallery"
	"github.com/gekko3d/gallery/core"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	shader := flag.String("shader", "", "Shader to select after startup")
	shape := flag.String("shape", "", "Shape to select after startup")
	frames := flag.Uint64("frames", 60, "Number of frames to run (0 runs until interrupted)")
	dt := flag.Duration("dt", time.Second/60, "Fixed frame step (0 follows the wall clock)")
	code := flag.Bool("code", false, "Print the highlighted shader source")
	manifestPath := flag.String("manifest", "", "YAML or TOML catalog manifest")
	style := flag.String("style", "", "Highlighting style for -code")
	debug := flag.Bool("debug", false, "Enable debug logging")
	logLevel := flag.String("log-level", "info", "Minimum log level: debug, info, warn or error")
	var sets []gallery.Intent
	flag.Func("set", "Set a parameter, name=value (repeatable)", func(s string) error {
		intent, err := parseSet(s)
		if err != nil {
			return err
		}
		sets = append(sets, intent)
		return nil
	})
	flag.Parse()

	level, err := gallery.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := gallery.NewAppBuilder().
		UseModule(gallery.LoggingModule{Prefix: "gallery", Debug: *debug, Level: level}).
		UseModule(gallery.TimeModule{FixedStep: *dt}, gallery.LightingModule{}).
		UseModule(gallery.GalleryModule{ManifestPath: *manifestPath}).
		UseModule(gallery.ControlsModule{}, gallery.CodeViewModule{Style: *style}).
		Build()

	cmd := app.Commands()
	if *shader != "" {
		cmd.Submit(gallery.SelectShaderIntent{Name: *shader})
	}
	if *shape != "" {
		cmd.Submit(gallery.SelectShapeIntent{Name: *shape})
	}
	cmd.Submit(sets...)
	if *code {
		cmd.Submit(gallery.ShowCodeIntent{Visible: true})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := app.Run(ctx, *frames); err != nil {
		app.Logger().Infof("stopped: %v", err)
	}

	panel := gallery.Resource[gallery.ControlPanel](app)
	fmt.Print(panel)
	for _, n := range panel.TakeNotices() {
		fmt.Printf("%s: %s: %v\n", n.Severity, n.Message, n.Err)
	}
	if *code {
		fmt.Print(gallery.Resource[gallery.CodePane](app).Text)
	}
	clock := gallery.Resource[gallery.Time](app)
	logger := gallery.Resource[gallery.DefaultLogger](app)
	app.Logger().Infof("%d frames, %.2fs simulated, %d warnings, %d errors",
		clock.Frame(), clock.ElapsedSeconds(), logger.Count(gallery.LevelWarn), logger.Count(gallery.LevelError))
}

// parseSet reads name=value where value is true/false, a number, or a comma
// separated vector of 2 to 4 numbers.
func parseSet(s string) (gallery.Intent, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return nil, fmt.Errorf("want name=value, got %q", s)
	}
	if raw == "true" || raw == "false" {
		return gallery.SetParameterIntent{Name: name, Value: raw == "true"}, nil
	}
	parts := strings.Split(raw, ",")
	vs := make([]float32, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		vs[i] = float32(f)
	}
	var v any
	switch len(vs) {
	case 1:
		v = float64(vs[0])
	case 2:
		v = mgl32.Vec2(vs)
	case 3:
		v = mgl32.Vec3(vs)
	case 4:
		v = mgl32.Vec4(vs)
	default:
		return nil, fmt.Errorf("%s: %w: %d components", name, core.ErrTypeMismatch, len(vs))
	}
	return gallery.SetParameterIntent{Name: name, Value: v}, nil
}

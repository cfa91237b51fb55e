// Command ccdemo assembles and rasterizes one compositor frame.
//
// It builds a scrolled page from a TOML scene, scrolls it at t=0, lets the
// scrollbar fade run until -at, then writes the frame as PNG and its
// metadata as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/frame"
	"github.com/gogpu/compositor/observer"
	"github.com/gogpu/compositor/quad"
	"github.com/gogpu/compositor/render"
	"github.com/gogpu/compositor/scrollbar"
)

func main() {
	var (
		scenePath    = flag.String("scene", "", "scene TOML file (default: built-in scene)")
		settingsPath = flag.String("settings", "", "settings TOML file (default: built-in settings)")
		output       = flag.String("out", "frame.png", "output PNG file")
		metadataPath = flag.String("metadata", "", "write frame metadata JSON to this file")
		at           = flag.Duration("at", 450*time.Millisecond, "time since the scroll at which the frame is drawn")
		verbose      = flag.Bool("v", false, "log frame assembly details")
	)
	flag.Parse()

	if *verbose {
		compositor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	settings := compositor.DefaultSettings()
	if *settingsPath != "" {
		var err error
		if settings, err = compositor.LoadSettings(*settingsPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	scene := defaultScene()
	if *scenePath != "" {
		var err error
		if scene, err = loadScene(*scenePath); err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	f, err := run(ctx, scene, settings, *at)
	if err != nil {
		log.Fatalf("Failed to assemble frame: %v", err)
	}
	defer f.Release()

	target := render.NewPixmapTarget(scene.Width, scene.Height)
	renderer := render.NewSoftwareRenderer(render.WithSettings(settings))
	defer renderer.Close()
	for id, img := range scene.resources() {
		renderer.SetResource(id, img)
	}
	if err := renderer.Render(target, f, render.ClearPass(settings.BackgroundColor)); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := writePNG(*output, target); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Frame %d saved to %s (%dx%d, %d quads)\n", f.ID, *output, scene.Width, scene.Height, f.Quads.Len())

	if *metadataPath != "" {
		if err := writeMetadata(*metadataPath, f.Metadata); err != nil {
			log.Fatalf("Failed to save metadata: %v", err)
		}
		log.Printf("Metadata saved to %s\n", *metadataPath)
	}
}

// run scrolls the scene at t=0, advances the scrollbar fade to at and
// assembles the frame.
func run(ctx context.Context, scene Scene, settings compositor.Settings, at time.Duration) (*frame.Frame, error) {
	tree := scene.build()

	fade := scrollbar.NewFadeControllerFromSettings(nil, settings)
	fade.SetScrollbars(nil, tree.scrollbar)

	start := time.Now()
	tree.scroller.SetScrollOffset(compositor.Pt(0, scene.ScrollY))
	fade.OnScrollOffsetUpdate(tree.scroller, start)
	fade.Advance(start.Add(at))

	events := observer.NewRegistry[frame.EventKind, frame.Event]()
	events.Add(frame.EventFrameAssembled, observer.SubscriberFunc[frame.Event](func(e frame.Event) {
		compositor.Logger().Info("ccdemo: frame assembled",
			"frame", e.FrameID,
			"layers", e.NumLayers,
			"quads", e.NumQuads,
			"culled", e.AppendData.NumCulled)
	}))

	assembler := frame.NewAssembler(
		frame.WithSettings(settings),
		frame.WithOccluder(quad.ClipOccluder{}),
		frame.WithEvents(events),
	)
	defer assembler.Close()

	w, h := float64(scene.Width), float64(scene.Height)
	state := frame.RootState{
		ScrollOffset:       tree.scroller.ScrollOffset(),
		PageScaleFactor:    scene.PageScaleFactor,
		MinPageScaleFactor: scene.MinPageScaleFactor,
		MaxPageScaleFactor: scene.MaxPageScaleFactor,
		ViewportSize:       compositor.Sz(w, h),
		RootLayerSize:      tree.scroller.Bounds(),
	}
	compositor.Logger().Info("ccdemo: scrollbar", "opacity", fade.Opacity(), "animating", fade.IsAnimating(start.Add(at)))
	return assembler.Assemble(ctx, tree.root, state, compositor.R(0, 0, w, h))
}

func writePNG(path string, target *render.PixmapTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, target.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMetadata(path string, m frame.Metadata) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

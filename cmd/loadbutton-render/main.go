package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ytget/loadbutton/internal/anim"
	"github.com/ytget/loadbutton/internal/button"
	"github.com/ytget/loadbutton/internal/config"
	"github.com/ytget/loadbutton/internal/model"
	"github.com/ytget/loadbutton/internal/paint"
)

const (
	defaultWidth  = 320
	defaultHeight = 64
	defaultTimes  = "0s,750ms,1500ms,2250ms,2999ms"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("loadbutton-render", flag.ContinueOnError)
	out := fs.String("out", ".", "directory the PNG frames are written to")
	width := fs.Int("width", defaultWidth, "button width in pixels")
	height := fs.Int("height", defaultHeight, "button height in pixels")
	times := fs.String("times", defaultTimes, "comma separated offsets into the loading animation")
	stylePath := fs.String("style", "", "optional YAML style file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	offsets, err := parseOffsets(*times)
	if err != nil {
		return err
	}

	style, err := config.LoadStyle(*stylePath)
	if err != nil {
		return err
	}
	opts := style.Options()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := writeFrame(filepath.Join(*out, "ready.png"), opts, *width, *height, model.StateReady, 0); err != nil {
		return err
	}
	for _, offset := range offsets {
		name := fmt.Sprintf("loading-%05dms.png", offset.Milliseconds())
		if err := writeFrame(filepath.Join(*out, name), opts, *width, *height, model.StateLoading, offset); err != nil {
			return err
		}
	}
	return nil
}

// renderFrame records the button in state s, offset into its animation
func renderFrame(opts button.Options, width, height int, s model.ButtonState, offset time.Duration) *paint.DisplayList {
	clock := anim.NewFakeClock()
	loop := anim.NewLoop(clock)
	b := button.New(opts, loop, clock, nil)
	defer b.Destroy()

	w, h := b.Measure(button.ExactSize(width), button.ExactSize(height))
	b.SetState(s)
	if offset > 0 {
		anim.Pump(loop, clock, offset, anim.DefaultFrameInterval)
	}

	rec := paint.NewRecorder(w, h, paint.FaceMetrics{Face: paint.DefaultFace()})
	b.Render(rec)
	return rec.DisplayList()
}

func writeFrame(path string, opts button.Options, width, height int, s model.ButtonState, offset time.Duration) error {
	img := paint.Rasterize(renderFrame(opts, width, height, s, offset), nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	log.Printf("Wrote %s (%s at %v)", path, s, offset)
	return nil
}

func parseOffsets(s string) ([]time.Duration, error) {
	var offsets []time.Duration
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := time.ParseDuration(part)
		if err != nil {
			return nil, fmt.Errorf("parse offset %q: %w", part, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("negative offset %q", part)
		}
		offsets = append(offsets, d)
	}
	return offsets, nil
}

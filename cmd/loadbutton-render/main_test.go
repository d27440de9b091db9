package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ytget/loadbutton/internal/button"
	"github.com/ytget/loadbutton/internal/model"
	"github.com/ytget/loadbutton/internal/paint"
)

func TestParseOffsets(t *testing.T) {
	tests := []struct {
		input   string
		want    []time.Duration
		wantErr bool
	}{
		{"0s,1s", []time.Duration{0, time.Second}, false},
		{" 250ms , ,2s", []time.Duration{250 * time.Millisecond, 2 * time.Second}, false},
		{"", nil, false},
		{"soon", nil, true},
		{"-1s", nil, true},
	}

	for _, tt := range tests {
		got, err := parseOffsets(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseOffsets(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseOffsets(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseOffsets(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRenderFrame_Progress(t *testing.T) {
	list := renderFrame(button.Options{}, 300, 60, model.StateLoading, 1500*time.Millisecond)

	ops := list.Ops()
	if len(ops) != 4 {
		t.Fatalf("ops = %d, want 4", len(ops))
	}
	if ops[1].Kind != paint.OpRect || ops[1].Bounds.Width() != 150 {
		t.Errorf("progress op = %+v, want 150 wide rect", ops[1])
	}
	if ops[2].Text != button.DefaultLoadingLabel {
		t.Errorf("label = %q, want %q", ops[2].Text, button.DefaultLoadingLabel)
	}
}

func TestRun_WritesFrames(t *testing.T) {
	dir := t.TempDir()

	if err := run([]string{"-out", dir, "-width", "120", "-height", "40", "-times", "0s,1s"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"ready.png", "loading-00000ms.png", "loading-01000ms.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 40 {
			t.Errorf("%s size = %v, want 120x40", name, b)
		}
	}
}

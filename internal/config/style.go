package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/loadbutton/internal/button"
)

// Style is the optional YAML description of a loading button's look.
// Unset fields keep the button defaults.
type Style struct {
	InitialLabel    string        `yaml:"initial_label,omitempty"`
	LoadingLabel    string        `yaml:"loading_label,omitempty"`
	BackgroundColor string        `yaml:"background_color,omitempty"`
	ProgressColor   string        `yaml:"progress_color,omitempty"`
	ArcColor        string        `yaml:"arc_color,omitempty"`
	TextSize        float32       `yaml:"text_size,omitempty"`
	Duration        time.Duration `yaml:"duration,omitempty"`
	ArcMultiple     float64       `yaml:"arc_multiple,omitempty"`
	Padding         int           `yaml:"padding,omitempty"`
	MinWidth        int           `yaml:"min_width,omitempty"`
	MinHeight       int           `yaml:"min_height,omitempty"`
}

// LoadStyle reads a style file if present. A missing file yields an empty style.
func LoadStyle(path string) (*Style, error) {
	if path == "" {
		return &Style{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Style{}, nil
		}
		return nil, fmt.Errorf("failed to read style %s: %w", path, err)
	}

	var s Style
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse style %s: %w", path, err)
	}
	return &s, nil
}

// Options converts the style to button options. Colors that fail to parse
// are left unset so the button falls back to its defaults.
func (s *Style) Options() button.Options {
	return button.Options{
		InitialLabel:    s.InitialLabel,
		LoadingLabel:    s.LoadingLabel,
		BackgroundColor: styleColor("background_color", s.BackgroundColor),
		ProgressColor:   styleColor("progress_color", s.ProgressColor),
		ArcColor:        styleColor("arc_color", s.ArcColor),
		TextSize:        s.TextSize,
		Duration:        s.Duration,
		ArcMultiple:     s.ArcMultiple,
		Padding:         s.Padding,
		MinWidth:        s.MinWidth,
		MinHeight:       s.MinHeight,
	}
}

func styleColor(field, value string) color.Color {
	if value == "" {
		return nil
	}
	c, err := ParseHexColor(value)
	if err != nil {
		log.Printf("Style: ignoring %s: %v", field, err)
		return nil
	}
	return c
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

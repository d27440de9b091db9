package tui

import "github.com/ytget/loadbutton/internal/paint"

func pointAt(x, y float32) paint.Point {
	return paint.Point{X: x, Y: y}
}

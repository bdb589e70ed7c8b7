package planner

import (
	"math"

	"github.com/alexanderramin/cursada/internal/domain"
)

const (
	// DefaultWindowStart and DefaultWindowEnd bound the span the grid always
	// shows, 08:00 to 22:00.
	DefaultWindowStart = 8 * 60
	DefaultWindowEnd   = 22 * 60

	// MinBlockHeight keeps very short intervals visible.
	MinBlockHeight = 2.0
)

// Window is the visible range of minutes-of-day.
type Window struct {
	Start int
	End   int
}

// Span returns the window length in minutes, never less than 1.
func (w Window) Span() int {
	if w.End-w.Start < 1 {
		return 1
	}
	return w.End - w.Start
}

// Contains reports whether minute t lies inside the window, inclusive.
func (w Window) Contains(t int) bool {
	return t >= w.Start && t <= w.End
}

// ComputeWindow widens the default 08:00-22:00 window to include every meeting.
func ComputeWindow(meets []domain.Meet) Window {
	w := Window{Start: DefaultWindowStart, End: DefaultWindowEnd}
	for _, m := range meets {
		if m.StartMin < w.Start {
			w.Start = m.StartMin
		}
		if m.EndMin > w.End {
			w.End = m.EndMin
		}
	}
	return w
}

// Viewport is the drawable height of the grid and the padding reserved above
// the first and below the last hour label. Units are whatever the renderer
// uses: pixels for a browser, rows for a terminal.
type Viewport struct {
	Height    float64
	PadTop    float64
	PadBottom float64
}

// DefaultViewport matches the browser grid: 600px tall, 14px padding.
var DefaultViewport = Viewport{Height: 600, PadTop: 14, PadBottom: 14}

// ContentHeight is the height available between the paddings, clamped at 0.
func (v Viewport) ContentHeight() float64 {
	return math.Max(0, v.Height-v.PadTop-v.PadBottom)
}

// Transform maps minutes-of-day to vertical positions. It is affine and
// strictly increasing whenever the content height is positive.
type Transform struct {
	Window   Window
	Viewport Viewport
}

func NewTransform(w Window, v Viewport) Transform {
	return Transform{Window: w, Viewport: v}
}

// Y returns the vertical offset of minute t.
func (t Transform) Y(minute int) float64 {
	frac := float64(minute-t.Window.Start) / float64(t.Window.Span())
	return t.Viewport.PadTop + frac*t.Viewport.ContentHeight()
}

// Columns describes the horizontal split: a fixed-width time gutter on the
// left and six equal day columns filling the rest of Width.
type Columns struct {
	Gutter float64
	Width  float64
}

// ColumnWidth is the width of one day column.
func (c Columns) ColumnWidth() float64 {
	return math.Max(0, c.Width-c.Gutter) / domain.DayCount
}

// Left returns the left edge of the column for a 1-based day ordinal.
func (c Columns) Left(day int) float64 {
	return c.Gutter + float64(day-1)*c.ColumnWidth()
}

type BlockKind string

const (
	BlockMeet     BlockKind = "meet"
	BlockPreview  BlockKind = "preview"
	BlockGrayZone BlockKind = "grayzone"
)

// Block is one placed interval on the grid.
type Block struct {
	ID       string
	Kind     BlockKind
	Day      int
	StartMin int
	EndMin   int
	Top      float64
	Bottom   float64
}

// Column returns the 0-based column index of the block's day.
func (b Block) Column() int {
	return b.Day - 1
}

// Height is the rendered height, at least MinBlockHeight.
func (b Block) Height() float64 {
	return math.Max(MinBlockHeight, b.Bottom-b.Top)
}

func (t Transform) place(id string, kind BlockKind, day, start, end int) Block {
	return Block{
		ID:       id,
		Kind:     kind,
		Day:      day,
		StartMin: start,
		EndMin:   end,
		Top:      t.Y(start),
		Bottom:   t.Y(end),
	}
}

// Layout places meetings on the grid.
func Layout(meets []domain.Meet, w Window, v Viewport) []Block {
	return layoutMeets(meets, BlockMeet, NewTransform(w, v))
}

// LayoutPreview places hover-preview meetings with the same transform.
func LayoutPreview(meets []domain.Meet, w Window, v Viewport) []Block {
	return layoutMeets(meets, BlockPreview, NewTransform(w, v))
}

// LayoutGrayZones places gray zones with the same transform as meetings.
func LayoutGrayZones(zones []domain.GrayZone, w Window, v Viewport) []Block {
	t := NewTransform(w, v)
	out := make([]Block, 0, len(zones))
	for _, z := range zones {
		out = append(out, t.place(z.ID, BlockGrayZone, z.DayNum, z.StartMin, z.EndMin))
	}
	return out
}

func layoutMeets(meets []domain.Meet, kind BlockKind, t Transform) []Block {
	out := make([]Block, 0, len(meets))
	for _, m := range meets {
		out = append(out, t.place(m.ID, kind, m.DayNum, m.StartMin, m.EndMin))
	}
	return out
}

// HourLine is a whole-hour tick on the time gutter.
type HourLine struct {
	Hour int
	Y    float64
}

// HourLines returns one tick per whole hour from the hour containing the
// window start to the hour containing its end.
func HourLines(w Window, v Viewport) []HourLine {
	t := NewTransform(w, v)
	first, last := w.Start/60, w.End/60
	out := make([]HourLine, 0, last-first+1)
	for h := first; h <= last; h++ {
		out = append(out, HourLine{Hour: h, Y: t.Y(h * 60)})
	}
	return out
}

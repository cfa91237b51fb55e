package layer

import (
	"math"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/quad"
)

// Orientation is the scroll axis of a scrollbar.
type Orientation uint8

// Orientation constants.
const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

var scrollbarBorderColor = compositor.RGBA(255, 160, 0, 160)

// ScrollbarLayer draws a scrollbar from three texture resources: the back
// track, the fore track and the thumb.
//
// The thumb has a fixed length along the track. The track is split at the
// thumb center: the back track covers the whole layer and the fore track
// covers the part after the thumb center.
type ScrollbarLayer struct {
	Layer

	orientation   Orientation
	scrollLayerID int

	currentPos  float64
	totalSize   float64
	maximum     float64
	thumbLength float64
	enabled     bool

	backTrack quad.ResourceID
	foreTrack quad.ResourceID
	thumb     quad.ResourceID
}

// NewScrollbarLayer creates an enabled scrollbar for the layer with id
// scrollLayerID.
func NewScrollbarLayer(o Orientation, scrollLayerID int) *ScrollbarLayer {
	l := &ScrollbarLayer{
		orientation:   o,
		scrollLayerID: scrollLayerID,
		enabled:       true,
	}
	l.init(l, KindScrollbar)
	l.drawsContent = true
	return l
}

// Orientation returns the scroll axis.
func (l *ScrollbarLayer) Orientation() Orientation { return l.orientation }

// ScrollLayerID returns the id of the layer this scrollbar tracks.
func (l *ScrollbarLayer) ScrollLayerID() int { return l.scrollLayerID }

// SetScrollLayerID binds the scrollbar to another scrolling layer.
func (l *ScrollbarLayer) SetScrollLayerID(id int) {
	if l.scrollLayerID == id {
		return
	}
	l.scrollLayerID = id
	l.setNeedsFullTreeSync()
}

// CurrentPos returns the scroll position along the axis.
func (l *ScrollbarLayer) CurrentPos() float64 { return l.currentPos }

// SetCurrentPos sets the scroll position along the axis.
func (l *ScrollbarLayer) SetCurrentPos(pos float64) {
	if l.currentPos == pos {
		return
	}
	l.currentPos = pos
	l.setNeedsCommit()
}

// TotalSize returns the content size along the axis.
func (l *ScrollbarLayer) TotalSize() float64 { return l.totalSize }

// SetTotalSize sets the content size along the axis.
func (l *ScrollbarLayer) SetTotalSize(size float64) {
	if l.totalSize == size {
		return
	}
	l.totalSize = size
	l.setNeedsCommit()
}

// Maximum returns the largest scroll position.
func (l *ScrollbarLayer) Maximum() float64 { return l.maximum }

// SetMaximum sets the largest scroll position.
func (l *ScrollbarLayer) SetMaximum(maximum float64) {
	if l.maximum == maximum {
		return
	}
	l.maximum = maximum
	l.setNeedsCommit()
}

// ThumbLength returns the fixed thumb length along the track.
func (l *ScrollbarLayer) ThumbLength() float64 { return l.thumbLength }

// SetThumbLength sets the fixed thumb length along the track.
func (l *ScrollbarLayer) SetThumbLength(length float64) {
	if l.thumbLength == length {
		return
	}
	l.thumbLength = length
	l.SetNeedsDisplay()
}

// Enabled reports whether the scrollbar reacts to scrolling.
func (l *ScrollbarLayer) Enabled() bool { return l.enabled }

// SetEnabled enables or disables the scrollbar. A disabled scrollbar keeps
// its thumb at the track start.
func (l *ScrollbarLayer) SetEnabled(enabled bool) {
	if l.enabled == enabled {
		return
	}
	l.enabled = enabled
	l.SetNeedsDisplay()
}

// Resources returns the back track, fore track and thumb resource ids.
func (l *ScrollbarLayer) Resources() (backTrack, foreTrack, thumb quad.ResourceID) {
	return l.backTrack, l.foreTrack, l.thumb
}

// SetResources sets the texture resources. A zero id means the resource is
// not available and the matching quad is skipped.
func (l *ScrollbarLayer) SetResources(backTrack, foreTrack, thumb quad.ResourceID) {
	if l.backTrack == backTrack && l.foreTrack == foreTrack && l.thumb == thumb {
		return
	}
	l.backTrack, l.foreTrack, l.thumb = backTrack, foreTrack, thumb
	l.setNeedsCommit()
}

// CreateDrawable implements Node.
func (l *ScrollbarLayer) CreateDrawable() Drawable {
	return &scrollbarDrawable{
		id:             l.id,
		bounds:         l.bounds,
		contentsOpaque: l.contentsOpaque,
		geometry: scrollbarGeometry{
			orientation: l.orientation,
			currentPos:  l.currentPos,
			maximum:     l.maximum,
			thumbLength: l.thumbLength,
			enabled:     l.enabled,
		},
		backTrack: l.backTrack,
		foreTrack: l.foreTrack,
		thumb:     l.thumb,
	}
}

// scrollbarGeometry computes part rects for a fixed-length thumb.
type scrollbarGeometry struct {
	orientation Orientation
	currentPos  float64
	maximum     float64
	thumbLength float64
	enabled     bool
}

func (g scrollbarGeometry) trackLength(track compositor.Rect) float64 {
	if g.orientation == Horizontal {
		return track.Width
	}
	return track.Height
}

func (g scrollbarGeometry) thickness(track compositor.Rect) float64 {
	if g.orientation == Horizontal {
		return track.Height
	}
	return track.Width
}

func (g scrollbarGeometry) hasThumb(track compositor.Rect) bool {
	return g.enabled && g.thumbLength > 0 && g.thumbLength < g.trackLength(track)
}

// thumbPosition returns the thumb offset from the track start in whole
// pixels. A thumb that moved at all is at least one pixel in.
func (g scrollbarGeometry) thumbPosition(track compositor.Rect) float64 {
	if !g.enabled {
		return 0
	}
	if g.maximum <= 0 {
		return 1
	}
	value := min(max(g.currentPos, 0), g.maximum)
	pos := (g.trackLength(track) - g.thumbLength) * value / g.maximum
	if pos > 0 && pos < 1 {
		pos = 1
	}
	return math.Floor(pos)
}

// split returns the thumb rect and the track parts before and after the
// thumb center.
func (g scrollbarGeometry) split(track compositor.Rect) (before, thumb, after compositor.Rect) {
	pos := g.thumbPosition(track)
	thickness := g.thickness(track)
	if g.orientation == Horizontal {
		thumb = compositor.R(track.X+pos, track.Y+(track.Height-thickness)/2, g.thumbLength, thickness)
		before = compositor.R(track.X, track.Y, pos+thumb.Width/2, track.Height)
		after = compositor.R(before.Right(), track.Y, track.Right()-before.Right(), track.Height)
	} else {
		thumb = compositor.R(track.X+(track.Width-thickness)/2, track.Y+pos, thickness, g.thumbLength)
		before = compositor.R(track.X, track.Y, track.Width, pos+thumb.Height/2)
		after = compositor.R(track.X, before.Bottom(), track.Width, track.Bottom()-before.Bottom())
	}
	if !g.hasThumb(track) {
		thumb = compositor.Rect{}
	}
	return before, thumb, after
}

// uvRect maps r into the [0, 1] texture space of bounds.
func uvRect(r, bounds compositor.Rect) compositor.Rect {
	if bounds.IsEmpty() {
		return compositor.Rect{}
	}
	return compositor.R(
		(r.X-bounds.X)/bounds.Width,
		(r.Y-bounds.Y)/bounds.Height,
		r.Width/bounds.Width,
		r.Height/bounds.Height,
	)
}

type scrollbarDrawable struct {
	id             int
	bounds         compositor.Size
	contentsOpaque bool
	geometry       scrollbarGeometry

	backTrack quad.ResourceID
	foreTrack quad.ResourceID
	thumb     quad.ResourceID
}

func (d *scrollbarDrawable) LayerID() int { return d.id }

// AppendQuads appends the thumb, then the fore track, then the back track.
// The back track is required: without it nothing but the thumb is drawn.
func (d *scrollbarDrawable) AppendQuads(sink quad.Sink, p AppendParams, data *quad.AppendData) {
	h := sink.Allocate(p.SharedQuadState(d.id))
	appendDebugBorder(sink, h, p, d.bounds, scrollbarBorderColor, data)

	track := compositor.RectFromSize(d.bounds)
	_, thumbRect, foreRect := d.geometry.split(track)
	full := compositor.R(0, 0, 1, 1)

	switch {
	case thumbRect.IsEmpty():
	case d.thumb == 0:
		data.NumMissingResources++
	default:
		d.append(sink, h, quad.NewScrollbarQuad(quad.PartThumb, thumbRect, compositor.Rect{}, d.thumb, full), data)
	}

	if d.backTrack == 0 {
		data.NumMissingResources++
		return
	}

	switch {
	case foreRect.IsEmpty():
	case d.foreTrack == 0:
		data.NumMissingResources++
	default:
		d.append(sink, h, quad.NewScrollbarQuad(quad.PartForeTrack, foreRect, d.opaque(foreRect), d.foreTrack, uvRect(foreRect, track)), data)
	}

	if !track.IsEmpty() {
		d.append(sink, h, quad.NewScrollbarQuad(quad.PartBackTrack, track, d.opaque(track), d.backTrack, full), data)
	}
}

func (d *scrollbarDrawable) opaque(r compositor.Rect) compositor.Rect {
	if d.contentsOpaque {
		return r
	}
	return compositor.Rect{}
}

func (d *scrollbarDrawable) append(sink quad.Sink, h quad.StateHandle, q quad.DrawQuad, data *quad.AppendData) {
	if !sink.Append(q, h) {
		data.NumCulled++
	}
}

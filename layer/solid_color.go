package layer

import (
	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/quad"
)

// solidColorBorderColor outlines solid color layers when debug borders are
// shown.
var solidColorBorderColor = compositor.RGBA(0, 128, 255, 160)

// SolidColorLayer fills its bounds with its background color.
//
// ContentsOpaque always equals BackgroundColor().IsOpaque(): the flag is
// derived from the color and cannot be set directly.
type SolidColorLayer struct {
	Layer
}

// NewSolidColorLayer creates a drawing solid color layer with a transparent
// background.
func NewSolidColorLayer() *SolidColorLayer {
	l := &SolidColorLayer{}
	l.init(l, KindSolidColor)
	l.drawsContent = true
	return l
}

// SetBackgroundColor sets the fill color and updates ContentsOpaque to
// match its alpha.
func (l *SolidColorLayer) SetBackgroundColor(c compositor.Color) {
	l.Layer.SetBackgroundColor(c)
}

// CreateDrawable implements Node.
func (l *SolidColorLayer) CreateDrawable() Drawable {
	return &solidColorDrawable{
		id:     l.id,
		bounds: l.bounds,
		color:  l.backgroundColor,
	}
}

type solidColorDrawable struct {
	id     int
	bounds compositor.Size
	color  compositor.Color
}

func (d *solidColorDrawable) LayerID() int { return d.id }

func (d *solidColorDrawable) AppendQuads(sink quad.Sink, p AppendParams, data *quad.AppendData) {
	h := sink.Allocate(p.SharedQuadState(d.id))
	appendDebugBorder(sink, h, p, d.bounds, solidColorBorderColor, data)

	if !sink.Append(quad.NewSolidColorQuad(compositor.RectFromSize(d.bounds), d.color), h) {
		data.NumCulled++
	}
}

package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/layer"
	"github.com/gogpu/compositor/quad"
)

// Scene describes a scrolled page of solid color boxes with a vertical
// scrollbar.
type Scene struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	ContentHeight float64 `toml:"content_height"`
	ScrollY       float64 `toml:"scroll_y"`

	PageScaleFactor    float64 `toml:"page_scale_factor"`
	MinPageScaleFactor float64 `toml:"min_page_scale_factor"`
	MaxPageScaleFactor float64 `toml:"max_page_scale_factor"`

	Scrollbar ScrollbarSpec `toml:"scrollbar"`
	Boxes     []BoxSpec     `toml:"box"`
}

// ScrollbarSpec sizes the scrollbar and colors its parts.
type ScrollbarSpec struct {
	Thickness   float64          `toml:"thickness"`
	ThumbLength float64          `toml:"thumb_length"`
	Track       compositor.Color `toml:"track"`
	ForeTrack   compositor.Color `toml:"fore_track"`
	Thumb       compositor.Color `toml:"thumb"`
}

// BoxSpec is one solid color layer in content coordinates.
type BoxSpec struct {
	X       float64          `toml:"x"`
	Y       float64          `toml:"y"`
	Width   float64          `toml:"width"`
	Height  float64          `toml:"height"`
	Color   compositor.Color `toml:"color"`
	Opacity float64          `toml:"opacity"`
}

// Scrollbar resource ids.
const (
	backTrackID quad.ResourceID = iota + 1
	foreTrackID
	thumbID
)

func defaultScene() Scene {
	s := Scene{
		Width:              480,
		Height:             360,
		ContentHeight:      1440,
		PageScaleFactor:    1,
		MinPageScaleFactor: 0.5,
		MaxPageScaleFactor: 4,
		Scrollbar: ScrollbarSpec{
			Thickness:   12,
			ThumbLength: 60,
			Track:       compositor.RGBA(230, 230, 230, 255),
			ForeTrack:   compositor.RGBA(210, 210, 210, 255),
			Thumb:       compositor.RGBA(90, 90, 90, 255),
		},
	}
	palette := []compositor.Color{
		compositor.RGB(231, 76, 60),
		compositor.RGB(46, 204, 113),
		compositor.RGB(52, 152, 219),
		compositor.RGBA(155, 89, 182, 200),
	}
	for i := range 12 {
		s.Boxes = append(s.Boxes, BoxSpec{
			X:       float64(20 + (i%3)*150),
			Y:       float64(20 + (i/3)*120),
			Width:   130,
			Height:  100,
			Color:   palette[i%len(palette)],
			Opacity: 1,
		})
	}
	return s
}

// loadScene reads a TOML scene on top of the defaults. Boxes in the file
// replace the default boxes; a file without boxes keeps them.
func loadScene(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()
	return parseScene(f)
}

func parseScene(r io.Reader) (Scene, error) {
	s := defaultScene()
	defaults := s.Boxes
	s.Boxes = nil
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("ccdemo: parse scene: %w", err)
	}
	if s.Boxes == nil {
		s.Boxes = defaults
	}
	if s.Width <= 0 || s.Height <= 0 {
		return Scene{}, fmt.Errorf("ccdemo: invalid scene size %dx%d", s.Width, s.Height)
	}
	return s, nil
}

// sceneTree is the layer tree built from a Scene.
type sceneTree struct {
	root      *layer.ContainerLayer
	scroller  *layer.ContainerLayer
	scrollbar *layer.ScrollbarLayer
}

// build creates the tree:
//
//	root
//	├── clip (viewport, masks to bounds)
//	│   └── scroller (content size, scrolls its boxes)
//	│       └── boxes...
//	└── vertical scrollbar
func (s Scene) build() sceneTree {
	w, h := float64(s.Width), float64(s.Height)

	root := layer.NewContainerLayer()
	root.SetBounds(compositor.Sz(w, h))

	clip := layer.NewContainerLayer()
	clip.SetBounds(compositor.Sz(w, h))
	clip.SetMasksToBounds(true)
	root.AddChild(clip)

	scroller := layer.NewContainerLayer()
	scroller.SetBounds(compositor.Sz(w, max(s.ContentHeight, h)))
	scroller.SetMaxScrollOffset(compositor.Pt(0, max(s.ContentHeight-h, 0)))
	clip.AddChild(scroller)

	for _, b := range s.Boxes {
		l := layer.NewSolidColorLayer()
		l.SetPosition(compositor.Pt(b.X, b.Y))
		l.SetBounds(compositor.Sz(b.Width, b.Height))
		l.SetBackgroundColor(b.Color)
		l.SetOpacity(b.Opacity)
		scroller.AddChild(l)
	}

	sb := layer.NewScrollbarLayer(layer.Vertical, scroller.ID())
	sb.SetPosition(compositor.Pt(w-s.Scrollbar.Thickness, 0))
	sb.SetBounds(compositor.Sz(s.Scrollbar.Thickness, h))
	sb.SetThumbLength(s.Scrollbar.ThumbLength)
	sb.SetResources(backTrackID, foreTrackID, thumbID)
	root.AddChild(sb)

	return sceneTree{root: root, scroller: scroller, scrollbar: sb}
}

// resources returns the scrollbar part images.
func (s Scene) resources() map[quad.ResourceID]image.Image {
	return map[quad.ResourceID]image.Image{
		backTrackID: solidImage(s.Scrollbar.Track),
		foreTrackID: solidImage(s.Scrollbar.ForeTrack),
		thumbID:     solidImage(s.Scrollbar.Thumb),
	}
}

func solidImage(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

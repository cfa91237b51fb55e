package layer

import (
	"testing"

	"github.com/gogpu/compositor"
)

var viewport = compositor.R(0, 0, 800, 600)

func TestDrawListOrderAndFiltering(t *testing.T) {
	root := NewContainerLayer()
	root.SetBounds(compositor.Sz(800, 600))
	back, front := NewSolidColorLayer(), NewSolidColorLayer()
	back.SetBounds(compositor.Sz(10, 10))
	front.SetBounds(compositor.Sz(10, 10))
	empty := NewSolidColorLayer()
	hidden := NewContainerLayer()
	hidden.SetOpacity(0)
	hiddenChild := NewSolidColorLayer()
	hiddenChild.SetBounds(compositor.Sz(10, 10))
	hidden.AddChild(hiddenChild)

	root.AddChild(back)
	root.AddChild(empty)
	root.AddChild(hidden)
	root.AddChild(front)

	entries := DrawList(root, compositor.Identity(), viewport)
	var got []int
	for _, e := range entries {
		got = append(got, e.Node.Base().ID())
	}
	if want := []int{front.ID(), back.ID()}; !equalInts(got, want) {
		t.Errorf("DrawList() = %v, want %v", got, want)
	}
}

func TestDrawListProperties(t *testing.T) {
	root := NewContainerLayer()
	root.SetBounds(compositor.Sz(100, 100))
	root.SetMasksToBounds(true)
	root.SetOpacity(0.5)
	root.SetMaxScrollOffset(compositor.Pt(0, 100))
	root.SetScrollOffset(compositor.Pt(0, 30))

	child := NewSolidColorLayer()
	child.SetBounds(compositor.Sz(200, 50))
	child.SetPosition(compositor.Pt(10, 10))
	child.SetOpacity(0.5)
	root.AddChild(child)

	entries := DrawList(root, compositor.Identity(), viewport)
	if len(entries) != 1 {
		t.Fatalf("len(DrawList()) = %d, want 1", len(entries))
	}
	p := entries[0].Props
	if want := compositor.Translate(10, -20); p.Transform != want {
		t.Errorf("Transform = %+v, want %+v", p.Transform, want)
	}
	if p.Opacity != 0.25 {
		t.Errorf("Opacity = %v, want 0.25", p.Opacity)
	}
	if !p.IsClipped || p.ClipRect != compositor.R(0, 0, 100, 100) {
		t.Errorf("ClipRect = %+v (clipped %v), want root bounds", p.ClipRect, p.IsClipped)
	}
	if want := compositor.R(0, 20, 90, 30); p.VisibleContentRect != want {
		t.Errorf("VisibleContentRect = %+v, want %+v", p.VisibleContentRect, want)
	}

	s := p.SharedQuadState(child.ID())
	if s.LayerID != child.ID() || s.Opacity != p.Opacity || s.ClipRect != p.ClipRect {
		t.Errorf("SharedQuadState() = %+v does not mirror %+v", s, p)
	}
}

func TestDrawListDeviceTransform(t *testing.T) {
	root := NewSolidColorLayer()
	root.SetBounds(compositor.Sz(100, 100))
	entries := DrawList(root, compositor.Scale(2, 2), viewport)
	if len(entries) != 1 {
		t.Fatalf("len(DrawList()) = %d, want 1", len(entries))
	}
	if got := entries[0].Props.Transform.MapRect(compositor.R(0, 0, 100, 100)); got != compositor.R(0, 0, 200, 200) {
		t.Errorf("mapped bounds = %+v, want (0,0,200,200)", got)
	}
}

func TestDrawListNilRoot(t *testing.T) {
	if got := DrawList(nil, compositor.Identity(), viewport); got != nil {
		t.Errorf("DrawList(nil) = %v, want nil", got)
	}
}

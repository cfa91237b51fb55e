package layer

import (
	"testing"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/quad"
	"github.com/gogpu/compositor/quad/quadtest"
)

func newTestScrollbar(o Orientation) *ScrollbarLayer {
	l := NewScrollbarLayer(o, 7)
	if o == Horizontal {
		l.SetBounds(compositor.Sz(100, 10))
	} else {
		l.SetBounds(compositor.Sz(10, 100))
	}
	l.SetThumbLength(20)
	l.SetMaximum(200)
	l.SetCurrentPos(100)
	l.SetResources(1, 2, 3)
	return l
}

func appendScrollbar(t *testing.T, l *ScrollbarLayer) (*quadtest.MockCuller, quad.AppendData) {
	t.Helper()
	sink := quadtest.NewMockCuller()
	var data quad.AppendData
	l.CreateDrawable().AppendQuads(sink, AppendParams{DrawProperties: DrawProperties{Opacity: 1}}, &data)
	return sink, data
}

func TestScrollbarThumbPosition(t *testing.T) {
	track := compositor.R(0, 0, 100, 10)
	tests := []struct {
		name string
		g    scrollbarGeometry
		want float64
	}{
		{"middle", scrollbarGeometry{currentPos: 100, maximum: 200, thumbLength: 20, enabled: true}, 40},
		{"start", scrollbarGeometry{currentPos: 0, maximum: 200, thumbLength: 20, enabled: true}, 0},
		{"end", scrollbarGeometry{currentPos: 200, maximum: 200, thumbLength: 20, enabled: true}, 80},
		{"past end clamped", scrollbarGeometry{currentPos: 900, maximum: 200, thumbLength: 20, enabled: true}, 80},
		{"negative clamped", scrollbarGeometry{currentPos: -5, maximum: 200, thumbLength: 20, enabled: true}, 0},
		{"sub-pixel rounds up to 1", scrollbarGeometry{currentPos: 0.1, maximum: 200, thumbLength: 20, enabled: true}, 1},
		{"fraction floors", scrollbarGeometry{currentPos: 101, maximum: 200, thumbLength: 20, enabled: true}, 40},
		{"zero maximum", scrollbarGeometry{maximum: 0, thumbLength: 20, enabled: true}, 1},
		{"disabled", scrollbarGeometry{currentPos: 100, maximum: 200, thumbLength: 20}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.thumbPosition(track); got != tt.want {
				t.Errorf("thumbPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScrollbarSplitTrack(t *testing.T) {
	tests := []struct {
		name                string
		o                   Orientation
		track               compositor.Rect
		before, thumb, fore compositor.Rect
	}{
		{
			"horizontal", Horizontal, compositor.R(0, 0, 100, 10),
			compositor.R(0, 0, 50, 10), compositor.R(40, 0, 20, 10), compositor.R(50, 0, 50, 10),
		},
		{
			"vertical", Vertical, compositor.R(0, 0, 10, 100),
			compositor.R(0, 0, 10, 50), compositor.R(0, 40, 10, 20), compositor.R(0, 50, 10, 50),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scrollbarGeometry{orientation: tt.o, currentPos: 100, maximum: 200, thumbLength: 20, enabled: true}
			before, thumb, fore := g.split(tt.track)
			if before != tt.before || thumb != tt.thumb || fore != tt.fore {
				t.Errorf("split() = %+v %+v %+v, want %+v %+v %+v",
					before, thumb, fore, tt.before, tt.thumb, tt.fore)
			}
		})
	}
}

func TestScrollbarAppendOrder(t *testing.T) {
	l := newTestScrollbar(Horizontal)
	sink, data := appendScrollbar(t, l)

	want := []struct {
		material quad.Material
		rect     compositor.Rect
		id       quad.ResourceID
	}{
		{quad.MaterialScrollbarThumb, compositor.R(40, 0, 20, 10), 3},
		{quad.MaterialScrollbarForeTrack, compositor.R(50, 0, 50, 10), 2},
		{quad.MaterialScrollbarBackTrack, compositor.R(0, 0, 100, 10), 1},
	}
	list := sink.QuadList()
	if list.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", list.Len(), len(want))
	}
	for i, w := range want {
		q := list.At(i).(*quad.ScrollbarQuad)
		if q.Material() != w.material || q.Rect() != w.rect || q.ResourceID != w.id {
			t.Errorf("quad %d = %v %+v id %d, want %v %+v id %d",
				i, q.Material(), q.Rect(), q.ResourceID, w.material, w.rect, w.id)
		}
	}
	if data != (quad.AppendData{}) {
		t.Errorf("AppendData = %+v, want zero", data)
	}

	fore := list.At(1).(*quad.ScrollbarQuad)
	if want := compositor.R(0.5, 0, 0.5, 1); fore.UVRect != want {
		t.Errorf("fore track UVRect = %+v, want %+v", fore.UVRect, want)
	}
}

func TestScrollbarMissingResources(t *testing.T) {
	tests := []struct {
		name              string
		back, fore, thumb quad.ResourceID
		want              []quad.Material
		wantMissing       int
	}{
		{"all present", 1, 2, 3, []quad.Material{
			quad.MaterialScrollbarThumb, quad.MaterialScrollbarForeTrack, quad.MaterialScrollbarBackTrack,
		}, 0},
		{"no thumb", 1, 2, 0, []quad.Material{
			quad.MaterialScrollbarForeTrack, quad.MaterialScrollbarBackTrack,
		}, 1},
		{"no fore track", 1, 0, 3, []quad.Material{
			quad.MaterialScrollbarThumb, quad.MaterialScrollbarBackTrack,
		}, 1},
		{"no back track", 0, 2, 3, []quad.Material{quad.MaterialScrollbarThumb}, 1},
		{"nothing", 0, 0, 0, nil, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestScrollbar(Horizontal)
			l.SetResources(tt.back, tt.fore, tt.thumb)
			sink, data := appendScrollbar(t, l)

			var got []quad.Material
			for _, q := range sink.QuadList().All() {
				got = append(got, q.Material())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("materials = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("materials = %v, want %v", got, tt.want)
					break
				}
			}
			if data.NumMissingResources != tt.wantMissing {
				t.Errorf("NumMissingResources = %d, want %d", data.NumMissingResources, tt.wantMissing)
			}
		})
	}
}

func TestScrollbarNoThumbWhenDisabled(t *testing.T) {
	l := newTestScrollbar(Vertical)
	l.SetEnabled(false)
	sink, _ := appendScrollbar(t, l)
	for _, q := range sink.QuadList().All() {
		if q.Material() == quad.MaterialScrollbarThumb {
			t.Fatal("disabled scrollbar appended a thumb")
		}
	}
}

func TestScrollbarOpaqueTracks(t *testing.T) {
	l := newTestScrollbar(Horizontal)
	l.SetContentsOpaque(true)
	sink, _ := appendScrollbar(t, l)
	list := sink.QuadList()
	if !list.At(0).OpaqueRect().IsEmpty() {
		t.Error("thumb has an opaque rect")
	}
	if got := list.At(2).OpaqueRect(); got != list.At(2).Rect() {
		t.Errorf("back track OpaqueRect() = %+v, want the quad rect", got)
	}
}

func TestScrollbarSettersNotify(t *testing.T) {
	host := &fakeHost{}
	l := NewScrollbarLayer(Vertical, 1)
	l.SetHost(host)
	l.SetCurrentPos(10)
	l.SetCurrentPos(10)
	l.SetMaximum(50)
	l.SetTotalSize(150)
	l.SetResources(1, 1, 1)
	l.SetResources(1, 1, 1)
	if host.commits != 4 {
		t.Errorf("commits = %d, want 4", host.commits)
	}
	if l.Kind() != KindScrollbar || l.Orientation() != Vertical || l.ScrollLayerID() != 1 {
		t.Errorf("Kind/Orientation/ScrollLayerID = %v %v %d", l.Kind(), l.Orientation(), l.ScrollLayerID())
	}
}

// Package scrollbar animates scrollbar visibility.
//
// A FadeController keeps scrollbars fully visible for FadeoutDelay after the
// last scroll or pinch gesture, then fades them out linearly over
// FadeoutLength. It is driven by a per-frame clock tick and is not safe for
// concurrent use.
package scrollbar

import (
	"time"

	"github.com/gogpu/compositor"
	"github.com/gogpu/compositor/layer"
)

// OpacityTarget receives the opacity computed by a FadeController.
// Every layer satisfies it.
type OpacityTarget interface {
	Opacity() float64
	SetOpacity(opacity float64)
}

// ScrollSource is the scrolling layer a scrollbar tracks. Every layer
// satisfies it.
type ScrollSource interface {
	ScrollOffset() compositor.Point
	MaxScrollOffset() compositor.Point
	Bounds() compositor.Size
}

// FadeController fades scrollbars out after scrolling stops.
type FadeController struct {
	// FadeoutDelay is how long the scrollbar stays fully visible after the
	// last awaken.
	FadeoutDelay time.Duration

	// FadeoutLength is the duration of the linear ramp from 1 to 0.
	FadeoutLength time.Duration

	targets    []OpacityTarget
	horizontal *layer.ScrollbarLayer
	vertical   *layer.ScrollbarLayer

	lastAwakenTime     time.Time
	pinchGestureActive bool
	opacity            float64
}

// NewFadeController creates a controller that applies its opacity to
// target. target may be nil when only scrollbar layers bound with
// SetScrollbars should fade.
func NewFadeController(target OpacityTarget, delay, length time.Duration) *FadeController {
	c := &FadeController{FadeoutDelay: delay, FadeoutLength: length}
	if target != nil {
		c.targets = append(c.targets, target)
	}
	return c
}

// NewFadeControllerFromSettings creates a controller using the fade-out
// delay and length of s.
func NewFadeControllerFromSettings(target OpacityTarget, s compositor.Settings) *FadeController {
	return NewFadeController(target, s.FadeoutDelay(), s.FadeoutLength())
}

// SetScrollbars binds the horizontal and vertical scrollbar layers. Either
// may be nil. Bound scrollbars receive scroll positions from
// OnScrollOffsetUpdate and fade with the controller.
func (c *FadeController) SetScrollbars(horizontal, vertical *layer.ScrollbarLayer) {
	c.horizontal, c.vertical = horizontal, vertical
	for _, sb := range []*layer.ScrollbarLayer{horizontal, vertical} {
		if sb != nil && !c.hasTarget(sb) {
			c.targets = append(c.targets, sb)
		}
	}
}

// Scrollbars returns the bound scrollbar layers.
func (c *FadeController) Scrollbars() (horizontal, vertical *layer.ScrollbarLayer) {
	return c.horizontal, c.vertical
}

func (c *FadeController) hasTarget(t OpacityTarget) bool {
	for _, have := range c.targets {
		if have == t {
			return true
		}
	}
	return false
}

// OnScrollOffsetUpdate records that src scrolled at now. The scrollbars are
// shown again and the fade-out delay restarts. Bound scrollbar layers take
// their position and range from src.
func (c *FadeController) OnScrollOffsetUpdate(src ScrollSource, now time.Time) {
	if src != nil {
		offset, maxOffset, bounds := src.ScrollOffset(), src.MaxScrollOffset(), src.Bounds()
		if c.horizontal != nil {
			c.horizontal.SetCurrentPos(offset.X)
			c.horizontal.SetTotalSize(bounds.Width)
			c.horizontal.SetMaximum(maxOffset.X)
		}
		if c.vertical != nil {
			c.vertical.SetCurrentPos(offset.Y)
			c.vertical.SetTotalSize(bounds.Height)
			c.vertical.SetMaximum(maxOffset.Y)
		}
	}
	c.lastAwakenTime = now
	compositor.Logger().Debug("scrollbar: awaken", "reason", "scroll", "time", now)
}

// OnPinchGestureUpdate keeps the scrollbars visible for as long as the
// pinch gesture lasts.
func (c *FadeController) OnPinchGestureUpdate(now time.Time) {
	c.pinchGestureActive = true
}

// OnPinchGestureEnd ends pinch suppression. The fade-out delay restarts
// from now.
func (c *FadeController) OnPinchGestureEnd(now time.Time) {
	c.pinchGestureActive = false
	c.lastAwakenTime = now
	compositor.Logger().Debug("scrollbar: awaken", "reason", "pinch end", "time", now)
}

// PinchGestureActive reports whether a pinch gesture is in progress.
func (c *FadeController) PinchGestureActive() bool { return c.pinchGestureActive }

// LastAwakenTime returns the time of the last scroll or pinch end.
func (c *FadeController) LastAwakenTime() time.Time { return c.lastAwakenTime }

// OpacityAtTime returns the scrollbar opacity at t.
//
// Times before the last awaken are treated as within the delay window and
// yield 1.
func (c *FadeController) OpacityAtTime(t time.Time) float64 {
	if c.pinchGestureActive {
		return 1
	}
	delta := t.Sub(c.lastAwakenTime)
	if delta < c.FadeoutDelay {
		return 1
	}
	elapsed := delta - c.FadeoutDelay
	if elapsed >= c.FadeoutLength {
		return 0
	}
	return 1 - float64(elapsed)/float64(c.FadeoutLength)
}

// Advance applies the opacity at now to the targets and reports whether the
// visible opacity changed. Once the scrollbars are hidden further calls
// return false until the next awaken.
func (c *FadeController) Advance(now time.Time) bool {
	o := c.OpacityAtTime(now)
	changed := c.opacity != o
	c.opacity = o
	for _, t := range c.targets {
		if t.Opacity() != o {
			t.SetOpacity(o)
			changed = true
		}
	}
	return changed
}

// Opacity returns the opacity applied by the last Advance.
func (c *FadeController) Opacity() float64 { return c.opacity }

// IsAnimating reports whether the opacity at now or later can differ from
// zero, so the caller should keep ticking Advance.
func (c *FadeController) IsAnimating(now time.Time) bool {
	if c.pinchGestureActive {
		return true
	}
	return now.Sub(c.lastAwakenTime) < c.FadeoutDelay+c.FadeoutLength
}

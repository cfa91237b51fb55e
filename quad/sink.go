package quad

// Sink receives the output of one layer's drawable during frame assembly.
//
// Allocate stores the layer's shared state and returns a handle valid for
// the current frame. Append adds a quad bound to that handle and reports
// whether it was kept; quads with an empty rect are culled.
type Sink interface {
	Allocate(state SharedQuadState) StateHandle
	Append(q DrawQuad, h StateHandle) bool
}

// AppendData collects per-layer facts reported while appending quads.
type AppendData struct {
	// NumMissingResources counts quads skipped because their texture
	// resource was not available.
	NumMissingResources int

	// NumCulled counts quads the sink rejected.
	NumCulled int
}

// Add accumulates o into d.
func (d *AppendData) Add(o AppendData) {
	d.NumMissingResources += o.NumMissingResources
	d.NumCulled += o.NumCulled
}

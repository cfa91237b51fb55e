package layer

// ContainerLayer groups and positions its children. It draws nothing.
type ContainerLayer struct {
	Layer
}

// NewContainerLayer creates an empty container.
func NewContainerLayer() *ContainerLayer {
	l := &ContainerLayer{}
	l.init(l, KindContainer)
	return l
}

// CreateDrawable implements Node. Containers have no drawable.
func (l *ContainerLayer) CreateDrawable() Drawable { return nil }

package plot

// Engine is the rendering capability a chart is attached to
type Engine interface {
	// Init attaches a new renderer to the surface
	Init(surface Surface) (Renderer, error)
}

// Renderer is an engine instance bound to one surface
type Renderer interface {
	// SetOption replaces the whole visual state with config
	SetOption(config *RenderConfig) error
	// Resize recalculates the layout for the current surface size
	Resize() error
}

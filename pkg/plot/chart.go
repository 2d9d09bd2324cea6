package plot

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/logger"
)

// Chart is a chart instance bound to a single surface.
// Apply and resize handling never run concurrently.
type Chart struct {
	sync.Mutex
	surface      Surface
	renderer     Renderer
	subscription Subscription
	option       *RenderConfig
	lastUpdate   time.Time
	resizes      int
	log          logger.Logger
}

// Initialize attaches a renderer from engine to surface and subscribes to
// the surface's resize notifications for the lifetime of the chart.
func Initialize(engine Engine, surface Surface, log logger.Logger) (*Chart, error) {
	if surface == nil || surface.ID() == "" {
		return nil, fmt.Errorf("%w: invalid surface handle", core.ErrInitialization)
	}
	if engine == nil {
		return nil, fmt.Errorf("%w: rendering engine unavailable", core.ErrInitialization)
	}
	if log == nil {
		return nil, fmt.Errorf("%w: no logger", core.ErrInitialization)
	}

	renderer, err := engine.Init(surface)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInitialization, err)
	}
	if renderer == nil {
		return nil, fmt.Errorf("%w: engine returned no renderer", core.ErrInitialization)
	}

	chart := &Chart{
		surface:  surface,
		renderer: renderer,
		log:      log.WithField("surface", surface.ID()),
	}
	chart.subscription = surface.OnResize(func(Size) {
		chart.OnSurfaceResize()
	})

	chart.log.Debug("Chart bound to surface")
	return chart, nil
}

// Apply renders config, replacing any previously applied option
func (c *Chart) Apply(config *RenderConfig) error {
	if config == nil {
		return fmt.Errorf("%w: nil option", core.ErrConfiguration)
	}

	c.Lock()
	defer c.Unlock()

	if err := c.renderer.SetOption(config); err != nil {
		return fmt.Errorf("failed to apply chart option: %w", err)
	}

	c.option = config
	c.lastUpdate = time.Now()
	c.log.WithField("points", len(config.XAxis.Data)).Debug("Chart option applied")
	return nil
}

// OnSurfaceResize recalculates the layout after the surface changed size.
// The applied option is left untouched.
func (c *Chart) OnSurfaceResize() {
	c.Lock()
	defer c.Unlock()

	c.resizes++
	if err := c.renderer.Resize(); err != nil {
		c.log.WithError(err).Warn("Chart resize failed")
	}
}

// Option returns the last applied option, or nil before the first Apply
func (c *Chart) Option() *RenderConfig {
	c.Lock()
	defer c.Unlock()
	return c.option
}

// Surface returns the surface the chart is bound to
func (c *Chart) Surface() Surface {
	return c.surface
}

// LastUpdate returns when an option was last applied
func (c *Chart) LastUpdate() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.lastUpdate
}

// Resizes returns how many resize notifications the chart has handled
func (c *Chart) Resizes() int {
	c.Lock()
	defer c.Unlock()
	return c.resizes
}

// Close drops the resize subscription. The chart stays usable for Apply.
func (c *Chart) Close() error {
	c.Lock()
	defer c.Unlock()

	if c.subscription == nil {
		return errors.New("chart already closed")
	}
	c.subscription.Unsubscribe()
	c.subscription = nil
	return nil
}

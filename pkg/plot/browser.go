package plot

import (
	"errors"
	"fmt"
	"sync"
)

type optionPayload struct {
	Surface  string        `json:"surface"`
	Option   *RenderConfig `json:"option"`
	NotMerge bool          `json:"notMerge"`
}

type resizePayload struct {
	Surface string `json:"surface"`
	Size    Size   `json:"size"`
}

// BrowserEngine drives the ECharts instance running in connected pages.
// It accepts a single surface.
type BrowserEngine struct {
	sync.Mutex
	ws      *WebSocketManager
	surface Surface
}

// NewBrowserEngine creates an engine publishing through ws
func NewBrowserEngine(ws *WebSocketManager) *BrowserEngine {
	return &BrowserEngine{ws: ws}
}

// Init implements Engine
func (e *BrowserEngine) Init(surface Surface) (Renderer, error) {
	if e.ws == nil {
		return nil, errors.New("no websocket manager attached")
	}

	e.Lock()
	defer e.Unlock()

	if e.surface != nil && e.surface.ID() != surface.ID() {
		return nil, fmt.Errorf("engine already bound to surface %q", e.surface.ID())
	}
	e.surface = surface

	return &browserRenderer{ws: e.ws, surface: surface}, nil
}

type browserRenderer struct {
	ws      *WebSocketManager
	surface Surface
}

func (r *browserRenderer) SetOption(config *RenderConfig) error {
	return r.ws.Publish(WebSocketMessage{
		Type: MessageSetOption,
		Payload: optionPayload{
			Surface:  r.surface.ID(),
			Option:   config,
			NotMerge: true,
		},
	}, true)
}

func (r *browserRenderer) Resize() error {
	return r.ws.Publish(WebSocketMessage{
		Type: MessageResize,
		Payload: resizePayload{
			Surface: r.surface.ID(),
			Size:    r.surface.Size(),
		},
	}, false)
}

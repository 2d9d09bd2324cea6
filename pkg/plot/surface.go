package plot

import (
	"sync"

	"github.com/StudioSol/set"
)

// Size is the pixel size of a display surface
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Subscription is the token returned by Surface.OnResize
type Subscription interface {
	// Unsubscribe stops further notifications. Calling it twice is a no-op.
	Unsubscribe()
}

// Surface is the display region a chart renders into
type Surface interface {
	// ID identifies the region inside its host, e.g. a page element id
	ID() string
	// Size returns the last known dimensions
	Size() Size
	// OnResize registers fn to be called on every size change notification
	OnResize(fn func(Size)) Subscription
}

// BrowserSurface is the handle of a page element whose size changes are
// reported by connected browsers.
type BrowserSurface struct {
	sync.Mutex
	id          string
	size        Size
	nextID      int64
	order       *set.LinkedHashSetINT64
	subscribers map[int64]func(Size)
	dispatch    sync.Mutex
}

// NewBrowserSurface creates a surface handle for the element with the given id
func NewBrowserSurface(id string) *BrowserSurface {
	return &BrowserSurface{
		id:          id,
		order:       set.NewLinkedHashSetINT64(),
		subscribers: make(map[int64]func(Size)),
	}
}

// ID implements Surface. A nil surface has no id.
func (s *BrowserSurface) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Size implements Surface
func (s *BrowserSurface) Size() Size {
	s.Lock()
	defer s.Unlock()
	return s.size
}

// OnResize implements Surface
func (s *BrowserSurface) OnResize(fn func(Size)) Subscription {
	s.Lock()
	defer s.Unlock()

	s.nextID++
	id := s.nextID
	s.order.Add(id)
	s.subscribers[id] = fn

	return &surfaceSubscription{surface: s, id: id}
}

// Subscribers returns the number of active subscriptions
func (s *BrowserSurface) Subscribers() int {
	s.Lock()
	defer s.Unlock()
	return len(s.subscribers)
}

// Notify records a new size and calls every subscriber in registration
// order. Notifications are delivered one at a time.
func (s *BrowserSurface) Notify(size Size) {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.Lock()
	s.size = size
	callbacks := make([]func(Size), 0, len(s.subscribers))
	for id := range s.order.Iter() {
		if fn, ok := s.subscribers[id]; ok {
			callbacks = append(callbacks, fn)
		}
	}
	s.Unlock()

	for _, fn := range callbacks {
		fn(size)
	}
}

func (s *BrowserSurface) remove(id int64) {
	s.Lock()
	defer s.Unlock()
	s.order.Remove(id)
	delete(s.subscribers, id)
}

type surfaceSubscription struct {
	once    sync.Once
	surface *BrowserSurface
	id      int64
}

func (s *surfaceSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.surface.remove(s.id)
	})
}

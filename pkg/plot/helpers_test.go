package plot

import (
	"io"
	"sync"
	"testing"

	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/logger"
	"github.com/raykavin/yieldchart/pkg/logger/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := zerolog.New(zerolog.Config{Level: "debug", JSON: true, Output: io.Discard})
	require.NoError(t, err)
	return log
}

func scenarioPoints() []core.DataPoint {
	return []core.DataPoint{
		{Date: "2023-01", Value: 2.85},
		{Date: "2023-02", Value: 2.78},
		{Date: "2023-03", Value: 2.92},
	}
}

type recordingRenderer struct {
	sync.Mutex
	options   []*RenderConfig
	resizes   int
	resizeErr error
}

func (r *recordingRenderer) SetOption(config *RenderConfig) error {
	r.Lock()
	defer r.Unlock()
	r.options = append(r.options, config)
	return nil
}

func (r *recordingRenderer) Resize() error {
	r.Lock()
	defer r.Unlock()
	r.resizes++
	return r.resizeErr
}

func (r *recordingRenderer) Resizes() int {
	r.Lock()
	defer r.Unlock()
	return r.resizes
}

type fakeEngine struct {
	renderer *recordingRenderer
	err      error
	inits    int
}

func (e *fakeEngine) Init(Surface) (Renderer, error) {
	e.inits++
	if e.err != nil {
		return nil, e.err
	}
	return e.renderer, nil
}

package report

import (
	"bytes"
	"testing"

	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/raykavin/yieldchart/pkg/dataset"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, dataset.CSI300DividendYield(), "%"))

	out := buf.String()
	require.Contains(t, out, "2023-01")
	require.Contains(t, out, "2.85%")
	require.Contains(t, out, "3.10%")
	require.Contains(t, out, "-0.07")
	require.Contains(t, out, "MEAN")
	require.Contains(t, out, "POINTS:  10")
	require.Contains(t, out, "MIN:     2.78%")
	require.Contains(t, out, "MAX:     3.12%")
	require.Contains(t, out, "DISTRIBUTION")
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, Write(&buf, nil, "%"), core.ErrConfiguration)
	require.Zero(t, buf.Len())
}

package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	rbox "github.com/grindlemire/go-rbox"
)

// newRow builds a row of a 10x5 fixed box and a flexible fill box.
func newRow(t *testing.T) (*rbox.Tree, *rbox.Box) {
	t.Helper()
	tree := rbox.NewTree()
	row := tree.NewBox(&rbox.FlexBox{Direction: rbox.Row}, rbox.WithLabel("row"))
	require.NoError(t, row.AppendChild(tree.NewBox(&rbox.FixedBox{Width: 10, Height: 5})))
	fill := tree.NewBox(&rbox.FillBox{})
	require.NoError(t, row.AppendFlexChild(fill, 1))
	require.NoError(t, tree.SetRoot(row))
	return tree, fill
}

func TestCollector_Layout(t *testing.T) {
	tree, fill := newRow(t)
	c := NewCollector()
	owner := rbox.NewOwner(tree, rbox.Loose(rbox.NewSize(40, 10)), rbox.WithHooks(c))

	require.NoError(t, owner.FlushLayout())
	require.Equal(t, 1.0, testutil.ToFloat64(c.layouts.WithLabelValues("FixedBox")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.layouts.WithLabelValues("FillBox")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.layouts.WithLabelValues("FlexBox")))
	require.Equal(t, 3.0, testutil.ToFloat64(c.lastFlushNodes))

	fill.MarkNeedsLayout()
	require.NoError(t, owner.FlushLayout())
	require.Equal(t, 1.0, testutil.ToFloat64(c.memoHits.WithLabelValues("FixedBox")))
	require.Equal(t, 2.0, testutil.ToFloat64(c.layouts.WithLabelValues("FillBox")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.layouts.WithLabelValues("FixedBox")))
	require.Equal(t, 2.0, testutil.ToFloat64(c.lastFlushNodes))

	require.Equal(t, 2.0, testutil.ToFloat64(c.flushes.WithLabelValues("ok")))
	require.Equal(t, 1, testutil.CollectAndCount(c.flushDuration))
}

func TestCollector_Intrinsics(t *testing.T) {
	tree, _ := newRow(t)
	c := NewCollector()
	lc := rbox.NewLayoutContext(rbox.WithHooks(c))

	for i := 0; i < 2; i++ {
		w, err := tree.Root().MaxIntrinsicWidth(lc, rbox.Infinity)
		require.NoError(t, err)
		require.Equal(t, 10.0, w)
	}

	require.Equal(t, 3.0, testutil.ToFloat64(c.intrinsics.WithLabelValues("MaxIntrinsicWidth", "miss")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.intrinsics.WithLabelValues("MaxIntrinsicWidth", "hit")))
}

func TestCollector_FailedFlush(t *testing.T) {
	if !rbox.DiagnosticsCompiled() {
		t.Skip("the default layout step only fails when diagnosing")
	}
	tree := rbox.NewTree()
	require.NoError(t, tree.SetRoot(tree.NewBox(nil)))
	c := NewCollector()
	owner := rbox.NewOwner(tree, rbox.Loose(rbox.NewSize(10, 10)), rbox.WithHooks(c))

	err := owner.FlushLayout()
	require.True(t, rbox.Is(err, rbox.ErrCodeProtocol), "err = %v", err)
	require.Equal(t, 1.0, testutil.ToFloat64(c.flushes.WithLabelValues("error")))
	require.Equal(t, 0.0, testutil.ToFloat64(c.flushes.WithLabelValues("ok")))
}

func TestCollector_WriteText(t *testing.T) {
	tree, _ := newRow(t)
	c := NewCollector()
	require.NoError(t, rbox.NewOwner(tree, rbox.Loose(rbox.NewSize(40, 10)), rbox.WithHooks(c)).FlushLayout())

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	out := buf.String()
	require.Contains(t, out, `rbox_layout_boxes_total{kind="FixedBox"} 1`)
	require.Contains(t, out, `rbox_owner_flushes_total{status="ok"} 1`)
	require.Contains(t, out, "rbox_owner_flush_duration_seconds_count 1")
}

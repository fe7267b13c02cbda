package rbox

import "math"

// IntrinsicDimension names one of the four intrinsic queries.
type IntrinsicDimension uint8

const (
	MinIntrinsicWidth IntrinsicDimension = iota
	MaxIntrinsicWidth
	MinIntrinsicHeight
	MaxIntrinsicHeight
)

func (d IntrinsicDimension) String() string {
	switch d {
	case MinIntrinsicWidth:
		return "MinIntrinsicWidth"
	case MaxIntrinsicWidth:
		return "MaxIntrinsicWidth"
	case MinIntrinsicHeight:
		return "MinIntrinsicHeight"
	default:
		return "MaxIntrinsicHeight"
	}
}

// argName is the name of the query's input axis.
func (d IntrinsicDimension) argName() string {
	if d == MinIntrinsicWidth || d == MaxIntrinsicWidth {
		return "height"
	}
	return "width"
}

type intrinsicKey struct {
	dim IntrinsicDimension
	arg float64
}

// MinIntrinsicWidth returns the smallest width the box can have at the
// given height without failing to paint its content. Pass [Infinity] when
// no particular height is meant.
func (b *Box) MinIntrinsicWidth(lc *LayoutContext, height float64) (float64, error) {
	return b.intrinsic(lc, MinIntrinsicWidth, height)
}

// MaxIntrinsicWidth returns the smallest width beyond which growing the box
// at the given height no longer shrinks its height.
func (b *Box) MaxIntrinsicWidth(lc *LayoutContext, height float64) (float64, error) {
	return b.intrinsic(lc, MaxIntrinsicWidth, height)
}

// MinIntrinsicHeight returns the smallest height the box can have at the
// given width without failing to paint its content.
func (b *Box) MinIntrinsicHeight(lc *LayoutContext, width float64) (float64, error) {
	return b.intrinsic(lc, MinIntrinsicHeight, width)
}

// MaxIntrinsicHeight returns the smallest height beyond which growing the
// box at the given width no longer shrinks its width.
func (b *Box) MaxIntrinsicHeight(lc *LayoutContext, width float64) (float64, error) {
	return b.intrinsic(lc, MaxIntrinsicHeight, width)
}

// Intrinsic dispatches one of the four queries by name.
func (b *Box) Intrinsic(lc *LayoutContext, dim IntrinsicDimension, arg float64) (float64, error) {
	return b.intrinsic(lc, dim, arg)
}

// intrinsic checks the argument, then answers from the cache unless the
// validator is probing intrinsics, in which case the result is computed
// fresh and not stored.
func (b *Box) intrinsic(lc *LayoutContext, dim IntrinsicDimension, arg float64) (float64, error) {
	if math.IsNaN(arg) {
		return 0, newError(ErrCodePrecondition, b,
			"the %s argument to %s was absent; if you do not have a specific %s in mind, pass Infinity",
			dim.argName(), dim, dim.argName())
	}
	if arg < 0 {
		return 0, newError(ErrCodePrecondition, b,
			"the %s argument to %s was negative (%v); clamp computed values into the valid range first",
			dim.argName(), dim, arg)
	}
	if lc.diagnosing() && !lc.checkingIntrinsics && lc.Active() == b && lc.Phase() == PhaseResize {
		return 0, newError(ErrCodeProtocol, b, "%s queried during the box's own resize step", dim)
	}

	if lc.checkingIntrinsics {
		return b.computeIntrinsic(lc, dim, arg)
	}

	key := intrinsicKey{dim: dim, arg: arg}
	if v, ok := b.intrinsics[key]; ok {
		lc.stats.IntrinsicHits++
		lc.hooks.OnIntrinsic(b, dim, true)
		return v, nil
	}
	v, err := b.computeIntrinsic(lc, dim, arg)
	if err != nil {
		return 0, err
	}
	if b.intrinsics == nil {
		b.intrinsics = make(map[intrinsicKey]float64)
	}
	b.intrinsics[key] = v
	lc.stats.IntrinsicMisses++
	lc.hooks.OnIntrinsic(b, dim, false)
	return v, nil
}

func (b *Box) computeIntrinsic(lc *LayoutContext, dim IntrinsicDimension, arg float64) (float64, error) {
	s, ok := b.renderer.(IntrinsicSizer)
	if !ok {
		return 0, nil
	}
	switch dim {
	case MinIntrinsicWidth:
		return s.ComputeMinIntrinsicWidth(lc, b, arg)
	case MaxIntrinsicWidth:
		return s.ComputeMaxIntrinsicWidth(lc, b, arg)
	case MinIntrinsicHeight:
		return s.ComputeMinIntrinsicHeight(lc, b, arg)
	default:
		return s.ComputeMaxIntrinsicHeight(lc, b, arg)
	}
}

// IntrinsicCacheLen returns the number of memoized intrinsic results.
func (b *Box) IntrinsicCacheLen() int {
	return len(b.intrinsics)
}

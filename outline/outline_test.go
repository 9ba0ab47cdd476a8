package outline

import (
	"strings"
	"testing"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/outlinesvg/internal/fontload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func pt(x, y float32) opentype.SegmentPoint {
	return opentype.SegmentPoint{X: x, Y: y}
}

func moveTo(x, y float32) opentype.Segment {
	return opentype.Segment{Op: opentype.SegmentOpMoveTo, Args: [3]opentype.SegmentPoint{pt(x, y)}}
}

func lineTo(x, y float32) opentype.Segment {
	return opentype.Segment{Op: opentype.SegmentOpLineTo, Args: [3]opentype.SegmentPoint{pt(x, y)}}
}

func TestPathData(t *testing.T) {
	tests := []struct {
		name string
		segs []opentype.Segment
		want string
	}{
		{"empty", nil, ""},
		{
			name: "square uses H and V",
			segs: []opentype.Segment{
				moveTo(0, 0), lineTo(100, 0), lineTo(100, 100), lineTo(0, 100), lineTo(0, 0),
			},
			want: "M0 0H100V100H0V0Z",
		},
		{
			name: "diagonal line",
			segs: []opentype.Segment{moveTo(10, 20), lineTo(30, 40)},
			want: "M10 20L30 40Z",
		},
		{
			name: "curves and fractions",
			segs: []opentype.Segment{
				moveTo(0.5, -1.25),
				{Op: opentype.SegmentOpQuadTo, Args: [3]opentype.SegmentPoint{pt(10, 20), pt(30, 0)}},
				{Op: opentype.SegmentOpCubeTo, Args: [3]opentype.SegmentPoint{pt(1, 2), pt(3, 4), pt(5, 6)}},
			},
			want: "M0.5 -1.25Q10 20 30 0C1 2 3 4 5 6Z",
		},
		{
			name: "two contours are closed separately",
			segs: []opentype.Segment{
				moveTo(0, 0), lineTo(10, 10),
				moveTo(20, 20), lineTo(30, 30),
			},
			want: "M0 0L10 10ZM20 20L30 30Z",
		},
		{
			name: "open contour is closed implicitly",
			segs: []opentype.Segment{
				moveTo(0, 0), lineTo(10, 10), lineTo(20, 0),
			},
			want: "M0 0L10 10L20 0Z",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PathData(tt.segs))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{-0.0, "0"},
		{750, "750"},
		{-200, "-200"},
		{307.2, "307.2"},
		{0.15 * 2048 * 4, "1228.8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v), "FormatNumber(%v)", tt.v)
	}
}

func TestExtractGoRegular(t *testing.T) {
	f, err := fontload.ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	x := NewExtractor(f.Face)
	//
	gid, ok := f.Face.NominalGlyph('A')
	require.True(t, ok)
	ol, err := x.Extract(gid)
	require.NoError(t, err)
	require.False(t, ol.IsEmpty(), "expected 'A' to have ink")
	require.True(t, strings.HasPrefix(ol.PathData, "M"), "path data must start with a move: %s", ol.PathData)
	require.True(t, strings.HasSuffix(ol.PathData, "Z"), "path data must be closed: %s", ol.PathData)
	require.Greater(t, ol.Advance, 0.0)
	//
	gid, ok = f.Face.NominalGlyph(' ')
	require.True(t, ok)
	ol, err = x.Extract(gid)
	require.NoError(t, err, "a space must not raise an error")
	require.True(t, ol.IsEmpty(), "expected space to have no ink")
	require.Greater(t, ol.Advance, 0.0, "expected space to have an advance width")
}

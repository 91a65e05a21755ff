package geom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepBetween(t *testing.T) {
	testCases := []struct {
		name     string
		from, to Point[int]
		expected Step
		ok       bool
	}{
		{name: "down", from: Pt(0, 0), to: Pt(0, 1), expected: Down, ok: true},
		{name: "up", from: Pt(0, 0), to: Pt(0, -1), expected: Up, ok: true},
		{name: "right", from: Pt(4, 2), to: Pt(5, 2), expected: Right, ok: true},
		{name: "left", from: Pt(4, 2), to: Pt(3, 2), expected: Left, ok: true},
		{name: "same point", from: Pt(1, 1), to: Pt(1, 1), ok: false},
		{name: "diagonal", from: Pt(0, 0), to: Pt(1, 1), ok: false},
		{name: "two units", from: Pt(0, 0), to: Pt(2, 0), ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			step, ok := StepBetween(tc.from, tc.to)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, step)
				assert.Equal(t, tc.to, tc.from.Add(Vector[int](step)))
			}
		})
	}
}

func TestStep_OppositeAndAxis(t *testing.T) {
	for _, s := range Steps {
		assert.Equal(t, s, s.Opposite().Opposite(), s.String())
		assert.Equal(t, s.Horizontal(), s.Opposite().Horizontal(), s.String())
		v := Vector[int64](s).Add(Vector[int64](s.Opposite()))
		assert.Equal(t, Point[int64]{}, v, s.String())
	}
	assert.False(t, Step(9).Valid())
	assert.Equal(t, "step(9)", Step(9).String())
}

func TestValidatePath(t *testing.T) {
	require.ErrorIs(t, ValidatePath[int32](nil), ErrEmptyPath)
	require.NoError(t, ValidatePath([]Point[int32]{Pt[int32](4, 2)}))
	require.NoError(t, ValidatePath([]Point[int32]{{0, 0}, {1, 0}, {1, 1}, {0, 1}}))

	err := ValidatePath([]Point[int32]{{0, 0}, {1, 0}, {3, 0}})
	require.ErrorIs(t, err, ErrNotOrthogonal)
	assert.Contains(t, err.Error(), "index 2")
}

func TestPoint_JSON(t *testing.T) {
	data, err := json.Marshal([]Point[int16]{{3, -1}, {0, 7}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[3,-1],[0,7]]`, string(data))

	var p Point[int16]
	require.NoError(t, json.Unmarshal([]byte(`[-10, 8]`), &p))
	assert.Equal(t, Pt[int16](-10, 8), p)

	require.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &p))
	require.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &p))
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint[int]("-10, 8")
	require.NoError(t, err)
	assert.Equal(t, Pt(-10, 8), p)
	assert.Equal(t, "-10,8", p.Key())

	_, err = ParsePoint[int]("10")
	require.Error(t, err)
	_, err = ParsePoint[int8]("300,1")
	require.Error(t, err)
	_, err = ParsePoint[int]("a,b")
	require.Error(t, err)
}

func TestParseKeys_RejectNonCanonical(t *testing.T) {
	v, err := ParseCoordKey[int32]("-7")
	require.NoError(t, err)
	assert.Equal(t, int32(-7), v)
	p, err := ParseKey[int32]("-2,4")
	require.NoError(t, err)
	assert.Equal(t, Pt[int32](-2, 4), p)

	for _, key := range []string{"01", "+1", "-0", "007"} {
		_, err := ParseCoordKey[int32](key)
		require.ErrorIs(t, err, ErrNotCanonical, key)
	}
	for _, key := range []string{"00,2", "0, 2", "+0,2", "0,02"} {
		_, err := ParseKey[int32](key)
		require.ErrorIs(t, err, ErrNotCanonical, key)
	}
	_, err = ParseCoordKey[int8]("300")
	require.Error(t, err)
}

func TestSpanAndOrdering(t *testing.T) {
	assert.Equal(t, Size[int]{Width: 1, Height: 1}, Span(Pt(5, 5), Pt(5, 5)))
	assert.Equal(t, Size[int]{Width: 8, Height: 4}, Span(Pt(3, 0), Pt(10, 3)))
	assert.Equal(t, "8x4", Span(Pt(3, 0), Pt(10, 3)).String())
	assert.True(t, Size[int]{}.IsZero())

	assert.True(t, Pt(1, 9).Less(Pt(2, 0)))
	assert.True(t, Pt(1, 0).Less(Pt(1, 1)))
	assert.Equal(t, 0, Pt(1, 1).Compare(Pt(1, 1)))
	assert.Equal(t, 1, Pt(2, 1).Compare(Pt(1, 1)))
}

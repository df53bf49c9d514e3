package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		label   string
		want    Square
		wantErr bool
	}{
		{label: "a1", want: Square{File: 0, Rank: 1}},
		{label: "e4", want: Square{File: 4, Rank: 4}},
		{label: "h8", want: Square{File: 7, Rank: 8}},
		{label: "i1", wantErr: true},
		{label: "a9", wantErr: true},
		{label: "a0", wantErr: true},
		{label: "e", wantErr: true},
		{label: "e44", wantErr: true},
		{label: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseSquare(tt.label)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSquare)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.String())
		})
	}
}

func TestSquareOffset(t *testing.T) {
	next, ok := sq("g1").Offset(1, 2)
	assert.True(t, ok)
	assert.Equal(t, sq("h3"), next)

	_, ok = sq("h1").Offset(1, 0)
	assert.False(t, ok)
	_, ok = sq("a8").Offset(0, 1)
	assert.False(t, ok)
}

func TestSquareJSONUsesLabels(t *testing.T) {
	data, err := json.Marshal(SimpleMove{From: sq("e2"), To: sq("e4")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"e2","to":"e4"}`, string(data))

	var m SimpleMove
	require.NoError(t, json.Unmarshal([]byte(`{"from":"g8","to":"f6"}`), &m))
	assert.Equal(t, "g8f6", m.String())

	assert.Error(t, json.Unmarshal([]byte(`{"from":"z9","to":"f6"}`), &m))
}

func TestSquareSet(t *testing.T) {
	set := NewSquareSet(sq("h8"), sq("a1"), sq("e4"))
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has(sq("e4")))
	assert.False(t, set.Has(sq("e5")))
	assert.False(t, set.Has(Square{File: 9, Rank: 1}))
	assert.Equal(t, []Square{sq("a1"), sq("e4"), sq("h8")}, set.Squares())

	set = set.Remove(sq("e4"))
	assert.Equal(t, 2, set.Len())
	assert.True(t, SquareSet(0).Empty())

	data, err := json.Marshal(squares("c3", "a3"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a3","c3"]`, string(data))
}

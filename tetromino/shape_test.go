package tetromino_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetrimino/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeHasFourCells(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		for rotation := range 4 {
			t.Run(fmt.Sprintf("%s/%d", kind, rotation), func(t *testing.T) {
				assert.Equal(t, 4, kind.Shape(rotation).Count())
			})
		}
	}
}

func TestShapeRotationsDistinct(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			seen := make(map[tetromino.Shape]int)
			for rotation := range 4 {
				seen[kind.Shape(rotation)]++
			}
			if kind == tetromino.O {
				require.Len(t, seen, 1)
				assert.Equal(t, 4, seen[tetromino.Shape(0xCC00)])
				return
			}
			assert.Len(t, seen, 4)
		})
	}
}

func TestShapeTableValues(t *testing.T) {
	tests := []struct {
		kind  tetromino.Kind
		masks [4]tetromino.Shape
	}{
		{tetromino.O, [4]tetromino.Shape{0xCC00, 0xCC00, 0xCC00, 0xCC00}},
		{tetromino.J, [4]tetromino.Shape{0x44C0, 0x8E00, 0x6440, 0x0E20}},
		{tetromino.L, [4]tetromino.Shape{0x4460, 0x0E80, 0xC440, 0x2E00}},
		{tetromino.I, [4]tetromino.Shape{0x0F00, 0x2222, 0x00F0, 0x4444}},
		{tetromino.S, [4]tetromino.Shape{0x06C0, 0x8C40, 0x6C00, 0x4620}},
		{tetromino.Z, [4]tetromino.Shape{0x0C60, 0x4C80, 0xC600, 0x2640}},
		{tetromino.T, [4]tetromino.Shape{0x0E40, 0x4C40, 0x4E00, 0x4640}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for rotation, want := range tt.masks {
				assert.Equal(t, want, tt.kind.Shape(rotation), "rotation %d", rotation)
			}
		})
	}
}

func TestShapeNormalizesRotation(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		for rotation := range 4 {
			want := kind.Shape(rotation)
			assert.Equal(t, want, kind.Shape(rotation+4))
			assert.Equal(t, want, kind.Shape(rotation+400))
			assert.Equal(t, want, kind.Shape(rotation-4))
		}
	}

	assert.Equal(t, tetromino.I.Shape(3), tetromino.I.Shape(-1))
	assert.Equal(t, tetromino.T.Shape(2), tetromino.T.Shape(-6))
}

func TestShapeFilled(t *testing.T) {
	shape := tetromino.I.Shape(0)

	for col := range 4 {
		assert.True(t, shape.Filled(2, col))
		assert.False(t, shape.Filled(0, col))
		assert.False(t, shape.Filled(1, col))
		assert.False(t, shape.Filled(3, col))
	}

	assert.False(t, shape.Filled(-1, 0))
	assert.False(t, shape.Filled(2, 4))
	assert.False(t, shape.Filled(4, 0))
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "....\n####\n....\n....", tetromino.I.Shape(0).String())
	assert.Equal(t, "..##\n..##\n....\n....", tetromino.O.Shape(0).String())
	assert.Equal(t, "..#.\n..#.\n..#.\n..#.", tetromino.I.Shape(3).String())
}

func TestKindString(t *testing.T) {
	names := ""
	for _, kind := range tetromino.Kinds {
		names += kind.String()
	}
	assert.Equal(t, "OJLISZT", names)
	assert.Equal(t, "Kind(9)", tetromino.Kind(9).String())
}

func TestParseKind(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		parsed, err := tetromino.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	parsed, err := tetromino.ParseKind(" t ")
	require.NoError(t, err)
	assert.Equal(t, tetromino.T, parsed)

	_, err = tetromino.ParseKind("X")
	assert.Error(t, err)

	_, err = tetromino.ParseKind("")
	assert.Error(t, err)
}

func TestKindColor(t *testing.T) {
	seen := make(map[tetromino.Color]tetromino.Kind)
	for _, kind := range tetromino.Kinds {
		c := kind.Color()
		assert.Equal(t, float32(1.0), c.A)
		prev, dup := seen[c]
		assert.False(t, dup, "%s shares a color with %s", kind, prev)
		seen[c] = kind
	}

	assert.Equal(t, tetromino.Color{R: 0.94, G: 0.94, B: 0.0, A: 1.0}, tetromino.O.Color())
	assert.Equal(t, tetromino.Color{R: 0.64, G: 0.0, B: 0.94, A: 1.0}, tetromino.T.Color())
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := tetromino.Color{R: 1, G: 0, B: 0.5, A: 1}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8000), b)
	assert.Equal(t, uint32(0xffff), a)

	r, _, _, a = tetromino.Color{R: 1, A: 0.5}.RGBA()
	assert.Equal(t, uint32(0x8000), r)
	assert.Equal(t, uint32(0x8000), a)

	r, _, _, _ = tetromino.Color{R: 2, A: 1}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

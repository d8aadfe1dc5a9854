package vardiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoves(t *testing.T) {
	tests := []struct {
		name    string
		base    []string
		variant []string
		want    map[string]int
	}{
		{
			name:    "Both empty",
			base:    []string{},
			variant: []string{},
			want:    map[string]int{},
		},
		{
			name:    "No change",
			base:    []string{"a", "b", "c"},
			variant: []string{"a", "b", "c"},
			want:    map[string]int{},
		},
		{
			name:    "Rotation moves everything",
			base:    []string{"a", "b", "c"},
			variant: []string{"c", "a", "b"},
			want:    map[string]int{"c": 3, "a": 1, "b": 2},
		},
		{
			name:    "Swap of two neighbors",
			base:    []string{"a", "b", "c"},
			variant: []string{"b", "a", "c"},
			want:    map[string]int{"a": 1, "b": 2},
		},
		{
			name:    "New item produces no entry",
			base:    []string{"a", "b"},
			variant: []string{"a", "b", "c"},
			want:    map[string]int{},
		},
		{
			name:    "Removed item never a key, shifted survivor reported",
			base:    []string{"a", "b", "c"},
			variant: []string{"a", "c"},
			want:    map[string]int{"c": 3},
		},
		{
			name:    "Insertion shifts the tail",
			base:    []string{"a", "b"},
			variant: []string{"x", "a", "b"},
			want:    map[string]int{"a": 1, "b": 2},
		},
		{
			name:    "Base empty",
			base:    nil,
			variant: []string{"a", "b"},
			want:    map[string]int{},
		},
		{
			name:    "Variant empty",
			base:    []string{"a", "b"},
			variant: nil,
			want:    map[string]int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Moves(tc.base, tc.variant))
		})
	}
}

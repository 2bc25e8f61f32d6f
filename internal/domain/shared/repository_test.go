package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Normalize(t *testing.T) {
	tests := []struct {
		name          string
		filter        Filter
		expectedPage  int
		expectedLimit int
	}{
		{"defaults applied", Filter{}, 1, 20},
		{"negative page clamped", Filter{Page: -3, Limit: 10}, 1, 10},
		{"limit capped at 100", Filter{Page: 2, Limit: 500}, 2, 100},
		{"valid values untouched", Filter{Page: 3, Limit: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Normalize()
			assert.Equal(t, tt.expectedPage, tt.filter.Page)
			assert.Equal(t, tt.expectedLimit, tt.filter.Limit)
		})
	}
}

func TestFilter_Offset(t *testing.T) {
	f := Filter{Page: 3, Limit: 20}
	assert.Equal(t, 40, f.Offset())

	f = Filter{Page: 1, Limit: 20}
	assert.Equal(t, 0, f.Offset())
}

func TestNewPaginated(t *testing.T) {
	result := NewPaginated([]string{"a", "b"}, 21, 1, 10)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, int64(21), result.Total)

	result = NewPaginated([]string{}, 20, 1, 10)
	assert.Equal(t, 2, result.TotalPages)
}

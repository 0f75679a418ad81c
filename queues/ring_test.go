package queues_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"queuekit/queues"
)

func TestModulo(t *testing.T) {
	tests := []struct {
		dividend, divisor, want int
	}{
		{0, 10, 0},
		{7, 10, 7},
		{10, 10, 0},
		{23, 10, 3},
		{-1, 10, 9},
		{-10, 10, 0},
		{-11, 10, 9},
		{-1, 1, 0},
		{-3, 5, 2},
	}

	for _, tt := range tests {
		got := queues.Modulo(tt.dividend, tt.divisor)
		assert.Equal(t, tt.want, got, "Modulo(%d, %d)", tt.dividend, tt.divisor)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, tt.divisor)
	}
}

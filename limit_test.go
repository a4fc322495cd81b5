package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     Limit
		unlimited bool
		asInt     int
		take      int
		str       string
	}{
		{"zero", Limit{}, true, DefaultLimit, 10, "unlimited"},
		{"none", NoLimit(), true, DefaultLimit, 10, "unlimited"},
		{"of four", LimitOf(4), false, 4, 4, "4"},
		{"of zero", LimitOf(0), true, DefaultLimit, 10, "unlimited"},
		{"above size", LimitOf(25), false, 25, 10, "25"},
		{"from default", LimitFromInt(DefaultLimit), true, DefaultLimit, 10, "unlimited"},
		{"from negative", LimitFromInt(-15), true, DefaultLimit, 10, "unlimited"},
		{"from positive", LimitFromInt(3), false, 3, 3, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unlimited, tt.limit.IsUnlimited())
			assert.Equal(t, tt.asInt, tt.limit.Int())
			assert.Equal(t, tt.take, tt.limit.take(10))
			assert.Equal(t, tt.str, tt.limit.String())

			n, ok := tt.limit.Max()
			assert.Equal(t, !tt.unlimited, ok)
			if ok {
				assert.Equal(t, tt.asInt, n)
			}
		})
	}
}

package policyprism_test

import (
	"testing"

	"github.com/fwojciec/policyprism"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{15728640, "15 MB"},
		{1887437, "1.8 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, policyprism.FormatBytes(tt.n), "n=%d", tt.n)
	}
}

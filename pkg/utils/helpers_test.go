package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateRequestID()
		assert.False(t, seen[id], "duplicate request ID: %s", id)
		seen[id] = true
	}
}

func TestGenerateEstimateID(t *testing.T) {
	id := GenerateEstimateID()

	assert.True(t, strings.HasPrefix(id, "est_"))
	parts := strings.Split(id, "_")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 6)

	assert.NotEqual(t, id, GenerateEstimateID())
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "500ms"},
		{2500 * time.Millisecond, "2.50s"},
		{90 * time.Second, "1.5m"},
		{90 * time.Minute, "1.5h"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.d))
	}
}

func TestGetStringOrDefault(t *testing.T) {
	assert.Equal(t, "value", GetStringOrDefault("value", "default"))
	assert.Equal(t, "default", GetStringOrDefault("", "default"))
}

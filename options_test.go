package grads

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	start := time.Date(2021, 8, 1, 12, 0, 0, 0, time.UTC)

	desc, err := Parse("post.ctl_2021080200_024", strings.NewReader(meteogramDescriptor),
		quietLogger(),
		WithStartTime(start),
		WithForecastTime(36*time.Hour),
		WithEndian(EndianNative),
	)
	require.NoError(t, err)

	got, ok := desc.StartTime()
	require.True(t, ok)
	assert.True(t, start.Equal(got))
	forecast, ok := desc.ForecastTime()
	require.True(t, ok)
	assert.Equal(t, 36*time.Hour, forecast)
	assert.Equal(t, EndianNative, desc.Options().Endian)
}

func TestOptionErrors(t *testing.T) {
	for name, opt := range map[string]Option{
		"nil logger":        WithLogger(nil),
		"negative forecast": WithForecastTime(-time.Hour),
		"unknown endian":    WithEndian(Endian(9)),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("post.ctl", strings.NewReader(meteogramDescriptor), opt)
			assert.Error(t, err)
		})
	}
}

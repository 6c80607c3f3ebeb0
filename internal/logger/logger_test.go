package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		log, err := New("hydration-service", env)
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

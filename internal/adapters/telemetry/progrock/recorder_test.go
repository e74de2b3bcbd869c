package progrock_test

import (
	"context"
	"testing"

	"github.com/forgebsd/isoforge/internal/adapters/telemetry/progrock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Record(t *testing.T) {
	recorder := progrock.New()

	_, vtx := recorder.Record(context.Background(), "base-iso")
	require.NotNil(t, vtx)

	_, err := vtx.Stdout().Write([]byte("fetching\n"))
	assert.NoError(t, err)

	vtx.Complete(nil)
	assert.NoError(t, recorder.Close())
}

package telemetry_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/anvil/internal/adapters/telemetry"
)

func TestRecorder_FollowSeesStageLifecycle(t *testing.T) {
	rec := telemetry.New()

	r, ok := rec.(*telemetry.Recorder)
	require.True(t, ok)
	source := r.Follow()
	require.NotNil(t, source)

	_, v := rec.Record(context.Background(), "merge client and server")
	v.Complete(nil)

	_, v = rec.Record(context.Background(), "apply patches")
	v.Complete(errors.New("patch tool exited 1"))

	require.NoError(t, rec.Close())

	names := map[string]bool{}
	for {
		update, err := source.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		for _, vtx := range update.GetVertexes() {
			names[vtx.Name] = true
		}
	}

	assert.True(t, names["merge client and server"])
	assert.True(t, names["apply patches"])
}

func TestFeed_ReadAfterCloseReturnsEOF(t *testing.T) {
	feed := telemetry.NewFeed(progrock.NewTape())

	require.NoError(t, feed.WriteStatus(&progrock.StatusUpdate{}))
	require.NoError(t, feed.Close())

	_, err := feed.Read()
	require.NoError(t, err)

	_, err = feed.Read()
	assert.Equal(t, io.EOF, err)
}

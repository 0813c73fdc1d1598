package telemetry_test

import (
	"context"
	"testing"

	"github.com/masonbuild/mason/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(context.Background(), "out.o")
	require.NotNil(t, v)
	assert.Equal(t, context.Background(), ctx)

	_, err := v.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	_, err = v.Stderr().Write([]byte("ignored"))
	require.NoError(t, err)

	v.Complete(nil)
	v.Cached()
	require.NoError(t, tel.Close())
}

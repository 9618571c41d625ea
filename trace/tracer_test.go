// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/stretchr/testify/require"
)

func TestDisabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{AppName: "cpamm"})
	require.NoError(err)
	require.Equal(trace.Noop, tracer)

	ctx, span := tracer.Start(context.Background(), "Processor.Execute")
	require.NotNil(ctx)
	require.False(span.IsRecording())
	span.End()
	require.NoError(tracer.Close())
}

func TestEnabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(&Config{
		Enabled:         true,
		TraceSampleRate: 1,
		AppName:         "cpamm",
		Agent:           "cpammd",
		Version:         "v0.1.0",
		Endpoint:        "http://127.0.0.1:1/api/v2/spans",
	})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "Processor.Execute")
	require.True(span.IsRecording())
	span.End()

	// Nothing listens on the collector port so the final flush may fail.
	_ = tracer.Close()
}

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"shiphub/internal/logx"
)

func TestWorkerRunner_MustRun_NoPanicOnNilOrCanceled(t *testing.T) {
	for _, err := range []error{nil, context.Canceled} {
		r := &WorkerRunner{runFn: func(*dig.Container) error { return err }}
		require.NotPanics(t, func() { r.MustRun(dig.New()) })
	}
}

func TestWorkerRunner_MustRun_PanicsOnOtherError(t *testing.T) {
	sentinel := errors.New("boom")
	r := &WorkerRunner{runFn: func(*dig.Container) error { return sentinel }}
	require.Panics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRun_ReturnsError_WhenConsumerNil(t *testing.T) {
	err := workerRun(context.Background(), nil, logx.Nop(), nil, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kafka consumer is nil")
}

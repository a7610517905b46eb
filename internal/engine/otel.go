package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/iburimskiy/drone-show/internal/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instruments struct {
	frames  metric.Int64Counter
	skipped metric.Int64Counter
	loads   metric.Int64Counter
	wraps   metric.Int64Counter
}

func newInstruments(m metric.Meter) (instruments, error) {
	var (
		in  instruments
		err error
	)
	in.frames, err = m.Int64Counter("droneshow.frames",
		metric.WithDescription("Frames whose particles were updated"))
	if err != nil {
		return in, fmt.Errorf("failed to create frames counter: %w", err)
	}
	in.skipped, err = m.Int64Counter("droneshow.frames.skipped",
		metric.WithDescription("Frames skipped because no consistent update was possible"))
	if err != nil {
		return in, fmt.Errorf("failed to create skipped counter: %w", err)
	}
	in.loads, err = m.Int64Counter("droneshow.timeline.loads",
		metric.WithDescription("Timeline loads by result"))
	if err != nil {
		return in, fmt.Errorf("failed to create loads counter: %w", err)
	}
	in.wraps, err = m.Int64Counter("droneshow.loop.wraps",
		metric.WithDescription("Times the show looped back to the start"))
	if err != nil {
		return in, fmt.Errorf("failed to create wraps counter: %w", err)
	}
	return in, nil
}

func (in instruments) load(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	in.loads.Add(context.Background(), 1, metric.WithAttributes(attribute.String("result", result)))
}

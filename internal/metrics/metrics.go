package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Contact submission outcomes recorded on the result attribute.
const (
	ResultAccepted      = "accepted"
	ResultInvalidFormat = "invalid_format"
	ResultMissingFields = "missing_fields"
	ResultError         = "error"
)

type Metrics struct {
	contactSubmissions metric.Int64Counter
	staticNotFound     metric.Int64Counter
}

func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.contactSubmissions, err = meter.Int64Counter(
		"hpcf_website.contact.submissions",
		metric.WithDescription("Total number of contact form submissions by result"),
		metric.WithUnit("{submission}"),
	)
	if err != nil {
		return nil, err
	}

	m.staticNotFound, err = meter.Int64Counter(
		"hpcf_website.static.not_found",
		metric.WithDescription("Total number of static asset requests that matched no file"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) RecordContactSubmission(ctx context.Context, result string) {
	if m != nil && m.contactSubmissions != nil {
		m.contactSubmissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}
}

func (m *Metrics) RecordStaticNotFound(ctx context.Context) {
	if m != nil && m.staticNotFound != nil {
		m.staticNotFound.Add(ctx, 1)
	}
}

// NewMock creates a no-op Metrics instance for testing
// The returned Metrics will safely ignore all Record* calls
func NewMock() *Metrics {
	return &Metrics{}
}

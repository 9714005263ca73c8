package mailer

import (
	"context"

	"github.com/vcare/contactmail/telemetry"
	"github.com/vcare/contactmail/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/vcare/contactmail/mailer")

// SendAll sends every message concurrently and waits for all of them.
// It returns nil only if every send succeeded, otherwise the first error.
// A failure does not cancel the other sends.
func SendAll(ctx context.Context, t Transport, msgs ...Message) error {
	var g errgroup.Group
	for _, msg := range msgs {
		msg := msg // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			return send(ctx, t, msg)
		})
	}
	return g.Wait()
}

func send(ctx context.Context, t Transport, msg Message) error {
	ctx, span := tracer.Start(ctx, "mailer.Send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("mail.driver", t.Name()),
		attribute.String("mail.kind", msg.Kind),
	)

	if err := t.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		telemetry.MailsTotal.WithLabelValues(t.Name(), msg.Kind, "failure").Inc()
		utils.WarnCtx(ctx, "mail send failed", "kind", msg.Kind, "driver", t.Name(), "error", err)
		return err
	}
	telemetry.MailsTotal.WithLabelValues(t.Name(), msg.Kind, "success").Inc()
	utils.DebugCtx(ctx, "mail sent", "kind", msg.Kind, "driver", t.Name())
	return nil
}

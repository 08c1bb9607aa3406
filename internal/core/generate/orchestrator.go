package generate

import (
	"context"
	"encoding/json"
	"net/http"

	"fridgechef/internal/core/render"
	"fridgechef/internal/core/ui"
	"fridgechef/internal/pkg/common"

	"go.uber.org/zap"
)

// Caller issues one backend request. Satisfied by *transport.Client.
type Caller interface {
	Call(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error)
}

// Refresher re-derives the visible session snapshot from server truth.
// Satisfied by *session.Service.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Orchestrator turns a validated submit into exactly one generation request
// and dispatches the classified outcome.
type Orchestrator struct {
	caller       Caller
	engine       *render.Engine
	port         ui.Port
	refresher    Refresher
	placeholders int
}

// NewOrchestrator wires a generation orchestrator.
func NewOrchestrator(caller Caller, engine *render.Engine, port ui.Port, refresher Refresher, placeholders int) *Orchestrator {
	if placeholders <= 0 {
		placeholders = 3
	}
	return &Orchestrator{
		caller:       caller,
		engine:       engine,
		port:         port,
		refresher:    refresher,
		placeholders: placeholders,
	}
}

// Generate runs one submission end to end. Validation failures surface inline
// and never reach the network; every other path issues exactly one request.
func (o *Orchestrator) Generate(ctx context.Context, ingredients, notes string, filters Filters, limit int) {
	req, err := NewRequest(ingredients, notes, filters, limit)
	if err != nil {
		o.port.ShowValidation(err.Error())
		return
	}

	// Latency masking, not data: placeholders stay up until the call resolves.
	o.engine.ShowLoading(o.placeholders)

	payload, callErr := o.caller.Call(ctx, http.MethodPost, "/generate", req)
	outcome := Classify(payload, callErr)

	switch outcome.Kind {
	case KindSuccess:
		o.engine.Render(outcome.Recipes)
		// Usage changed server-side; republish the session snapshot.
		o.refresher.Refresh(ctx)

	case KindQuotaExceeded:
		common.LogInfo("daily limit reached",
			zap.String("checkout_url", outcome.CheckoutURL),
		)
		if o.port.ConfirmUpsell("Daily limit reached. Go to payment to unlock more recipes?") {
			o.port.Navigate(outcome.CheckoutURL)
			return
		}
		message := outcome.Message
		if message == "" {
			message = MsgLimitReached
		}
		o.engine.ShowError(message)

	case KindFailure:
		common.LogWarn("generation failed", zap.String("message", outcome.Message))
		o.engine.ShowError(outcome.Message)
	}
}

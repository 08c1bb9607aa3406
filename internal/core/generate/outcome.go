package generate

import (
	"bytes"
	"encoding/json"

	"fridgechef/internal/core/render"
	"fridgechef/internal/core/transport"
	"fridgechef/internal/pkg/common"
)

// Kind tags a generation outcome. Exactly one variant is populated per
// response.
type Kind int

const (
	// KindSuccess carries a recipe list (possibly empty).
	KindSuccess Kind = iota
	// KindQuotaExceeded carries a checkout redirect target.
	KindQuotaExceeded
	// KindFailure carries a user-visible error message.
	KindFailure
)

// Default messages for outcomes that arrive without one.
const (
	MsgNetworkError = "Network or server error."
	MsgNoRecipes    = "No recipes returned from server."
	MsgLimitReached = "Limit reached."
)

// Outcome is the tagged result of classifying one generation response.
// Downstream code dispatches on Kind and never re-inspects raw JSON.
type Outcome struct {
	Kind        Kind
	Recipes     []render.Recipe
	CheckoutURL string
	Message     string
}

// generateBody is the recognized success-status response shape.
type generateBody struct {
	Error       string          `json:"error"`
	Message     string          `json:"message"`
	CheckoutURL string          `json:"checkout_url"`
	Recipes     json.RawMessage `json:"recipes"`
}

// Classify maps a transport result onto an Outcome. The quota signal is
// recognized wherever the backend puts it: in a success-status body or on the
// error value of a non-success status, since the transport propagates parsed
// error bodies with their extra fields intact.
func Classify(payload json.RawMessage, err error) Outcome {
	if err != nil {
		if apiErr, ok := transport.AsAPIError(err); ok {
			if apiErr.Message != "" && apiErr.CheckoutURL != "" {
				return Outcome{
					Kind:        KindQuotaExceeded,
					CheckoutURL: apiErr.CheckoutURL,
					Message:     apiErr.Detail,
				}
			}
			if apiErr.Message != "" {
				return Outcome{Kind: KindFailure, Message: apiErr.Message}
			}
		}
		return Outcome{Kind: KindFailure, Message: MsgNetworkError}
	}

	var body generateBody
	if payload != nil {
		if parseErr := common.ParseJSONBytes(payload, &body); parseErr != nil {
			return Outcome{Kind: KindFailure, Message: MsgNoRecipes}
		}
	}

	if body.Error != "" && body.CheckoutURL != "" {
		return Outcome{
			Kind:        KindQuotaExceeded,
			CheckoutURL: body.CheckoutURL,
			Message:     body.Message,
		}
	}

	if hasRecipesList(body.Recipes) {
		return Outcome{Kind: KindSuccess, Recipes: render.ParseRecipes(body.Recipes)}
	}

	return Outcome{Kind: KindFailure, Message: MsgNoRecipes}
}

// hasRecipesList reports whether the body carried an actual JSON array under
// "recipes". An absent key, JSON null, or any non-array value does not count.
func hasRecipesList(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

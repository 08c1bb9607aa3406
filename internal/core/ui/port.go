// Package ui defines the port the core logic drives instead of touching any
// concrete display. Implementations can be a terminal presenter or test
// doubles.
package ui

import (
	"fridgechef/internal/core/render"
)

// Port exposes the named update operations the reconciler and orchestrator
// need. Each write fully replaces the region it targets; the core never
// patches display state incrementally.
type Port interface {
	render.Surface

	// SetUsage replaces the usage line ("" clears it).
	SetUsage(line string)

	// SetAuthButtons shows the logout affordance when authenticated is true,
	// the login/signup affordances otherwise.
	SetAuthButtons(authenticated bool)

	// ShowValidation surfaces a local input error near the input, not in the
	// render area.
	ShowValidation(message string)

	// ConfirmUpsell asks whether to proceed to the payment flow.
	ConfirmUpsell(message string) bool

	// Navigate leaves the client for an external URL.
	Navigate(url string)
}

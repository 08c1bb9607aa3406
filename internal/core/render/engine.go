package render

import (
	"fmt"

	"fridgechef/internal/pkg/common"

	"go.uber.org/zap"
)

// Surface is the display region the engine owns. Every write fully replaces
// the region's content, so re-rendering the same list is idempotent.
type Surface interface {
	ReplaceCards(cards []*Card)
	ShowLoading(count int)
	ShowEmpty()
	ShowError(message string)
}

// Engine maps recipe payloads into cards and owns each card's expand/collapse
// state. Card state never survives a render pass.
type Engine struct {
	surface Surface
	cards   []*Card
}

// NewEngine creates a render engine writing to surface.
func NewEngine(surface Surface) *Engine {
	return &Engine{surface: surface}
}

// Render replaces the render area with one card per recipe. An empty or
// missing list shows the empty-state indicator rather than zero cards
// silently.
func (e *Engine) Render(recipes []Recipe) {
	e.cards = make([]*Card, 0, len(recipes))

	if len(recipes) == 0 {
		e.surface.ShowEmpty()
		return
	}

	for i, r := range recipes {
		e.cards = append(e.cards, NewCard(i, r))
	}

	common.LogDebug("rendered recipe cards", zap.Int("count", len(e.cards)))
	e.surface.ReplaceCards(e.cards)
}

// ShowLoading displays placeholder cards while a request is in flight.
func (e *Engine) ShowLoading(count int) {
	e.cards = nil
	e.surface.ShowLoading(count)
}

// ShowError replaces the render area with an error state.
func (e *Engine) ShowError(message string) {
	e.cards = nil
	e.surface.ShowError(message)
}

// Toggle flips the step list of the card at index and re-publishes the cards.
func (e *Engine) Toggle(index int) error {
	if index < 0 || index >= len(e.cards) {
		return fmt.Errorf("no card at position %d", index+1)
	}
	e.cards[index].Toggle()
	e.surface.ReplaceCards(e.cards)
	return nil
}

// Cards returns the cards from the latest render pass.
func (e *Engine) Cards() []*Card {
	return e.cards
}

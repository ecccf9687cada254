// internal/cards/cards.go
package cards

import (
	"math/rand"
)

// Deck is a shuffle-and-draw source over one fixed catalog. The zero value is
// unusable; construct with NewDeck.
type Deck struct {
	catalog []string
	pool    []string
}

// NewDeck copies the catalog into a freshly shuffled pool.
func NewDeck(catalog []string) *Deck {
	d := &Deck{catalog: catalog}
	d.Refill()
	return d
}

// Draw removes and returns the front card of the pool. Callers must ensure
// the pool is non-empty first (check Len or Refill); drawing from an empty
// deck is a programming error, not a runtime condition.
func (d *Deck) Draw() string {
	card := d.pool[0]
	d.pool = d.pool[1:]
	return card
}

// Refill rebuilds the pool from the full catalog and reshuffles it. Every
// refill derives an independent permutation.
func (d *Deck) Refill() {
	d.pool = make([]string, len(d.catalog))
	copy(d.pool, d.catalog)
	rand.Shuffle(len(d.pool), func(i, j int) {
		d.pool[i], d.pool[j] = d.pool[j], d.pool[i]
	})
}

// Len reports how many cards remain before the next refill.
func (d *Deck) Len() int {
	return len(d.pool)
}

// NewPromptDeck returns a shuffled deck over the prompt card catalog.
func NewPromptDeck() *Deck {
	return NewDeck(PromptCards)
}

// NewResponseDeck returns a shuffled deck over the response card catalog.
func NewResponseDeck() *Deck {
	return NewDeck(ResponseCards)
}

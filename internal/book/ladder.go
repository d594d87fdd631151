package book

import (
	"github.com/tidwall/btree"

	"github.com/nmatare/lsematch/internal/common"
)

// priceLevels is the sorted price->PriceLevel map backing one side of the
// book.
type priceLevels = btree.BTreeG[*PriceLevel]

// Ladder is one side of the book: a sorted mapping from price to
// price-level queue. Bids iterate descending (best = highest price); asks
// iterate ascending (best = lowest price). Both directions are achieved
// by flipping the btree's less-function at construction, so "best" is
// always btree.Min in either ladder.
type Ladder struct {
	side   common.Side
	levels *priceLevels
}

// NewLadder creates an empty ladder for the given side.
func NewLadder(side common.Side) *Ladder {
	var less func(a, b *PriceLevel) bool
	if side == common.Bid {
		// Sorted greatest-first: Min() yields the highest bid.
		less = func(a, b *PriceLevel) bool { return a.Price > b.Price }
	} else {
		// Sorted least-first: Min() yields the lowest ask.
		less = func(a, b *PriceLevel) bool { return a.Price < b.Price }
	}
	return &Ladder{
		side:   side,
		levels: btree.NewBTreeG(less),
	}
}

// BestLevel returns the best (highest bid / lowest ask) non-empty price
// level, or (nil, false) if the ladder is empty.
func (l *Ladder) BestLevel() (*PriceLevel, bool) {
	return l.levels.Min()
}

// InsertAt appends order to the queue at price, creating the level if it
// does not yet exist.
func (l *Ladder) InsertAt(price int64, order *common.Order) {
	level, ok := l.levels.Get(&PriceLevel{Price: price})
	if !ok {
		level = &PriceLevel{Price: price}
		l.levels.Set(level)
	}
	level.Append(order)
}

// DropLevel removes the (assumed empty) level at price.
func (l *Ladder) DropLevel(price int64) {
	l.levels.Delete(&PriceLevel{Price: price})
}

// Len returns the number of distinct non-empty price levels.
func (l *Ladder) Len() int {
	return l.levels.Len()
}

// Items returns every price level in best-first order. Intended for
// tests and snapshot rendering, not the hot matching path.
func (l *Ladder) Items() []*PriceLevel {
	items := make([]*PriceLevel, 0, l.levels.Len())
	l.levels.Scan(func(pl *PriceLevel) bool {
		items = append(items, pl)
		return true
	})
	return items
}

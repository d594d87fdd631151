// Package engine implements the matching engine's order book and
// matcher: price-time priority dispatch with iceberg two-pass fan-out.
package engine

import (
	"fmt"

	"github.com/nmatare/lsematch/internal/book"
	"github.com/nmatare/lsematch/internal/common"
)

// TradeFunc is invoked once per logical trade, after any iceberg fan-out
// aggregation completes.
type TradeFunc func(common.Trade)

// SnapshotFunc is invoked once at the end of every accepted Submit call
// with a read-only view of the book; a Submit that rejects the order's
// kind returns before invoking it. Implementations must not mutate the Book.
type SnapshotFunc func(*Book)

// Book holds the two price ladders for a single instrument and dispatches
// submissions to the matcher.
type Book struct {
	bids *book.Ladder
	asks *book.Ladder

	tickTape int64

	onTrade    TradeFunc
	onSnapshot SnapshotFunc
}

// NewBook constructs an empty book. Either callback may be nil.
func NewBook(onTrade TradeFunc, onSnapshot SnapshotFunc) *Book {
	return &Book{
		bids:       book.NewLadder(common.Bid),
		asks:       book.NewLadder(common.Ask),
		onTrade:    onTrade,
		onSnapshot: onSnapshot,
	}
}

// Bids returns the bid-side ladder. Callers must treat it as read-only.
func (b *Book) Bids() *book.Ladder { return b.bids }

// Asks returns the ask-side ladder. Callers must treat it as read-only.
func (b *Book) Asks() *book.Ladder { return b.asks }

// BestBid returns the highest resting bid price, or (0, false) if the bid
// side is empty.
func (b *Book) BestBid() (int64, bool) {
	level, ok := b.bids.BestLevel()
	if !ok {
		return 0, false
	}
	return level.Price, true
}

// BestAsk returns the lowest resting ask price, or (0, false) if the ask
// side is empty.
func (b *Book) BestAsk() (int64, bool) {
	level, ok := b.asks.BestLevel()
	if !ok {
		return 0, false
	}
	return level.Price, true
}

// Submit is the book's single mutating entry point. It decides whether
// order can rest passively or must be matched, runs the matcher if so,
// rests any residual, and emits a snapshot.
func (b *Book) Submit(order *common.Order) error {
	if order.Kind != common.Limit && order.Kind != common.Iceberg {
		return fmt.Errorf("order %d: %w: %v", order.Identity, common.ErrInvalidOrderKind, order.Kind)
	}

	ownSide, opposite := b.ladders(order.Side)

	if level, ok := opposite.BestLevel(); ok && crosses(order, level.Price) {
		b.match(order, opposite)
	}

	if order.Quantity > 0 {
		ownSide.InsertAt(order.Price, order)
	}

	if b.onSnapshot != nil {
		b.onSnapshot(b)
	}
	return nil
}

// Cancel always fails: order cancellation is not supported.
func (b *Book) Cancel(identity uint64) error {
	return fmt.Errorf("cancel order %d: %w", identity, common.ErrUnsupportedOperation)
}

// Modify always fails: order modification is not supported.
func (b *Book) Modify(identity uint64) error {
	return fmt.Errorf("modify order %d: %w", identity, common.ErrUnsupportedOperation)
}

// AdvanceTickTape records the sequence index of the most recently
// processed message, rejecting any regression.
func (b *Book) AdvanceTickTape(index int64) error {
	if index < b.tickTape {
		return fmt.Errorf("tick-tape regressed from %d to %d: %w", b.tickTape, index, common.ErrTickTapeNotMonotonic)
	}
	b.tickTape = index
	return nil
}

// ladders returns (own side, opposite side) ladders for the given side.
func (b *Book) ladders(side common.Side) (own, opposite *book.Ladder) {
	if side == common.Bid {
		return b.bids, b.asks
	}
	return b.asks, b.bids
}

// crosses reports whether an incoming order at order.Price crosses a
// resting level at levelPrice.
func crosses(order *common.Order, levelPrice int64) bool {
	if order.Side == common.Bid {
		return order.Price >= levelPrice
	}
	return order.Price <= levelPrice
}

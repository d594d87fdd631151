// Package book implements the per-price order queue and the sorted side
// ladder that maps price to queue for one side of the book.
package book

import "github.com/nmatare/lsematch/internal/common"

// PriceLevel is the ordered sequence of resting orders at a single price,
// in arrival order. First-in is first-matched; insertions for passive
// rests append to the tail.
type PriceLevel struct {
	Price  int64
	Orders []*common.Order
}

// Append adds order to the tail of the queue.
func (pl *PriceLevel) Append(order *common.Order) {
	pl.Orders = append(pl.Orders, order)
}

// Head returns the order at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (pl *PriceLevel) Head() *common.Order {
	if len(pl.Orders) == 0 {
		return nil
	}
	return pl.Orders[0]
}

// At returns the order at position i without removing it.
func (pl *PriceLevel) At(i int) *common.Order {
	return pl.Orders[i]
}

// PopHead removes and returns the order at the front of the queue.
func (pl *PriceLevel) PopHead() *common.Order {
	head := pl.Orders[0]
	pl.Orders = pl.Orders[1:]
	return head
}

// RemoveAt removes the order at position i, shifting subsequent orders
// down. Used by the iceberg fan-out to drop an order that has just
// drained to zero mid-rotation without disturbing the positions of
// orders still ahead of it.
func (pl *PriceLevel) RemoveAt(i int) {
	pl.Orders = append(pl.Orders[:i], pl.Orders[i+1:]...)
}

// RemoveHeadAndAppend moves the head order to the tail of the queue. Used
// when a resting iceberg's peak is refilled and it must rotate behind its
// same-price peers.
func (pl *PriceLevel) RemoveHeadAndAppend() {
	head := pl.PopHead()
	pl.Append(head)
}

// Length returns the number of resting orders at this level.
func (pl *PriceLevel) Length() int {
	return len(pl.Orders)
}

// IsEmpty reports whether the level holds no resting orders.
func (pl *PriceLevel) IsEmpty() bool {
	return len(pl.Orders) == 0
}

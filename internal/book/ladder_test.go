package book

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmatare/lsematch/internal/common"
)

func TestLadder_BestLevel_BidDescendingAskAscending(t *testing.T) {
	bids := NewLadder(common.Bid)
	asks := NewLadder(common.Ask)

	o1 := newTestOrder(t, 1, 10)
	o2 := newTestOrder(t, 2, 10)
	o3 := newTestOrder(t, 3, 10)

	bids.InsertAt(99, o1)
	bids.InsertAt(101, o2)
	bids.InsertAt(100, o3)

	best, ok := bids.BestLevel()
	assert.True(t, ok)
	assert.Equal(t, int64(101), best.Price)

	asks.InsertAt(105, o1)
	asks.InsertAt(103, o2)
	asks.InsertAt(104, o3)

	best, ok = asks.BestLevel()
	assert.True(t, ok)
	assert.Equal(t, int64(103), best.Price)
}

func TestLadder_InsertAt_SamePriceAppends(t *testing.T) {
	l := NewLadder(common.Ask)
	o1 := newTestOrder(t, 1, 10)
	o2 := newTestOrder(t, 2, 20)

	l.InsertAt(100, o1)
	l.InsertAt(100, o2)

	assert.Equal(t, 1, l.Len())
	best, ok := l.BestLevel()
	assert.True(t, ok)
	assert.Equal(t, 2, best.Length())
	assert.Equal(t, []*common.Order{o1, o2}, best.Orders)
}

func TestLadder_DropLevel(t *testing.T) {
	l := NewLadder(common.Bid)
	o1 := newTestOrder(t, 1, 10)
	l.InsertAt(100, o1)
	assert.Equal(t, 1, l.Len())

	l.DropLevel(100)
	assert.Equal(t, 0, l.Len())
	_, ok := l.BestLevel()
	assert.False(t, ok)
}

func TestLadder_Items_BestFirstOrder(t *testing.T) {
	l := NewLadder(common.Bid)
	o1 := newTestOrder(t, 1, 10)
	l.InsertAt(99, o1)
	l.InsertAt(101, o1)
	l.InsertAt(100, o1)

	items := l.Items()
	assert.Len(t, items, 3)
	assert.Equal(t, int64(101), items[0].Price)
	assert.Equal(t, int64(100), items[1].Price)
	assert.Equal(t, int64(99), items[2].Price)
}

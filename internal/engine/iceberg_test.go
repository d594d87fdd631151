package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmatare/lsematch/internal/common"
)

// TestBook_AggressiveIntoIceberg_SoleParticipant drives an aggressive
// iceberg bid through two resting ask limits at the same price and leaves
// its residual resting with its peak untouched, since it is the order
// that rests, not the one consumed.
func TestBook_AggressiveIntoIceberg_SoleParticipant(t *testing.T) {
	b, rec := newRecordingBook()

	require.NoError(t, b.Submit(mustLimit(t, 1, common.Bid, 99, 50000)))
	require.NoError(t, b.Submit(mustLimit(t, 2, common.Bid, 98, 25500)))

	require.NoError(t, b.Submit(mustLimit(t, 3, common.Ask, 100, 10000)))
	require.NoError(t, b.Submit(mustLimit(t, 4, common.Ask, 100, 7500)))
	require.NoError(t, b.Submit(mustLimit(t, 5, common.Ask, 101, 20000)))

	require.NoError(t, b.Submit(mustIceberg(t, 99, common.Bid, 100, 100000, 10000)))

	require.Len(t, rec.trades, 2)
	assert.Equal(t, common.Trade{BuyOrderID: 99, SellOrderID: 3, Price: 100, Quantity: 10000}, rec.trades[0])
	assert.Equal(t, common.Trade{BuyOrderID: 99, SellOrderID: 4, Price: 100, Quantity: 7500}, rec.trades[1])

	bestAsk, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, int64(101), bestAsk)

	bestBid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, int64(100), bestBid)

	level, ok := b.Bids().BestLevel()
	require.True(t, ok)
	require.Equal(t, 1, level.Length())
	resting := level.Head()
	assert.Equal(t, uint64(82500), resting.Quantity)
	assert.Equal(t, uint64(10000), resting.PeakRemaining)
}

// TestBook_FanOut_TwoRestingIcebergs rotates an incoming aggressive ask
// through two resting bid icebergs at the same price, where the head's
// visible peak cannot cover it alone: the head's peak refills mid-fan-out
// without rotating to the tail, and both counterparties receive a single
// aggregated trade.
func TestBook_FanOut_TwoRestingIcebergs(t *testing.T) {
	b, rec := newRecordingBook()

	head := mustIceberg(t, 88, common.Bid, 100, 30000, 10000)
	tail := mustIceberg(t, 888, common.Bid, 100, 30000, 20000)
	require.NoError(t, b.Submit(head))
	require.NoError(t, b.Submit(tail))

	require.NoError(t, b.Submit(mustLimit(t, 999, common.Ask, 100, 25000)))

	require.Len(t, rec.trades, 2)
	assert.Equal(t, common.Trade{BuyOrderID: 88, SellOrderID: 999, Price: 100, Quantity: 10000}, rec.trades[0])
	assert.Equal(t, common.Trade{BuyOrderID: 888, SellOrderID: 999, Price: 100, Quantity: 15000}, rec.trades[1])

	level, ok := b.Bids().BestLevel()
	require.True(t, ok)
	require.Equal(t, 2, level.Length())

	assert.Equal(t, uint64(88), level.At(0).Identity)
	assert.Equal(t, uint64(20000), level.At(0).Quantity)
	assert.Equal(t, uint64(10000), level.At(0).PeakRemaining)

	assert.Equal(t, uint64(888), level.At(1).Identity)
	assert.Equal(t, uint64(15000), level.At(1).Quantity)
	assert.Equal(t, uint64(5000), level.At(1).PeakRemaining)
}

// TestBook_FullFill_RotatesRefilledIcebergBehindPeer covers the plain
// (non-fan-out) Case A rotation: an incoming order exactly exhausts the
// head iceberg's visible peak while a peer rests behind it, so the head
// refills and moves to the tail rather than keeping its queue position.
func TestBook_FullFill_RotatesRefilledIcebergBehindPeer(t *testing.T) {
	b, rec := newRecordingBook()

	head := mustIceberg(t, 1, common.Ask, 100, 20000, 5000)
	peer := mustLimit(t, 2, common.Ask, 100, 5000)
	require.NoError(t, b.Submit(head))
	require.NoError(t, b.Submit(peer))

	require.NoError(t, b.Submit(mustLimit(t, 3, common.Bid, 100, 5000)))

	require.Len(t, rec.trades, 1)
	assert.Equal(t, common.Trade{BuyOrderID: 3, SellOrderID: 1, Price: 100, Quantity: 5000}, rec.trades[0])

	level, ok := b.Asks().BestLevel()
	require.True(t, ok)
	require.Equal(t, 2, level.Length())

	assert.Equal(t, uint64(2), level.At(0).Identity, "the limit peer now leads the queue")
	assert.Equal(t, uint64(1), level.At(1).Identity, "the refilled iceberg rotated to the tail")
	assert.Equal(t, uint64(15000), level.At(1).Quantity)
	assert.Equal(t, uint64(5000), level.At(1).PeakRemaining)
}

func TestIcebergOrder_RejectsZeroOrOversizedPeak(t *testing.T) {
	_, err := common.NewIcebergOrder(1, common.Bid, 100, 1000, 0)
	assert.ErrorIs(t, err, common.ErrOrderValidation)

	_, err = common.NewIcebergOrder(1, common.Bid, 100, 1000, 1001)
	assert.ErrorIs(t, err, common.ErrOrderValidation)
}

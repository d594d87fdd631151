package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmatare/lsematch/internal/common"
)

func mustLimit(t *testing.T, id uint64, side common.Side, price int64, qty uint64) *common.Order {
	t.Helper()
	o, err := common.NewLimitOrder(id, side, price, qty)
	require.NoError(t, err)
	return o
}

func mustIceberg(t *testing.T, id uint64, side common.Side, price int64, qty, peak uint64) *common.Order {
	t.Helper()
	o, err := common.NewIcebergOrder(id, side, price, qty, peak)
	require.NoError(t, err)
	return o
}

// tradeRecorder is a TradeFunc that appends every trade it receives, in
// emission order, for assertion against expected trade sequences.
type tradeRecorder struct {
	trades []common.Trade
}

func (r *tradeRecorder) record(t common.Trade) {
	r.trades = append(r.trades, t)
}

func newRecordingBook() (*Book, *tradeRecorder) {
	rec := &tradeRecorder{}
	return NewBook(rec.record, nil), rec
}

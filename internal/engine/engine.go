package engine

import "github.com/nmatare/lsematch/internal/common"

// Engine owns one Book per supported asset type. Only one asset/book is
// ever constructed in practice; multi-symbol routing is not implemented,
// but the owning type keeps this shape for that extension.
type Engine struct {
	Books map[common.AssetType]*Book
}

// New constructs an Engine with one empty book per requested asset type,
// all sharing the same trade/snapshot callbacks.
func New(onTrade TradeFunc, onSnapshot SnapshotFunc, assets ...common.AssetType) *Engine {
	e := &Engine{Books: make(map[common.AssetType]*Book, len(assets))}
	for _, asset := range assets {
		e.Books[asset] = NewBook(onTrade, onSnapshot)
	}
	return e
}

// Submit routes order to the book for assetType.
func (e *Engine) Submit(assetType common.AssetType, order *common.Order) error {
	b, ok := e.Books[assetType]
	if !ok {
		return common.ErrInvalidOrderKind
	}
	return b.Submit(order)
}

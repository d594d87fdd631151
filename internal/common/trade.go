package common

import "fmt"

// Trade records one execution. BuyOrderID is always the BID-side
// participant, SellOrderID the ASK-side participant, regardless of which
// one was the aggressor.
type Trade struct {
	BuyOrderID  uint64
	SellOrderID uint64
	Price       int64
	Quantity    uint64
}

func (t Trade) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", t.BuyOrderID, t.SellOrderID, t.Price, t.Quantity)
}

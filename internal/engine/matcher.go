package engine

import (
	"github.com/nmatare/lsematch/internal/book"
	"github.com/nmatare/lsematch/internal/common"
)

// match drains the opposite (taking) ladder against order until either
// order is fully filled or no more crossable liquidity remains. Any
// residual quantity is left on order for Book.Submit to rest.
func (b *Book) match(order *common.Order, taking *book.Ladder) {
	for order.Quantity > 0 {
		level, ok := taking.BestLevel()
		if !ok {
			break
		}
		if !crosses(order, level.Price) {
			break
		}

		b.drainLevel(order, level)

		if level.IsEmpty() {
			taking.DropLevel(level.Price)
		}
	}
}

// drainLevel walks the matched price level from the head, applying one of
// three cases depending on what the head order can cover and whether it
// has peers at the same price.
func (b *Book) drainLevel(order *common.Order, level *book.PriceLevel) {
	for order.Quantity > 0 && !level.IsEmpty() {
		resting := level.Head()
		price := level.Price

		switch {
		case resting.DisplayQuantity() >= order.Quantity:
			// Case A: full fill against a sufficient display.
			b.drainFullFill(order, resting, level, price)
			return

		case resting.Kind == common.Iceberg && level.Length() > 1:
			// Case B: head iceberg's display can't alone cover the
			// order, but peers exist at this price — fan out.
			b.fanOut(order, level)
			return

		default:
			// Case C: head alone cannot fill the incoming order, and
			// it is either a limit or an iceberg with no peers.
			if resting.Kind == common.Iceberg {
				b.drainSoleIceberg(order, resting, level, price)
				return
			}
			b.drainLimitPartial(order, resting, level, price)
			// continue the loop: the next head may also be consumed.
		}
	}
}

// drainFullFill handles the case where the head order's visible quantity
// alone covers the incoming order.
func (b *Book) drainFullFill(order, resting *common.Order, level *book.PriceLevel, price int64) {
	matched := order.Quantity
	resting.Consume(matched)
	order.Quantity = 0

	if resting.Quantity == 0 {
		level.PopHead()
	} else if resting.Kind == common.Iceberg && resting.PeakRemaining == 0 {
		resting.RefillPeak()
		level.RemoveHeadAndAppend()
	}

	b.emitTrade(order, resting, price, matched)
}

// drainSoleIceberg handles a lone resting iceberg at a level: it loses
// nothing to peak rotation because it has no peers to lose priority to,
// so its full residual quantity is consumed directly.
func (b *Book) drainSoleIceberg(order, resting *common.Order, level *book.PriceLevel, price int64) {
	matched := min(order.Quantity, resting.Quantity)
	resting.Quantity -= matched
	order.Quantity -= matched

	if resting.Quantity == 0 {
		level.PopHead()
	}

	b.emitTrade(order, resting, price, matched)
}

// drainLimitPartial handles a resting limit order smaller than the
// incoming residual: it is fully consumed and drained from the queue, and
// the caller's loop continues to the next head.
func (b *Book) drainLimitPartial(order, resting *common.Order, level *book.PriceLevel, price int64) {
	matched := resting.Quantity
	resting.Consume(matched)
	order.Quantity -= matched
	level.PopHead()

	b.emitTrade(order, resting, price, matched)
}

// aggregatedFill accumulates the executions a single counterparty
// receives during one fan-out.
type aggregatedFill struct {
	order    *common.Order
	quantity uint64
}

// fanOut is the two-pass iceberg rotation: when the incoming order
// exceeds a head iceberg's visible peak and other orders share the price
// level, rotate through the queue executing against each order's current
// peak, wrapping back to the start after the tail, until the incoming
// quantity is exhausted or the queue is empty. Multiple executions
// against one counterparty during this fan-out collapse into a single
// trade, emitted in order of first contact.
func (b *Book) fanOut(order *common.Order, level *book.PriceLevel) {
	price := level.Price
	fills := make(map[uint64]*aggregatedFill)
	var orderOfContact []uint64

	pos := 0
	for order.Quantity > 0 && !level.IsEmpty() {
		resting := level.At(pos)

		take := min(order.Quantity, resting.DisplayQuantity())
		resting.Consume(take)
		order.Quantity -= take

		if resting.Quantity > 0 && resting.Kind == common.Iceberg && resting.PeakRemaining == 0 {
			resting.RefillPeak()
		}

		if fill, ok := fills[resting.Identity]; ok {
			fill.quantity += take
		} else {
			fills[resting.Identity] = &aggregatedFill{order: resting, quantity: take}
			orderOfContact = append(orderOfContact, resting.Identity)
		}

		if resting.Quantity == 0 {
			level.RemoveAt(pos) // do not advance: next order slid into pos
		} else {
			pos++
		}

		if pos >= level.Length() {
			pos = 0
		}
	}

	for _, identity := range orderOfContact {
		fill := fills[identity]
		b.emitTrade(order, fill.order, price, fill.quantity)
	}
}

// emitTrade reports one execution between the aggressive order and a
// resting counterparty. The BID-side participant is always BuyOrderID,
// the ASK-side participant always SellOrderID.
func (b *Book) emitTrade(aggressive, resting *common.Order, price int64, quantity uint64) {
	if b.onTrade == nil {
		return
	}

	trade := common.Trade{Price: price, Quantity: quantity}
	if aggressive.Side == common.Bid {
		trade.BuyOrderID = aggressive.Identity
		trade.SellOrderID = resting.Identity
	} else {
		trade.BuyOrderID = resting.Identity
		trade.SellOrderID = aggressive.Identity
	}

	b.onTrade(trade)
}

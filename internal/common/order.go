package common

import "fmt"

// Order is the book's unit of identity: a submitter-assigned integer id,
// the side and price it rests at, a mutable residual quantity, and, for
// icebergs, the hidden-peak bookkeeping.
type Order struct {
	Identity uint64
	Side     Side
	Price    int64
	Quantity uint64
	Kind     OrderType

	// Iceberg-only fields. Zero for Limit orders.
	PeakSize      uint64
	PeakRemaining uint64
}

// NewLimitOrder constructs a resting or aggressive limit order.
func NewLimitOrder(identity uint64, side Side, price int64, quantity uint64) (*Order, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("limit order %d: %w: quantity must be positive", identity, ErrOrderValidation)
	}
	return &Order{
		Identity: identity,
		Side:     side,
		Price:    price,
		Quantity: quantity,
		Kind:     Limit,
	}, nil
}

// NewIcebergOrder constructs an iceberg order. Construction fails if
// peakSize is zero or exceeds quantity.
func NewIcebergOrder(identity uint64, side Side, price int64, quantity, peakSize uint64) (*Order, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("iceberg order %d: %w: quantity must be positive", identity, ErrOrderValidation)
	}
	if peakSize == 0 {
		return nil, fmt.Errorf("iceberg order %d: %w: peak_size must be positive", identity, ErrOrderValidation)
	}
	if peakSize > quantity {
		return nil, fmt.Errorf("iceberg order %d: %w: peak_size(%d) exceeds quantity(%d)", identity, ErrOrderValidation, peakSize, quantity)
	}
	return &Order{
		Identity:      identity,
		Side:          side,
		Price:         price,
		Quantity:      quantity,
		Kind:          Iceberg,
		PeakSize:      peakSize,
		PeakRemaining: peakSize,
	}, nil
}

// DisplayQuantity returns the visible quantity of the order: the peak for
// icebergs, the full residual for limits.
func (o *Order) DisplayQuantity() uint64 {
	if o.Kind == Iceberg {
		return o.PeakRemaining
	}
	return o.Quantity
}

// Consume reduces the order's residual quantity by amount, also reducing
// the visible peak for icebergs. amount must satisfy 0 < amount <= Quantity.
func (o *Order) Consume(amount uint64) {
	if amount == 0 || amount > o.Quantity {
		panic(fmt.Sprintf("order %d: consume(%d) out of range for quantity %d", o.Identity, amount, o.Quantity))
	}
	o.Quantity -= amount
	if o.Kind == Iceberg {
		o.PeakRemaining -= min(amount, o.PeakRemaining)
	}
}

// RefillPeak resets an exhausted iceberg's visible peak from its hidden
// reserve. Precondition: Kind == Iceberg, PeakRemaining == 0, Quantity > 0.
func (o *Order) RefillPeak() {
	if o.Kind != Iceberg {
		panic(fmt.Sprintf("order %d: RefillPeak on non-iceberg order", o.Identity))
	}
	if o.PeakRemaining != 0 {
		panic(fmt.Sprintf("order %d: RefillPeak with peak still visible (%d)", o.Identity, o.PeakRemaining))
	}
	if o.Quantity == 0 {
		panic(fmt.Sprintf("order %d: RefillPeak with no residual quantity", o.Identity))
	}
	o.PeakRemaining = min(o.PeakSize, o.Quantity)
}

func (o Order) String() string {
	if o.Kind == Iceberg {
		return fmt.Sprintf(
			"Order(id=%d side=%s price=%d quantity=%d peak=%d/%d)",
			o.Identity, o.Side, o.Price, o.Quantity, o.PeakRemaining, o.PeakSize,
		)
	}
	return fmt.Sprintf(
		"Order(id=%d side=%s price=%d quantity=%d)",
		o.Identity, o.Side, o.Price, o.Quantity,
	)
}

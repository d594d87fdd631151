// Package wire decodes the SETSmm ASCII order-entry line format into
// common.Order values. It is the book's only boundary collaborator on the
// input side: malformed lines are rejected here and never reach the
// matcher.
package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmatare/lsematch/internal/common"
)

// field indices of the SETSmm message.
const (
	fieldSide = iota
	fieldIdentity
	fieldPrice
	fieldQuantity
	fieldPeakSize
)

const fieldDelimiter = ","

// ParseOrderLine decodes one SETSmm order-entry line into an Order.
// Presence of a fifth comma-delimited field selects ICEBERG; its absence
// selects LIMIT.
func ParseOrderLine(line string) (*common.Order, error) {
	fields := strings.Split(line, fieldDelimiter)
	if len(fields) < 4 || len(fields) > 5 {
		return nil, fmt.Errorf("%w: expected 4 or 5 fields, got %d", common.ErrInvalidOrderFormat, len(fields))
	}

	side, err := parseSide(fields[fieldSide])
	if err != nil {
		return nil, err
	}

	identity, err := parseUint(fields[fieldIdentity], "identity")
	if err != nil {
		return nil, err
	}

	price, err := parseInt(fields[fieldPrice], "price")
	if err != nil {
		return nil, err
	}

	quantity, err := parseUint(fields[fieldQuantity], "quantity")
	if err != nil {
		return nil, err
	}

	if len(fields) == fieldPeakSize {
		order, err := common.NewLimitOrder(identity, side, price, quantity)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", line, err)
		}
		return order, nil
	}

	peakSize, err := parseUint(fields[fieldPeakSize], "peak_size")
	if err != nil {
		return nil, err
	}

	order, err := common.NewIcebergOrder(identity, side, price, quantity, peakSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", line, err)
	}
	return order, nil
}

// parseSide decodes the SETSmm side character: 'B' -> BID, 'A' -> ASK.
func parseSide(s string) (common.Side, error) {
	switch s {
	case "B":
		return common.Bid, nil
	case "A":
		return common.Ask, nil
	default:
		return 0, fmt.Errorf("%w: expected side in {B, A}, got %q", common.ErrInvalidOrderFormat, s)
	}
}

func parseUint(s, field string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s: %v", common.ErrInvalidOrderFormat, field, err)
	}
	return v, nil
}

func parseInt(s, field string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s: %v", common.ErrInvalidOrderFormat, field, err)
	}
	return v, nil
}

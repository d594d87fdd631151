// Package render formats a Book's resting orders and emitted trades as
// text. It is the book's only boundary collaborator on the output side
// and never mutates anything it is given.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmatare/lsematch/internal/book"
	"github.com/nmatare/lsematch/internal/common"
)

const snapshotHeader = `
+-----------------------------------------------------------------+
| BUY                            | SELL                           |
| Id       | Volume      | Price | Price | Volume      | Id       |
+----------+-------------+-------+-------+-------------+----------+
`

const snapshotFooter = "+-----------------------------------------------------------------+"

// Snapshot renders the full two-column ladder table, bids descending on
// the left and asks ascending on the right, one row per resting order.
// The shorter side is padded with blank rows so both columns align.
func Snapshot(bids, asks *book.Ladder) string {
	bidRows := rows(bids)
	askRows := rows(asks)

	n := len(bidRows)
	if len(askRows) > n {
		n = len(askRows)
	}
	if n == 0 {
		n = 1
	}

	var body strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			body.WriteByte('\n')
		}
		body.WriteString(bidColumn(bidRows, i))
		body.WriteString(askColumn(askRows, i))
	}

	var out strings.Builder
	out.WriteString(snapshotHeader)
	out.WriteString(body.String())
	out.WriteByte('\n')
	out.WriteString(snapshotFooter)
	return out.String()
}

// rows flattens a ladder into one entry per resting order, best price
// first, preserving each price level's arrival order.
func rows(ladder *book.Ladder) []*common.Order {
	var out []*common.Order
	for _, level := range ladder.Items() {
		out = append(out, level.Orders...)
	}
	return out
}

func bidColumn(rows []*common.Order, i int) string {
	if i >= len(rows) {
		return blankBidColumn()
	}
	o := rows[i]
	return fmt.Sprintf("|%10d|%13s|%7s", o.Identity, grouped(int64(o.Quantity)), grouped(o.Price))
}

func askColumn(rows []*common.Order, i int) string {
	if i >= len(rows) {
		return blankAskColumn()
	}
	o := rows[i]
	return fmt.Sprintf("|%7s|%13s|%10d|", grouped(o.Price), grouped(int64(o.Quantity)), o.Identity)
}

func blankBidColumn() string {
	return fmt.Sprintf("|%10s|%13s|%7s", "", "", "")
}

func blankAskColumn() string {
	return fmt.Sprintf("|%7s|%13s|%10s|", "", "", "")
}

// grouped formats n with thousands separators.
func grouped(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// Trade renders one trade line: "<buy_id>,<sell_id>,<price>,<quantity>\n".
func Trade(t common.Trade) string {
	return fmt.Sprintf("%d,%d,%d,%d\n", t.BuyOrderID, t.SellOrderID, t.Price, t.Quantity)
}

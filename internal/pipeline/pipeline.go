// Package pipeline wraps the synchronous matcher with bounded
// single-producer/single-consumer queues for line input and rendered
// output, letting I/O run concurrently with the matcher without the
// matcher itself giving up its single-threaded semantics: one goroutine
// reads order lines, one goroutine writes rendered output, and parsing and
// matching run synchronously on the goroutine that calls Run.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	tomb "gopkg.in/tomb.v2"

	"github.com/nmatare/lsematch/internal/common"
	"github.com/nmatare/lsematch/internal/engine"
	"github.com/nmatare/lsematch/internal/render"
	"github.com/nmatare/lsematch/internal/wire"
)

// queueSize bounds both the line-input and rendered-output channels.
const queueSize = 128

// Pipeline drives one asset's book from a line-oriented input stream,
// rendering trades and (optionally) snapshots to an output stream.
type Pipeline struct {
	runID  string
	asset  common.AssetType
	logger zerolog.Logger

	emitSnapshots bool
	output        chan string
}

// New constructs a Pipeline for asset. When emitSnapshots is false, the
// book's snapshot table is never rendered.
func New(asset common.AssetType, emitSnapshots bool, logger zerolog.Logger) *Pipeline {
	runID := uuid.NewString()
	return &Pipeline{
		runID:         runID,
		asset:         asset,
		logger:        logger.With().Str("run_id", runID).Logger(),
		emitSnapshots: emitSnapshots,
		output:        make(chan string, queueSize),
	}
}

// Run constructs a fresh engine, reads order lines from r until EOF,
// submitting each to the matcher on this goroutine, and writes rendered
// trade/snapshot text to w from a separately supervised goroutine. It
// returns the first unrecoverable parse or order-validation error, or nil
// on clean EOF.
func (p *Pipeline) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	t, ctx := tomb.WithContext(ctx)
	lines := make(chan string, queueSize)

	eng := engine.New(p.onTrade, p.onSnapshot, p.asset)

	t.Go(func() error {
		return p.readLines(t, r, lines)
	})
	t.Go(func() error {
		return p.writeOutput(t, w)
	})

	var submitErr error
	var lineNo int64
drain:
	for {
		select {
		case <-ctx.Done():
			break drain
		case line, ok := <-lines:
			if !ok {
				break drain
			}
			lineNo++
			if err := p.submitOrder(eng, lineNo, line); err != nil {
				submitErr = err
				t.Kill(err) // stop the reader without waiting out the rest of the input
				break drain
			}
		}
	}

	close(p.output)
	<-t.Dead()

	if submitErr != nil {
		return submitErr
	}
	if err := t.Err(); err != nil && err != tomb.ErrStillAlive {
		return err
	}
	return nil
}

// onTrade is the engine's TradeFunc: it renders the trade line and
// enqueues it for the writer stage.
func (p *Pipeline) onTrade(trade common.Trade) {
	p.output <- render.Trade(trade)
}

// onSnapshot is the engine's SnapshotFunc. A no-op when emitSnapshots is
// false.
func (p *Pipeline) onSnapshot(b *engine.Book) {
	if !p.emitSnapshots {
		return
	}
	p.output <- render.Snapshot(b.Bids(), b.Asks()) + "\n"
}

// submitOrder advances the book's tick tape to lineNo, parses one order
// line, and feeds it to the book, logging and surfacing any rejection.
// The line number doubles as the input's monotonic sequence index, so a
// line arriving out of order is rejected before it is even parsed.
func (p *Pipeline) submitOrder(eng *engine.Engine, lineNo int64, line string) error {
	b, ok := eng.Books[p.asset]
	if !ok {
		return common.ErrInvalidOrderKind
	}
	if err := b.AdvanceTickTape(lineNo); err != nil {
		p.logger.Error().Err(err).Int64("line_no", lineNo).Msg("rejecting out-of-sequence order line")
		return err
	}

	order, err := wire.ParseOrderLine(line)
	if err != nil {
		p.logger.Error().Err(err).Str("line", line).Msg("rejecting malformed order line")
		return err
	}
	if err := eng.Submit(p.asset, order); err != nil {
		p.logger.Error().Err(err).Uint64("identity", order.Identity).Msg("order rejected")
		return err
	}
	return nil
}

// readLines is the input-stage worker: it scans r line by line, pushing
// non-blank lines onto the bounded out channel until EOF, a scan error,
// or the tomb dying.
func (p *Pipeline) readLines(t *tomb.Tomb, r io.Reader, out chan<- string) error {
	defer close(out)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		select {
		case <-t.Dying():
			return nil
		case out <- line:
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading order lines: %w", err)
	}
	return nil
}

// writeOutput is the output-stage worker: it drains the rendered-text
// channel to w until the channel closes or the tomb dies.
func (p *Pipeline) writeOutput(t *tomb.Tomb, w io.Writer) error {
	for {
		select {
		case <-t.Dying():
			return nil
		case text, ok := <-p.output:
			if !ok {
				return nil
			}
			if _, err := io.WriteString(w, text); err != nil {
				p.logger.Error().Err(err).Msg("failed writing output")
				return fmt.Errorf("writing output: %w", err)
			}
		}
	}
}

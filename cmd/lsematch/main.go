// Command lsematch runs the LSE SETSmm-style matching engine against
// stdin, one order-entry line at a time, writing trade and snapshot
// output to stdout.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nmatare/lsematch/internal/common"
	"github.com/nmatare/lsematch/internal/pipeline"
)

const programHeader = `
██╗     ███████╗███████╗███╗   ███╗ █████╗ ████████╗ ██████╗██╗  ██╗
██║     ██╔════╝██╔════╝████╗ ████║██╔══██╗╚══██╔══╝██╔════╝██║  ██║
██║     ███████╗█████╗  ██╔████╔██║███████║   ██║   ██║     ███████║
██║     ╚════██║██╔══╝  ██║╚██╔╝██║██╔══██║   ██║   ██║     ██╔══██║
███████╗███████║███████╗██║ ╚═╝ ██║██║  ██║   ██║   ╚██████╗██║  ██║
╚══════╝╚══════╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝
`

// envEnableProfiling, when set to any non-empty value, disables snapshot
// emission, since stdout snapshot rendering is the dominant cost on the
// hot path.
const envEnableProfiling = "ENABLE_PROFILING"

func main() {
	os.Stdout.WriteString(programHeader + "\n")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	emitSnapshots := os.Getenv(envEnableProfiling) == ""
	if !emitSnapshots {
		log.Info().Msg("ENABLE_PROFILING set: snapshot rendering disabled")
	} else {
		log.Warn().Msg("rendering orderbook snapshots to stdout; this will severely degrade throughput")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	p := pipeline.New(common.Equities, emitSnapshots, logger)
	if err := p.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("matching engine terminated with an error")
		os.Exit(1)
	}
}

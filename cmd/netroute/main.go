// Command netroute is an interactive network routing simulator.
//
//	netroute                          # interactive shell on stdin
//	netroute --script topology.txt    # run commands from a file
//	netroute --metrics-addr :9090     # also serve /metrics
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

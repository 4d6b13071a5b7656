// Command perfgraph runs the pose-graph timing cases.
//
//	perfgraph list
//	perfgraph run --filter dijkstra --scale 0.2 --format json
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
		stop()
		fmt.Fprintln(os.Stderr, "perfgraph:", err)
		os.Exit(1)
	}
}

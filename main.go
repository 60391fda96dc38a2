// Package main provides the digest CLI entry point.
// digest turns a speech-recognition transcript and a diarization result into
// a speaker-attributed conversation with an extractive summary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/convoscribe/digest-cli/cmd"
)

// rootCmd is the base command; invoked without a subcommand it runs the full
// pipeline.
var rootCmd *cobra.Command

func init() {
	rootCmd = cmd.NewDigestCommand(nil)

	rootCmd.AddCommand(cmd.NewConversationCommand(nil))
	rootCmd.AddCommand(cmd.NewSummarizeCommand(nil))
	rootCmd.AddCommand(cmd.NewVersionCommand())
}

func main() {
	// Set up signal handling for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

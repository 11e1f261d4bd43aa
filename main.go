package main

import (
	"fmt"
	"os"
	"time"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	inputs    []uint
	inputFile string
	workers   int
)

func init() {
	spongeCmd.PersistentFlags().UintSliceVar(&inputs, "inputs", nil, "The message to hash, comma separated field elements.")
	spongeCmd.PersistentFlags().StringVar(&inputFile, "input-file", "", "A file of messages to hash, one comma separated message per line.")
	spongeCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Goroutines hashing messages of the input file, 0 for no limit.")

	spongeCmd.MarkFlagsMutuallyExclusive("inputs", "input-file")
}

var spongeCmd = &cobra.Command{
	Use:   "sponge",
	Short: "Hash field elements with padding-free sponges, natively and in circuit",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Set(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			With().Timestamp().Logger())
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
	SilenceUsage: true,
}

func main() {
	if err := spongeCmd.Execute(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/objectionary/phie-go"
)

// newRunCmd mirrors original_source/src/bin/custom_executor.rs:
// load a program file, dataize it, and print the result or error.
// When an expected value is given, mismatches also fail the command.
func newRunCmd() *cobra.Command {
	var maxCycles int
	var logSnapshots bool
	var stopWhenStuck bool

	cmd := &cobra.Command{
		Use:   "run <file> [expected]",
		Short: "dataize a φ-program file and print its result",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Executor error: %v\n", err)
				os.Exit(1)
			}
			prog, err := phie.ParseProgram(string(src))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Executor error: %v\n", err)
				os.Exit(1)
			}
			emu := phie.NewEmu(prog)
			if logSnapshots {
				emu.SetOpt(phie.LogSnapshots)
			}
			if stopWhenStuck {
				emu.SetOpt(phie.StopWhenStuck)
			}
			emu.SetOpt(phie.StopWhenTooManyCycles)
			emu.MaxTicks = maxCycles
			result, err := emu.Dataize()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Executor error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Executor result: %d\n", int16(result))
			if len(args) == 2 {
				want, err := strconv.Atoi(args[1])
				if err != nil {
					return err
				}
				if phie.Data(want) != result {
					fmt.Fprintf(os.Stderr, "Executor error: expected %d, got %d\n", want, int16(result))
					os.Exit(1)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxCycles, "max-cycles", 0, "maximum scheduler ticks before giving up (0 = default)")
	cmd.Flags().BoolVar(&logSnapshots, "log-snapshots", false, "log each resolved slot at verbosity 1")
	cmd.Flags().BoolVar(&stopWhenStuck, "stop-when-stuck", true, "report a resolution cycle as stuck")
	return cmd
}

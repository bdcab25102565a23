package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/objectionary/phie-go"
)

// newFibCmd mirrors original_source/src/bin/fibonacci.rs: build the
// canonical Fibonacci program for n and dataize it `cycles` times,
// reporting the result and the summed total.
func newFibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib <n> <cycles>",
		Short: "compute the n-th Fibonacci number `cycles` times and sum the results",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			cycles, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			var total, last phie.Data
			for i := 0; i < cycles; i++ {
				f, err := phie.Fibonacci(phie.Data(n))
				if err != nil {
					fmt.Printf("Executor error: %v\n", err)
					return err
				}
				last = f
				total += f
			}
			fmt.Printf("%d-th Fibonacci number is %d\n", n, int16(last))
			fmt.Printf("Sum of results is %d\n", int16(total))
			return nil
		},
	}
	return cmd
}

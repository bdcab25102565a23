// Command phie runs and inspects φ-calculus programs.
package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "phie",
		Short: "run φ-calculus programs through the dataization engine",
	}
	root.AddCommand(newRunCmd(), newFibCmd())
	if err := root.Execute(); err != nil {
		glog.Errorf("phie: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

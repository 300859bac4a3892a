package main

import (
	"fmt"
	"os"

	"github.com/snifferhu/RIDE/cmd/ride"
	"github.com/snifferhu/RIDE/pkg/ui/styles"
)

func main() {
	rootCmd := ride.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// Package main is the entry point for the arcdex binary
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arcdex",
	Short: "ARC Raiders reference service",
	Long:  `Arcdex serves the ARC Raiders reference dataset as a browser item database and a Discord bot.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(botCmd)
}

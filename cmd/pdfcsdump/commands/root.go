/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package commands implements the pdfcsdump CLI commands.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Version is the application version (set at build time).
	Version = "dev"

	// strict toggles strict interpretation: malformed content aborts
	// instead of being logged and skipped.
	strict bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "pdfcsdump",
	Short: "Tokenize and interpret a raw PDF content stream",
	Long: `pdfcsdump tokenizes and interprets a raw PDF content stream,
printing the device callbacks it produces.

Examples:
  pdfcsdump dump page1.cs
  pdfcsdump dump --strict form.cs`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "abort on the first malformed operator instead of skipping it")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)
}

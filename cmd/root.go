// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/ifreport/internal/config"
	"firestige.xyz/ifreport/internal/log"
)

var (
	// Global flags
	configFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ifreport",
	Short: "ifreport - Field-selectable network interface state reports",
	Long: `ifreport reads low-level interface properties straight from the kernel
(via the SIOCGIF* ioctl family) and assembles them into an ordered,
field-selectable report.

Fields: name, status, ip, netmask, mac
Output: text, json or yaml`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "/etc/ifreport/config.yml",
		"config file path")

	// Add subcommands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file and initializes logging from it.
func loadConfig() *config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		exitWithError("failed to load config", err)
	}
	log.Init(&cfg.Log)
	return cfg
}

// exitWithError prints error message and exits with code 1
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}

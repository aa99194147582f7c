package cmd

import (
	"net"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/ifreport/internal/core"
	"firestige.xyz/ifreport/internal/log"
	"firestige.xyz/ifreport/internal/report"
)

var (
	listUp     bool
	listOutput string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Report all system interfaces",
	Long: `Enumerate the system's network interfaces and print a report for each,
using the default fields from the config.

Interfaces that fail to report (for example, an interface without an
IPv4 address) are skipped with a warning.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runListCommand()
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listUp, "up", "u", false,
		"only interfaces that are up")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "",
		"output format: text|json|yaml (default from config)")
}

func runListCommand() {
	cfg := loadConfig()
	format := cfg.Output
	if listOutput != "" {
		format = listOutput
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		exitWithError("failed to enumerate interfaces", err)
	}

	builder := report.NewBuilder(nil)
	logger := log.GetLogger()

	var reports []*core.Report
	for _, iface := range ifaces {
		if listUp && iface.Flags&net.FlagUp == 0 {
			continue
		}
		rep, err := builder.Build(iface.Name, cfg.Fields)
		if err != nil {
			logger.WithField("interface", iface.Name).WithError(err).
				Warn("skipping interface")
			continue
		}
		reports = append(reports, rep)
	}

	if err := renderAll(os.Stdout, reports, format); err != nil {
		exitWithError("failed to render reports", err)
	}
}

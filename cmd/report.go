package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"firestige.xyz/ifreport/internal/config"
	"firestige.xyz/ifreport/internal/log"
	"firestige.xyz/ifreport/internal/report"
)

var (
	reportFields string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report <interface>",
	Short: "Report selected fields for one network interface",
	Long: `Query the kernel for the requested fields of a single interface and
print them in request order.

Examples:
  ifreport report eth0
  ifreport report eth0 --fields name,status,ip
  ifreport report eth0 --fields mac --output json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runReportCommand(args[0])
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportFields, "fields", "f", "",
		"comma-separated report fields (default from config)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "",
		"output format: text|json|yaml (default from config)")
}

func runReportCommand(ifname string) {
	cfg := loadConfig()
	fields := requestedFields(cfg)
	format := outputFormat(cfg)

	log.GetLogger().WithField("interface", ifname).
		Debugf("building report for fields %v", fields)

	builder := report.NewBuilder(nil)
	rep, err := builder.Build(ifname, fields)
	if err != nil {
		exitWithError("report failed", err)
	}

	if err := render(os.Stdout, rep, format); err != nil {
		exitWithError("failed to render report", err)
	}
}

func requestedFields(cfg *config.Config) []string {
	if reportFields == "" {
		return cfg.Fields
	}
	parts := strings.Split(reportFields, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

func outputFormat(cfg *config.Config) string {
	if reportOutput == "" {
		return cfg.Output
	}
	return reportOutput
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"firestige.xyz/ifreport/internal/core"
)

// render writes a single report in the given format.
func render(w io.Writer, rep *core.Report, format string) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, rep.String())
		return err
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// renderAll writes a sequence of reports. JSON and YAML render a single
// document containing all reports; text renders them blank-line separated.
// An empty sequence renders as an empty collection, never null.
func renderAll(w io.Writer, reports []*core.Report, format string) error {
	if reports == nil {
		reports = []*core.Report{}
	}
	switch format {
	case "text":
		for i, rep := range reports {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, rep.String()); err != nil {
				return err
			}
		}
		return nil
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(reports)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

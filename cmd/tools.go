package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/crystaldolphin/discordmcp/internal/tools"
)

var toolsFormat string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Inspect the tool catalog",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tool with its parameters",
	RunE:  runToolsList,
}

var toolsValidateCmd = &cobra.Command{
	Use:   "validate <tool> [key=value ...]",
	Short: "Check that the arguments satisfy a tool's required parameters",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runToolsValidate,
}

func init() {
	toolsListCmd.Flags().StringVarP(&toolsFormat, "format", "f", "table", "Output format: table, json or yaml")
	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsValidateCmd)
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	registry := tools.Catalog()

	switch strings.ToLower(toolsFormat) {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(registry.Definitions())
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(registry.Definitions())
	case "table":
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOOL\tREQUIRED\tOPTIONAL")
		for _, d := range registry.List() {
			var optional []string
			for _, p := range d.Params {
				if !p.Required {
					optional = append(optional, p.Name)
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, dashIfEmpty(d.Required()), dashIfEmpty(optional))
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", toolsFormat)
	}
}

func dashIfEmpty(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func runToolsValidate(cmd *cobra.Command, args []string) error {
	registry := tools.Catalog()
	desc, known := registry.Get(args[0])

	bag := tools.ArgumentBag{}
	for _, kv := range args[1:] {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("argument %q is not key=value", kv)
		}
		if known {
			if _, declared := desc.Param(key); !declared {
				fmt.Fprintf(cmd.ErrOrStderr(), "! %s is not a parameter of %s and will be ignored\n", key, desc.Name)
			}
		}
		bag[key] = value
	}

	errs := registry.Validate(args[0], bag)
	if len(errs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "✓ valid")
		return nil
	}
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), "✗ "+e)
	}
	return fmt.Errorf("%d validation error(s)", len(errs))
}

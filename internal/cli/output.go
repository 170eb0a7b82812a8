package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const FlagOutput = "output"

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func RegisterOutputFlag(cmd *cobra.Command) {
	EnumVar(cmd.PersistentFlags(), FlagOutput, []string{OutputText, OutputJSON, OutputYAML}, "output format")
}

func getOutputFormat(cmd *cobra.Command) (string, error) {
	format, err := GetEnum(cmd.Flags(), FlagOutput)
	if err != nil {
		return "", err
	}
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format: %s", format)
	}
}

// textRenderer is implemented by results that have a plain text form.
type textRenderer interface {
	renderText(w io.Writer) error
}

// render writes a command result in the format selected by the output flag.
func render(cmd *cobra.Command, result textRenderer) error {
	format, err := getOutputFormat(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return result.renderText(out)
	}
}

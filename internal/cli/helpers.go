package cli

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// DateLayout is the calendar day format accepted by date flags
const DateLayout = "2006-01-02"

// AddOutputFlags registers the agent-friendly output flags on cmd
func AddOutputFlags(cmd *cobra.Command, withYAML bool) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
	if withYAML {
		cmd.Flags().Bool("yaml", false, "Output in YAML format")
	}
}

// NewFormatter builds a formatter from the output flags of cmd, writing
// to the command's configured streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	yamlOutput, _ := cmd.Flags().GetBool("yaml")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	return &OutputFormatter{
		JSON:   jsonOutput,
		YAML:   yamlOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Fail reports err through the formatter and returns it for cobra.
// Not-found and validation errors get their own codes; anything else is
// reported as code.
func Fail(formatter *OutputFormatter, code string, err error) error {
	switch ExitCode(err) {
	case ExitNotFound:
		code = "NOT_FOUND"
	case ExitValidation:
		code = "VALIDATION_ERROR"
	}
	if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return err
}

// ParseDay parses a YYYY-MM-DD day in the local time zone, or an RFC 3339 timestamp
func ParseDay(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, WithExitCode(ExitUsage,
			fmt.Errorf("invalid date %q (expected %s or RFC 3339)", value, DateLayout))
	}
	return t, nil
}

// Confirm asks a yes/no question on the command's streams
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
	var response string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
		log.Printf("Error reading user input: %v", err)
	}
	response = strings.ToLower(response)
	return response == "y" || response == "yes"
}

// OptionalFloat returns the value of a float flag, or nil when it was not set
func OptionalFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return nil
	}
	return &v
}

package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Section headers: "Usage:", "Available Commands:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// Command listings: "  summary     Compute a worker's month totals"
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	// Flag lines: "      --paid stringArray   amount paid on a day"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// Example invocations inside Long: "  roster summary --month 4"
	exampleRe = regexp.MustCompile(`^( +)(roster( .*)?)$`)
	footerRe  = regexp.MustCompile(`^Use "`)
)

// colorizedHelpFunc renders cobra's usage text with the app palette.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		} else if cmd.Short != "" {
			buf.WriteString(cmd.Short + "\n\n")
		}
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var result strings.Builder
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}

		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)

	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	}

	if m := exampleRe.FindStringSubmatch(line); m != nil {
		return m[1] + Success(m[2])
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + m[3]
	}
	return line
}

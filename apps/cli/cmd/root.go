package cmd

import (
	"os"
	"time"

	"github.com/gurl-cli/gurl/packages/http"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gurl",
	Short: "A tiny httpie-style HTTP client",
	Long: `gurl issues a single HTTP request and pretty-prints the response:
status, headers, and a body syntax-highlighted by content type.

Body fields for write methods are given as key=value arguments:

  gurl get https://httpbin.org/get
  gurl post https://httpbin.org/post name=ada lang=go`,
	SilenceUsage: true,
}

var (
	verboseFlag int
	noColorFlag bool
	headerFlags []string
	timeoutFlag time.Duration
)

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(execute(rootCmd))
}

// execute runs root and classifies any failure. An error surfaced before
// a command's RunE runs (unknown command, bad flag, wrong argument count)
// is CLI misuse.
func execute(root *cobra.Command) int {
	ranCommand := false
	root.PersistentPreRun = func(*cobra.Command, []string) {
		ranCommand = true
	}
	if err := root.Execute(); err != nil {
		if !ranCommand {
			return ExitUsageError
		}
		return exitCode(err)
	}
	return ExitSuccess
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "Verbose output (-v request line and timing, -vv request headers)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output and syntax highlighting")
	rootCmd.PersistentFlags().StringArrayVarP(&headerFlags, "header", "H", nil, `Extra request header ("Name: Value", repeatable)`)
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", http.DefaultTimeout, "Request timeout")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(versionCmd)
}

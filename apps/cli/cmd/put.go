package cmd

import (
	nethttp "net/http"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <url> [key=value ...]",
	Short: "Send a PUT request with a JSON body built from key=value pairs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, nethttp.MethodPut, args)
	},
}

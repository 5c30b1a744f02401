package cmd

import (
	nethttp "net/http"

	"github.com/spf13/cobra"
)

var patchCmd = &cobra.Command{
	Use:   "patch <url> [key=value ...]",
	Short: "Send a PATCH request with a JSON body built from key=value pairs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, nethttp.MethodPatch, args)
	},
}

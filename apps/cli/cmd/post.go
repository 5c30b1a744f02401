package cmd

import (
	nethttp "net/http"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <url> [key=value ...]",
	Short: "Send a POST request with a JSON body built from key=value pairs",
	Long: `Send a POST request. Each key=value argument becomes one field of a
JSON object sent as the request body:

  gurl post https://httpbin.org/post name=ada lang=go`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, nethttp.MethodPost, args)
	},
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doitintl/hello/agent-data-api/cmd/api"
)

var addr string

var rootCmd = &cobra.Command{
	Use:           "agent-data-api",
	Short:         "HTTP data services over CSV, Excel, Sheets and object storage datasets",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:       "serve <service>",
	Short:     "Serve the endpoints of one service",
	Long:      "Serve the endpoints of one service. Services: " + strings.Join(api.Services(), ", ") + ".",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: api.Services(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(args[0], resolveAddr(addr))
	},
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the services that can be served",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range api.Services() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to :$PORT or "+defaultAddr+")")

	rootCmd.AddCommand(serveCmd, servicesCmd)
}

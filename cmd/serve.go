package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/stint-sh/stint/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the project directory and entry submission over HTTP",
	Long: `Run a local HTTP server exposing:

  GET  /api/projects    The project list as a JSON array
  POST /api/entries     Record an entry; validation failures return 400

With static_dir configured, the directory's files are served at /.

Example:
  stint serve
  stint serve --addr :9000`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runServer(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServer(cmd *cobra.Command) {
	sess, err := newSession()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	addr := sess.cfg.ListenAddr
	if cmd.Flags().Changed("addr") {
		addr = serveAddr
	}

	srv := server.New(sess.tracker, directoryFromConfig(sess.cfg), sess.cfg.StaticDir)
	_, _ = fmt.Fprintf(deps.Stdout, "Listening on %s\n", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}

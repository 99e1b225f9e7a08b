package commands

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kbreese-x/cosmograph/am"
	"github.com/kbreese-x/cosmograph/errors"
	"github.com/kbreese-x/cosmograph/logger"
	"github.com/kbreese-x/cosmograph/server"
)

// ServerCmd starts the cosmograph web server
var ServerCmd = newServerCmd()

type serverFlags struct {
	port      int
	graphFile string
	noBrowser bool
	noWatch   bool
}

func newServerCmd() *cobra.Command {
	var flags serverFlags
	cmd := &cobra.Command{
		Use:     "server",
		Aliases: []string{"serve"},
		Short:   "Serve a graph and its merged options to the browser renderer",
		Long: `Launch the cosmograph server. The preset and props come from am.toml; edits
to the config file are applied live and pushed to every connected browser.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, flags)
		},
	}
	cmd.Flags().IntVar(&flags.port, "port", 0, "Port to listen on (default from server.port)")
	cmd.Flags().StringVar(&flags.graphFile, "graph", "", "Graph file or http(s) URL to serve (overrides graph.file)")
	cmd.Flags().BoolVar(&flags.noBrowser, "no-browser", false, "Disable automatic browser opening")
	cmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "Do not reload when the config file changes")
	return cmd
}

func runServer(cmd *cobra.Command, flags serverFlags) error {
	// Get verbosity flag - default to 1 (Info) for server
	verbosity, _ := cmd.Flags().GetCount("verbose")
	if verbosity == 0 {
		verbosity = 1
	}
	logger.SetVerbosity(verbosity)

	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if flags.graphFile != "" {
		cfg.Graph.File = flags.graphFile
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}
	logger.SetTheme(cfg.GetServerLogTheme())

	port := cfg.GetServerPort()
	if flags.port != 0 {
		port = flags.port
	}

	srv, err := server.New(cfg, verbosity)
	if err != nil {
		return errors.Wrap(err, "failed to create server")
	}

	configPath := am.ConfigFilePath()
	printStartupBanner(cmd.OutOrStdout(), verbosity, cfg, configPath)

	if configPath != "" && !flags.noWatch {
		if err := srv.WatchConfig(configPath); err != nil {
			pterm.Warning.Printfln("Config reload disabled: %v", err)
		}
	}

	var browserFunc func(string)
	if !flags.noBrowser {
		browserFunc = openBrowser
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(context.Background(), port, browserFunc)
	}()

	// Wait for shutdown signal (Ctrl+C)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		if err != nil {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-sigChan:
		pterm.Info.Println("Shutting down gracefully (press Ctrl+C again to force)...")

		shutdownDone := make(chan error, 1)
		go func() {
			shutdownDone <- srv.Stop()
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				return errors.Wrap(err, "shutdown error")
			}
			pterm.Success.Println("Server stopped cleanly")
			return nil
		case <-sigChan:
			pterm.Warning.Println("Force shutdown - exiting immediately")
			os.Exit(1)
			return nil
		}
	}
}

// openBrowser attempts to open the URL in the default browser
func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "darwin":
		err = exec.Command("open", url).Start()
	case "linux":
		err = exec.Command("xdg-open", url).Start()
	case "windows":
		err = exec.Command("cmd", "/c", "start", url).Start()
	}
	// Silently ignore errors - user can manually open the URL
	_ = err
}

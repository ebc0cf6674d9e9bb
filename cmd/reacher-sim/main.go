package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reacher-tools/hwpanel/hlog"
	"github.com/reacher-tools/hwpanel/serialapi"
	"github.com/reacher-tools/hwpanel/simulator"
)

var flags struct {
	host       string
	port       int
	failStatus int
	failAfter  int
	failCount  int
	verbose    bool
	debug      bool
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "reacher-sim",
	Short:        "Serve a stand-in for the rig's serial command API",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		hlog.Init(flags.verbose, flags.debug)
		log := hlog.GetLogger("simulator")

		sim := simulator.New(log)
		if flags.failCount > 0 {
			sim.FailAfter(flags.failAfter, flags.failCount, flags.failStatus)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := net.JoinHostPort(flags.host, strconv.Itoa(flags.port))
		srv := &http.Server{
			Addr:              addr,
			Handler:           sim,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		log.Info("Listening", "address", addr, "path", serialapi.CommandPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		log.Info("Stopped", "commands", len(sim.Commands()))
		return nil
	},
}

func init() {
	def := serialapi.DefaultConfig()
	f := rootCmd.Flags()
	f.StringVarP(&flags.host, "host", "H", def.Host, "listen address")
	f.IntVarP(&flags.port, "port", "p", def.Port, "listen port")
	f.IntVar(&flags.failAfter, "fail-after", 0, "commands to accept before injecting failures")
	f.IntVar(&flags.failCount, "fail-count", 0, "number of commands to fail")
	f.IntVar(&flags.failStatus, "fail-status", http.StatusInternalServerError, "HTTP status of injected failures")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	f.BoolVarP(&flags.debug, "debug", "d", false, "debug output, logs every command")
}

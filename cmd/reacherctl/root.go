package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reacher-tools/hwpanel/dashboard"
	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/hlog"
	"github.com/reacher-tools/hwpanel/serialapi"
)

var flags struct {
	serialapi.Config
	Verbose bool
	Debug   bool
}

// errFailed is returned when the session log holds errors, so the process
// exits non-zero after the log has been printed.
var errFailed = errors.New("one or more commands failed")

var rootCmd = &cobra.Command{
	Use:           "reacherctl",
	Short:         "Drive the rig's hardware from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		hlog.Init(flags.Verbose, flags.Debug)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Commit)
	},
}

func init() {
	def := serialapi.DefaultConfig()
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.Host, "host", "H", def.Host, "instrument API host")
	pf.IntVarP(&flags.Port, "port", "p", def.Port, "instrument API port")
	pf.DurationVar(&flags.Timeout, "timeout", def.Timeout, "per-request timeout")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&flags.Debug, "debug", "d", false, "debug output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(armCmd)
	rootCmd.AddCommand(leverCmd)
	rootCmd.AddCommand(cueCmd)
	rootCmd.AddCommand(laserCmd)
	rootCmd.AddCommand(waveCmd)
}

type session struct {
	dash *dashboard.Dashboard
	tab  *hardware.Tab
}

// connect opens a session against the configured endpoint. When the API
// cannot be reached the log is printed and ErrNotConnected returned, so no
// command is attempted.
func connect(cmd *cobra.Command, cfg *serialapi.Config) (*session, error) {
	dash := dashboard.New(cfg, dashboard.DefaultLogSize, nil, hlog.GetLogger("dashboard"))
	client := serialapi.NewClient(cfg.Timeout, hlog.GetLogger("serialapi"))
	s := &session{
		dash: dash,
		tab:  hardware.NewTab(dash, client, nil, hlog.GetLogger("hardware")),
	}
	if err := dash.Connect(cmd.Context(), cfg.Endpoint()); err != nil {
		s.finish(cmd.OutOrStdout())
		return nil, fmt.Errorf("%w at %s", dashboard.ErrNotConnected, cfg.Endpoint().Address())
	}
	return s, nil
}

// finish prints the session log and reports whether anything failed.
func (s *session) finish(w io.Writer) error {
	for _, e := range s.dash.Entries() {
		fmt.Fprintln(w, e.String())
	}
	if s.dash.Errors() > 0 {
		return errFailed
	}
	return nil
}

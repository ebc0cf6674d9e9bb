package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/waveform"
)

var armCmd = &cobra.Command{
	Use:   "arm <component>...",
	Short: "Toggle the armed state of the named components",
	Long: "Toggle the armed state of the named components. Known components: " +
		strings.Join(componentNames(), ", ") + ". Unknown names are skipped.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := connect(cmd, &flags.Config)
		if err != nil {
			return err
		}
		s.tab.ArmDevices(cmd.Context(), args)
		return s.finish(cmd.OutOrStdout())
	},
}

func componentNames() []string {
	names := make([]string, len(hardware.Devices))
	for i, d := range hardware.Devices {
		names[i] = fmt.Sprintf("%q", d.Component())
	}
	return names
}

var leverCmd = &cobra.Command{
	Use:       "lever lh|rh",
	Short:     "Select the active lever",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"lh", "rh"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := connect(cmd, &flags.Config)
		if err != nil {
			return err
		}
		s.tab.SetActiveLever(cmd.Context(), args[0])
		return s.finish(cmd.OutOrStdout())
	},
}

var cueFlags hardware.CueSettings

var cueCmd = &cobra.Command{
	Use:   "cue",
	Short: "Send the cue tone configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := connect(cmd, &flags.Config)
		if err != nil {
			return err
		}
		s.tab.SetCueSettings(cueFlags)
		s.tab.SendCueConfiguration(cmd.Context())
		return s.finish(cmd.OutOrStdout())
	},
}

var laserFlags struct {
	mode      string
	frequency int
	duration  int
}

var laserCmd = &cobra.Command{
	Use:   "laser",
	Short: "Send the laser stimulation configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := hardware.ParseStimMode(laserFlags.mode)
		if err != nil {
			return err
		}
		s, err := connect(cmd, &flags.Config)
		if err != nil {
			return err
		}
		s.tab.SetLaserSettings(hardware.LaserSettings{
			Mode:      mode,
			Frequency: laserFlags.frequency,
			Duration:  laserFlags.duration,
		})
		s.tab.SendLaserConfiguration(cmd.Context())
		return s.finish(cmd.OutOrStdout())
	},
}

var waveFlags struct {
	frequency int
	width     int
}

var waveCmd = &cobra.Command{
	Use:   "wave",
	Short: "Print the laser waveform preview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := waveform.SquareWave(waveFlags.frequency)
		fmt.Fprintln(cmd.OutOrStdout(), w.Title())
		fmt.Fprintln(cmd.OutOrStdout(), strip(w, waveFlags.width))
		return nil
	},
}

func init() {
	cue := hardware.DefaultCueSettings()
	cueCmd.Flags().IntVarP(&cueFlags.Frequency, "frequency", "f", cue.Frequency, "tone frequency in Hz")
	cueCmd.Flags().IntVarP(&cueFlags.Duration, "duration", "t", cue.Duration, "tone duration in ms")

	laser := hardware.DefaultLaserSettings()
	laserCmd.Flags().StringVarP(&laserFlags.mode, "mode", "m", string(laser.Mode), "stim mode: Cycle or Active-Press")
	laserCmd.Flags().IntVarP(&laserFlags.frequency, "frequency", "f", laser.Frequency, "pulse frequency in Hz")
	laserCmd.Flags().IntVarP(&laserFlags.duration, "duration", "t", laser.Duration, "train duration in s")

	waveCmd.Flags().IntVarP(&waveFlags.frequency, "frequency", "f", laser.Frequency, "pulse frequency in Hz")
	waveCmd.Flags().IntVarP(&waveFlags.width, "width", "w", 100, "columns in the strip")
}

// strip renders w as one line of text, one column per width-th of the
// window, sampling the level at the start of each column.
func strip(w waveform.Waveform, width int) string {
	if width <= 0 || len(w.Levels) == 0 {
		return ""
	}
	var sb strings.Builder
	for col := 0; col < width; col++ {
		i := col * len(w.Levels) / width
		if w.Levels[i] > 0 {
			sb.WriteRune('‾')
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}

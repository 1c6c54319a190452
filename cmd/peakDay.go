package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"scrobble-stats/internal/analysis"
)

var (
	peakDayArtist string
	peakDayTrack  string
)

var peakDayCmd = &cobra.Command{
	Use:   "peak-day",
	Short: "Finds the single day a track was played the most",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printPeakDay(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(peakDayCmd)
	peakDayCmd.Flags().StringVar(&peakDayArtist, "artist", "", "artist name (exact match)")
	peakDayCmd.MarkFlagRequired("artist")
	peakDayCmd.Flags().StringVar(&peakDayTrack, "track", "", "track name (exact match)")
	peakDayCmd.MarkFlagRequired("track")
}

func printPeakDay(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}

	peak, ok := analysis.PeakDayForTrack(events, peakDayArtist, peakDayTrack, loc)
	if !ok {
		fmt.Fprintf(out, "No plays found for %s — %s\n", peakDayArtist, peakDayTrack)
		return nil
	}

	percent := float64(peak.Plays) / float64(peak.Total) * 100
	fmt.Fprintf(out, "%s — %s\n", peakDayArtist, peakDayTrack)
	fmt.Fprintf(out, "Peak day: %s with %d plays (%.1f%% of %d total)\n",
		peak.Day, peak.Plays, percent, peak.Total)
	return nil
}

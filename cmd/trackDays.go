package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"scrobble-stats/internal/analysis"
)

var (
	trackDaysArtist string
	trackDaysTrack  string
)

var trackDaysCmd = &cobra.Command{
	Use:   "track-days",
	Short: "Lists every day a track was played",
	Long:  `Shows each local calendar day the track was played and how many times, busiest days first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printTrackDays(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(trackDaysCmd)
	trackDaysCmd.Flags().StringVar(&trackDaysArtist, "artist", "", "artist name (exact match)")
	trackDaysCmd.MarkFlagRequired("artist")
	trackDaysCmd.Flags().StringVar(&trackDaysTrack, "track", "", "track name (exact match)")
	trackDaysCmd.MarkFlagRequired("track")
}

func printTrackDays(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}

	days, ok := analysis.AllDaysForTrack(events, trackDaysArtist, trackDaysTrack, loc)
	if !ok {
		fmt.Fprintf(out, "No plays found for %s — %s\n", trackDaysArtist, trackDaysTrack)
		return nil
	}

	total := 0
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{d.Day, strconv.Itoa(d.Plays)})
		total += d.Plays
	}
	if err := renderTable(out, []string{"Day", "Plays"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d plays over %d days\n", total, len(days))
	return nil
}

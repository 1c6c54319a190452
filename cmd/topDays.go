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
	topDaysNum int
	topDaysBy  string
)

var topDaysCmd = &cobra.Command{
	Use:   "top-days",
	Short: "Ranks calendar days by listening activity",
	Long: `Ranks local calendar days by total plays (the default), or by how many
distinct artists or tracks were played that day.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printTopDays(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topDaysCmd)
	topDaysCmd.Flags().IntVarP(&topDaysNum, "number", "n", 5, "number of days to show")
	topDaysCmd.Flags().StringVar(&topDaysBy, "by", "plays", "ranking metric: 'plays', 'artists', or 'tracks'")
}

func printTopDays(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}

	switch topDaysBy {
	case "plays":
		days := analysis.TopDays(events, topDaysNum, loc)
		rows := make([][]string, 0, len(days))
		for i, d := range days {
			top := fmt.Sprintf("%s — %s (%d)", d.TopTrack.Key.Artist, d.TopTrack.Key.Track, d.TopTrack.Plays)
			rows = append(rows, []string{strconv.Itoa(i + 1), d.Day, strconv.Itoa(d.Plays), top})
		}
		return renderTable(out, []string{"#", "Day", "Plays", "Top Track"}, rows)

	case "artists", "tracks":
		var days []analysis.DayCount
		if topDaysBy == "artists" {
			days = analysis.TopDaysByDistinctArtists(events, topDaysNum, loc)
		} else {
			days = analysis.TopDaysByDistinctTracks(events, topDaysNum, loc)
		}
		rows := make([][]string, 0, len(days))
		for i, d := range days {
			rows = append(rows, []string{strconv.Itoa(i + 1), d.Day, strconv.Itoa(d.Plays)})
		}
		header := []string{"#", "Day", "Distinct " + topDaysBy}
		return renderTable(out, header, rows)
	}

	return fmt.Errorf("invalid --by %q: want 'plays', 'artists', or 'tracks'", topDaysBy)
}

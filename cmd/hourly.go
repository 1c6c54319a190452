package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"scrobble-stats/internal/analysis"
)

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Shows listening totals per hour of day",
	Long:  `For each local hour 0-23: total plays plus the most played artist and track in that hour.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printHourly(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(hourlyCmd)
}

func printHourly(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}

	stats := analysis.HourlyTop(events, loc)
	rows := make([][]string, 0, len(stats))
	for _, h := range stats {
		topArtist := ""
		topTrack := ""
		if h.Plays > 0 {
			topArtist = fmt.Sprintf("%s (%d)", h.TopArtist.Key, h.TopArtist.Plays)
			topTrack = fmt.Sprintf("%s — %s (%d)", h.TopTrack.Key.Artist, h.TopTrack.Key.Track, h.TopTrack.Plays)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%02d:00", h.Hour),
			strconv.Itoa(h.Plays),
			topArtist,
			topTrack,
		})
	}
	return renderTable(out, []string{"Hour", "Plays", "Top Artist", "Top Track"}, rows)
}

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
	topTracksNum  int
	topTracksFrom string
	topTracksTo   string
	topTracksBy   string
)

var topTracksCmd = &cobra.Command{
	Use:   "top-tracks",
	Short: "Ranks tracks by play count",
	Long: `Ranks (artist, track) identities by total plays, or with --by peak by the
play count of their single busiest day.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printTopTracks(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topTracksCmd)
	topTracksCmd.Flags().IntVarP(&topTracksNum, "number", "n", 20, "number of results to return")
	topTracksCmd.Flags().StringVar(&topTracksFrom, "from", "", "only count plays at or after this local time ('02 Jan 2006, 15:04')")
	topTracksCmd.Flags().StringVar(&topTracksTo, "to", "", "only count plays at or before this local time ('02 Jan 2006, 15:04')")
	topTracksCmd.Flags().StringVar(&topTracksBy, "by", "plays", "ranking metric: 'plays' or 'peak' (best single day)")
}

func printTopTracks(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}
	rng, err := analysis.ParseRange(topTracksFrom, topTracksTo, loc)
	if err != nil {
		return err
	}
	filtered := analysis.Filter(events, rng, loc)

	switch topTracksBy {
	case "plays":
		ranked := analysis.TopTracks(filtered, topTracksNum)
		rows := make([][]string, 0, len(ranked))
		for i, c := range ranked {
			rows = append(rows, []string{strconv.Itoa(i + 1), c.Key.Artist, c.Key.Track, strconv.Itoa(c.Plays)})
		}
		return renderTable(out, []string{"#", "Artist", "Track", "Plays"}, rows)

	case "peak":
		peaks := analysis.TopTracksByPeakPlays(filtered, topTracksNum, loc)
		rows := make([][]string, 0, len(peaks))
		for i, p := range peaks {
			rows = append(rows, []string{strconv.Itoa(i + 1), p.Key.Artist, p.Key.Track, strconv.Itoa(p.Plays), p.Day})
		}
		return renderTable(out, []string{"#", "Artist", "Track", "Peak Plays", "Peak Day"}, rows)
	}

	return fmt.Errorf("invalid --by %q: want 'plays' or 'peak'", topTracksBy)
}

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
	streaksNum int
	streaksBy  string
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Finds the longest runs of consecutive listening days",
	Long: `For each track, artist, or album: the longest run of consecutive local
calendar days it was played at least once, longest runs first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printStreaks(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(streaksCmd)
	streaksCmd.Flags().IntVarP(&streaksNum, "number", "n", 5, "number of results to return")
	streaksCmd.Flags().StringVar(&streaksBy, "by", "track", "grouping: 'track', 'artist', or 'album'")
}

func printStreaks(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}

	switch streaksBy {
	case "track":
		streaks := analysis.TrackStreaks(events, streaksNum, loc)
		rows := make([][]string, 0, len(streaks))
		for i, s := range streaks {
			rows = append(rows, []string{
				strconv.Itoa(i + 1), s.Key.Artist, s.Key.Track,
				strconv.Itoa(s.Length), s.Start, s.End,
			})
		}
		return renderTable(out, []string{"#", "Artist", "Track", "Days", "From", "To"}, rows)

	case "artist":
		streaks := analysis.ArtistStreaks(events, streaksNum, loc)
		rows := make([][]string, 0, len(streaks))
		for i, s := range streaks {
			rows = append(rows, []string{
				strconv.Itoa(i + 1), s.Key,
				strconv.Itoa(s.Length), s.Start, s.End,
			})
		}
		return renderTable(out, []string{"#", "Artist", "Days", "From", "To"}, rows)

	case "album":
		streaks := analysis.AlbumStreaks(events, streaksNum, loc)
		rows := make([][]string, 0, len(streaks))
		for i, s := range streaks {
			rows = append(rows, []string{
				strconv.Itoa(i + 1), s.Key.Artist, s.Key.Album,
				strconv.Itoa(s.Length), s.Start, s.End,
			})
		}
		return renderTable(out, []string{"#", "Artist", "Album", "Days", "From", "To"}, rows)
	}

	return fmt.Errorf("invalid --by %q: want 'track', 'artist', or 'album'", streaksBy)
}

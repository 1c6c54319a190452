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
	topArtistsNum  int
	topArtistsFrom string
	topArtistsTo   string
)

var topArtistsCmd = &cobra.Command{
	Use:   "top-artists",
	Short: "Ranks artists by play count",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printTopArtists(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)
	topArtistsCmd.Flags().IntVarP(&topArtistsNum, "number", "n", 20, "number of results to return")
	topArtistsCmd.Flags().StringVar(&topArtistsFrom, "from", "", "only count plays at or after this local time ('02 Jan 2006, 15:04')")
	topArtistsCmd.Flags().StringVar(&topArtistsTo, "to", "", "only count plays at or before this local time ('02 Jan 2006, 15:04')")
}

func printTopArtists(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}
	rng, err := analysis.ParseRange(topArtistsFrom, topArtistsTo, loc)
	if err != nil {
		return err
	}

	ranked := analysis.TopArtists(analysis.Filter(events, rng, loc), topArtistsNum)
	rows := make([][]string, 0, len(ranked))
	for i, c := range ranked {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Key, strconv.Itoa(c.Plays)})
	}
	return renderTable(out, []string{"#", "Artist", "Plays"}, rows)
}

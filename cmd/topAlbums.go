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
	topAlbumsNum  int
	topAlbumsFrom string
	topAlbumsTo   string
)

var topAlbumsCmd = &cobra.Command{
	Use:   "top-albums",
	Short: "Ranks albums by play count",
	Long:  `Albums are identified by the exact (artist, album) pair. Plays with no album are not counted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printTopAlbums(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topAlbumsCmd)
	topAlbumsCmd.Flags().IntVarP(&topAlbumsNum, "number", "n", 20, "number of results to return")
	topAlbumsCmd.Flags().StringVar(&topAlbumsFrom, "from", "", "only count plays at or after this local time ('02 Jan 2006, 15:04')")
	topAlbumsCmd.Flags().StringVar(&topAlbumsTo, "to", "", "only count plays at or before this local time ('02 Jan 2006, 15:04')")
}

func printTopAlbums(out io.Writer) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}
	rng, err := analysis.ParseRange(topAlbumsFrom, topAlbumsTo, loc)
	if err != nil {
		return err
	}

	ranked := analysis.TopAlbums(analysis.Filter(events, rng, loc), topAlbumsNum)
	rows := make([][]string, 0, len(ranked))
	for i, c := range ranked {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Key.Artist, c.Key.Album, strconv.Itoa(c.Plays)})
	}
	return renderTable(out, []string{"#", "Artist", "Album", "Plays"}, rows)
}

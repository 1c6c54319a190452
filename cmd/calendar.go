package cmd

import (
	"fmt"
	"html/template"
	"os"

	"github.com/spf13/cobra"

	"scrobble-stats/internal/analysis"
	"scrobble-stats/internal/scrobble"
)

var calendarOutput string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Renders an HTML calendar of each day's most played track",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeCalendar(calendarOutput); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVarP(&calendarOutput, "output", "o", "calendar.html", "output HTML file")
}

type calendarDay struct {
	Date   string
	Artist string
	Track  string
	Plays  int
	Image  string
	URL    string
}

type calendarData struct {
	Days       []calendarDay
	TotalDays  int
	TotalPlays int
}

func writeCalendar(path string) error {
	events, loc, err := loadInput()
	if err != nil {
		return err
	}

	days := analysis.MostPlayedPerDay(events, loc)
	if len(days) == 0 {
		return fmt.Errorf("no plays to render")
	}

	// Artwork and track links come from the raw events; the analysis layer
	// only reports identities and counts.
	meta := make(map[analysis.TrackID]scrobble.Scrobble)
	for _, s := range events {
		id := analysis.TrackID{Artist: s.Artist, Track: s.Track}
		if _, ok := meta[id]; !ok {
			meta[id] = s
		}
	}

	data := calendarData{TotalDays: len(days)}
	for _, d := range days {
		m := meta[d.TopTrack.Key]
		data.Days = append(data.Days, calendarDay{
			Date:   d.Day,
			Artist: d.TopTrack.Key.Artist,
			Track:  d.TopTrack.Key.Track,
			Plays:  d.TopTrack.Plays,
			Image:  m.Image(),
			URL:    m.URL,
		})
		data.TotalPlays += d.Plays
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := calendarTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("rendering calendar: %w", err)
	}
	fmt.Printf("Wrote %s (%d days, %d plays)\n", path, data.TotalDays, data.TotalPlays)
	return nil
}

var calendarTemplate = template.Must(template.New("calendar").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Listening Calendar</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    min-height: 100vh;
    padding: 20px;
  }
  .container { max-width: 1400px; margin: 0 auto; }
  .header { text-align: center; color: white; margin-bottom: 30px; }
  .calendar-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(110px, 1fr));
    gap: 8px;
    margin-bottom: 30px;
  }
  .day-card {
    background: white;
    border-radius: 12px;
    overflow: hidden;
    box-shadow: 0 4px 15px rgba(0,0,0,0.2);
  }
  .day-date {
    background: rgba(0,0,0,0.8);
    color: white;
    padding: 2px 6px;
    font-size: 0.7em;
    font-weight: bold;
  }
  .day-image { width: 100%; height: 90px; object-fit: cover; background: #764ba2; }
  .day-info { padding: 6px; }
  .day-artist {
    font-weight: bold; font-size: 0.75em; color: #333;
    white-space: nowrap; overflow: hidden; text-overflow: ellipsis;
  }
  .day-track {
    font-size: 0.7em; color: #666;
    white-space: nowrap; overflow: hidden; text-overflow: ellipsis;
  }
  .day-plays { font-size: 0.65em; color: #999; text-align: right; }
  .stats {
    background: white; padding: 20px; border-radius: 12px;
    text-align: center; color: #666;
  }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Listening Calendar</h1>
    <p>The most played track of each day</p>
  </div>
  <div class="calendar-grid">
  {{range .Days}}
    <div class="day-card">
      <div class="day-date">{{.Date}}</div>
      {{if .Image}}<img class="day-image" src="{{.Image}}" alt="{{.Track}}">{{end}}
      <div class="day-info">
        <div class="day-artist" title="{{.Artist}}">{{.Artist}}</div>
        <div class="day-track" title="{{.Track}}">
          {{if .URL}}<a href="{{.URL}}">{{.Track}}</a>{{else}}{{.Track}}{{end}}
        </div>
        <div class="day-plays">{{.Plays}} plays</div>
      </div>
    </div>
  {{end}}
  </div>
  <div class="stats">
    <p>Days with listens: <strong>{{.TotalDays}}</strong></p>
    <p>Total plays: <strong>{{.TotalPlays}}</strong></p>
  </div>
</div>
</body>
</html>
`))

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"scrobble-stats/internal/analysis"
	"scrobble-stats/internal/scrobble"
)

var cfgFile string
var dataPath string
var zoneName string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrobble-stats",
	Short: "Analyzes listening patterns in a last.fm scrobble export",
	Long: `Computes top artists, albums and tracks, peak listening days,
hour-of-day distributions, and streaks of consecutive listening days from a
JSON scrobble export.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.scrobble-stats.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&dataPath, "data", "d", "", "scrobble export JSON file, or a directory of scrobbles-*.json files")
	rootCmd.MarkPersistentFlagRequired("data")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	rootCmd.PersistentFlags().StringVarP(
		&zoneName, "timezone", "z", "Local",
		"IANA timezone for day and hour bucketing; the default uses this machine's zone, so results vary across machines")
	viper.BindPFlag("timezone", rootCmd.PersistentFlags().Lookup("timezone"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".scrobble-stats" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".scrobble-stats")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// loadInput reads the configured export and resolves the target timezone.
// Every subcommand goes through here.
func loadInput() ([]scrobble.Scrobble, *time.Location, error) {
	loc, err := analysis.LoadZone(viper.GetString("timezone"))
	if err != nil {
		return nil, nil, err
	}
	events, err := loadScrobbles(viper.GetString("data"))
	if err != nil {
		return nil, nil, err
	}
	return events, loc, nil
}

// loadScrobbles reads one export file, or every scrobbles-*.json file in a
// directory in name order. File order is preserved; ranking tiebreaks depend
// on it.
func loadScrobbles(path string) ([]scrobble.Scrobble, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading data path: %w", err)
	}

	if !info.IsDir() {
		return scrobble.NewLoader(filepath.Dir(path)).LoadFile(path)
	}

	loader := scrobble.NewLoader(path)
	files, err := loader.ListFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scrobbles-*.json files in %s", path)
	}

	var all []scrobble.Scrobble
	for _, f := range files {
		batch, err := loader.LoadFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
	}
	return all, nil
}

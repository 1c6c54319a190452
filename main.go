package main

import "scrobble-stats/cmd"

func main() {
	cmd.Execute()
}

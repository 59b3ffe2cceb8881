package main

import "github.com/pfrederiksen/nba-stats/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/aniqaqill/runners-list-scraper/internal/cli"

func main() {
	cli.Execute()
}

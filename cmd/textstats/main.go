package main

import "textstats/internal/cli"

func main() {
	cli.Execute()
}

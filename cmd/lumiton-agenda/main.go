package main

import "github.com/smazzone/lumiton-agenda/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/wenzapen/scrapekit/cmd"

func main() {
	cmd.Execute()
}

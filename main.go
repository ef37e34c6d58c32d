package main

import "github.com/lofibeats/lofi-cli/cmd"

func main() {
	cmd.Execute()
}

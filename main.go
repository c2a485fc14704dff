package main

import "gamestats/cmd"

func main() {
	cmd.Execute()
}

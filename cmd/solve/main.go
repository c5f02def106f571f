package main

import "nurikabe/cmd/solve/cmd"

func main() {
	cmd.Execute()
}

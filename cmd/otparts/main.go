package main

import "github.com/OpenTraceLab/OpenTraceParts/cmd/otparts/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/OpenTraceLab/switchgen/cmd/switchgen/cmd"

func main() {
	cmd.Execute()
}

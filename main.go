package main

import "github.com/briantroy/rigor/cmd"

func main() {
	cmd.Execute()
}

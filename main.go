package main

import "github.com/ajepson/stavekit/cmd"

func main() {
	cmd.Execute()
}

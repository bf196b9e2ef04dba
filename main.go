package main

import "github.com/elite100/visualizer-go/cmd"

func main() {
	cmd.Execute()
}

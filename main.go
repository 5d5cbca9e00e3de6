package main

import "github.com/iksnae/cursor-archive/cmd"

func main() {
	cmd.Execute()
}

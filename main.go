package main

import "github.com/gitas/gitas/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/thenoetrevino/taskmaster/cmd"

func main() {
	cmd.Execute()
}

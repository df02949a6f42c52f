package main

import "tracksplit/cmd"

func main() {
	cmd.Execute()
}

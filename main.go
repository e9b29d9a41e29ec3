package main

import "htwctl/cmd"

func main() {
	cmd.Execute()
}

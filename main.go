package main

import "github.com/jfmyers9/playlie/cmd"

func main() {
	cmd.Execute()
}

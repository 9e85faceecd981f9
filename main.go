package main

import "github.com/jsphweid/chordprog/cmd"

func main() {
	cmd.Execute()
}

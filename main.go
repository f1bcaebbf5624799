package main

import "github.com/gaurav-prasanna/specpipe/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/Rorical/ContentAnalyzer/cmd"

func main() {
	cmd.Execute()
}

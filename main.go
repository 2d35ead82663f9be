package main

import "github.com/waynemaranga/moment-distribution/cmd"

func main() {
	cmd.Execute()
}

package main

import "requirement-monitor/cmd"

func main() {
	cmd.Execute()
}

package main

import "taskforperks.com/taskforperks/cmd"

func main() {
	cmd.Execute()
}

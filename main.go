package main

import "github.com/schedsim/cpu-scheduler-sim/cmd"

func main() {
	cmd.Execute()
}

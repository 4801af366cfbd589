package main

import "scenarioflow/internal/cli"

func main() {
	cli.Execute()
}

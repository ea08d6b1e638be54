package main

import "martianoff/adt/cmd/adt/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/crystaldolphin/discordmcp/cmd"

func main() {
	cmd.Execute()
}

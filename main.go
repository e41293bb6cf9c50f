package main

import "github.com/obra/pwlaunch/cmd"

func main() {
	cmd.Execute()
}

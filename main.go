package main

import "workforce-manager/cmd"

func main() {
	cmd.Execute()
}

package main

import "place-manager/cmd"

func main() {
	cmd.Execute()
}

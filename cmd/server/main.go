package main

import "github.com/urbangis/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}

package main

import "bookstore/cmd/cli/command"

func main() {
	command.Execute()
}

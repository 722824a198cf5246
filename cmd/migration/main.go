package main

import "telecare-service/cmd/migration/command"

func main() {
	command.Execute()
}

package main

import "github.com/rand32/rand32/cmd/rand32/cmd"

func main() {
	cmd.Execute()
}

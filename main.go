package main

import "github.com/vitadash/vitadash/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/cle-coin/cle/cmd/cled/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/multa-cli/multa/cmd"
)

func main() {
	cmd.Execute()
}

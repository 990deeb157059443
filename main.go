package main

import (
	"github.com/notargets/wquad/cmd"
)

func main() {
	cmd.Execute()
}

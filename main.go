package main

import (
	"os"

	"github.com/yeisme/gitloc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

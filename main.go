package main

import (
	"log"
	"os"

	"github.com/Utility-Gods/uwuify/internal/cli"
	"github.com/Utility-Gods/uwuify/internal/uwu"
)

func main() {
	// RunLoop only comes back on a read or write failure, end of input included.
	if err := cli.RunLoop(os.Stdin, os.Stdout, uwu.New(uwu.DefaultOptions())); err != nil {
		log.Fatal(err)
	}
}

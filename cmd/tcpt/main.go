// Package main enables tcpt to execute as a CLI tool
package main

import (
	"os"

	"github.com/rpollard00/tcpt/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}

// Package main is the greeter built on the ecli option parser.
package main

import (
	"os"

	"github.com/ecli-go/ecli/internal/app"
)

func main() {
	os.Exit(app.Run())
}

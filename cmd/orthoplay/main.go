package main

import (
	"github.com/whyvineet/orthoplay-go/internal/cli"
)

func main() {
	cli.Execute()
}

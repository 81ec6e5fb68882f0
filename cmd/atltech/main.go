package main

import "github.com/khendrix/atltech/internal/cli"

func main() {
	cli.Execute()
}

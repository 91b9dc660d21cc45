package main

import "github.com/mvp-joe/grrs/internal/cli"

func main() {
	cli.Execute()
}

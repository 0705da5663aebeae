package main

import "github.com/IhorStoiko/Projekt/internal/cli"

func main() {
	cli.Execute()
}

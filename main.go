package main

import "glossary-extractor/internal/cli"

func main() {
	cli.Execute()
}

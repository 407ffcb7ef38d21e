package main

import "github.com/forPelevin/tsvreport/internal/cli"

func main() { cli.Main() }

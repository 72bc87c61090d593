package main

import (
	"tsteg/internal/cli"
)

func main() {
	cli.Execute()
}

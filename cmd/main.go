package main

import (
	cmd "github.com/devcircle/hub/cmd/hub"
)

func main() {
	cmd.Execute()
}

package main

import "github.com/stuttgart-things/sdm/cmd"

func main() {
	cmd.Execute()
}

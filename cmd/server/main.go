package main

import "github.com/nfrund/folio/cmd/server/cmd"

func main() {
	cmd.Execute()
}

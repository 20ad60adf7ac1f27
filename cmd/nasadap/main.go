// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/nasadap/cmd/nasadap/cmd"
)

func main() {
	cmd.Execute()
}

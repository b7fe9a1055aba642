package main

import (
	"log"

	"github.com/templer/templer/cli/cmd"
	"github.com/templer/templer/cli/util"
	"github.com/templer/templer/cli/version"
)

func main() {
	defer func() {
		// In case the program panics, recover captures the value given
		// to panic and reports it as an internal error.
		if r := recover(); r != nil {
			log.Fatalf(
				"%s", util.InternalError("Unhandled internal error: %s",
					version.GetVersion, r))
		}
	}()

	cmd.Execute()
}

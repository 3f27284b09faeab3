package main

import (
	"os"

	"github.com/sccache-tools/sccache-dist-check/cmd"
	log "github.com/sirupsen/logrus"
)

func main() {
	err := cmd.Execute()
	if err != nil {

		log.WithError(err).Fatal("diagnosis did not pass. exiting")
		os.Exit(1)
	}
}

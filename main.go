package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

var Version string

func setupLogging() {
	// Create or open the error log file
	logFile, err := os.OpenFile("dqlab.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Println("Failed to open error log file:", err)
		return
	}

	log.SetOutput(logFile)

	log.SetLevel(log.InfoLevel)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	setupLogging()
	cli := &Cli{}
	if err := cli.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

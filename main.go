package main

import (
	"audio2score/cmd"
	"fmt"
	"os"
)

// @title Audio2Score API
// @version 1.0.0
// @description Converts MP3 and WAV recordings into MIDI files and keeps a per-user library of the results.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}

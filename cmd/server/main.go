package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const releaseVersion = "0.1.0"

func main() {
	log.SetFlags(0)

	// Local overrides; absence is fine
	_ = godotenv.Load()

	cfg := &config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/dalia/internal/adapters/configparsing"
	"github.com/AntonioJCosta/dalia/internal/core/services/aliasgeneration"
	"github.com/AntonioJCosta/dalia/internal/handlers/cli"
	"github.com/AntonioJCosta/dalia/internal/handlers/ui"
	"github.com/AntonioJCosta/dalia/internal/repositories/configfile"
	"github.com/AntonioJCosta/dalia/internal/repositories/filesystem"
	"github.com/sirupsen/logrus"
)

// Version is set at build time
var Version = "dev"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	homeDir, err := filesystem.HomeDir()
	if err != nil {
		// Paths starting with ~ are then left unexpanded when listing directories.
		log.WithError(err).Warn("Could not determine the home directory")
		homeDir = ""
	}

	configSource, err := configfile.NewReader()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error initializing configuration reader: %v", err)))
		os.Exit(1)
	}

	dirLister := filesystem.NewDirectoryLister(homeDir, log)
	configParser := configparsing.NewAliasConfigParser(dirLister)

	aliasSvc := aliasgeneration.NewService(configSource, configParser, log)
	rootCmd := cli.NewRootCommand(Version, aliasSvc, log)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor("dalia: "+err.Error()))
		os.Exit(1)
	}
}

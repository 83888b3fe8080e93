package main

import (
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/echelon/internal/config"
	"github.com/katalvlaran/echelon/internal/lab"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("matrixlab: ")

	cfg, err := lab.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := lab.Run(cfg, os.Stdout, log.Default()); err != nil {
		log.Fatalf("run: %v", err)
	}
}

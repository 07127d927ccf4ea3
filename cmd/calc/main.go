// Command calc computes the catch-rate table for the configured species
// and prints it to stdout. With no flags it uses the compiled-in
// constants; -config points it at a directory of yaml overrides.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sdw5180/catch-calc/internal/catch"
	"github.com/sdw5180/catch-calc/internal/config"
	"github.com/sdw5180/catch-calc/internal/report"
)

func main() {
	log.SetFlags(0)

	configDir := flag.String("config", "", "config directory (optional)")
	species := flag.String("species", "", "species config file to overlay (optional)")
	flag.Parse()

	loader := config.NewLoader(*configDir)
	_, params, err := loader.Resolve(*species, config.Overrides{})
	if err != nil {
		log.Fatalf("resolve config: %v", err)
	}

	table, err := catch.ComputeTable(params)
	if err != nil {
		log.Fatalf("compute table: %v", err)
	}

	fmt.Fprint(os.Stdout, report.Render(table))
	fmt.Println()
}

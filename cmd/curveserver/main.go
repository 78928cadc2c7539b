// Command curveserver exposes pkg/core/curve over HTTP via
// pkg/api/curve, grounded on the teacher repo's cmd/api wiring style:
// godotenv.Load() for optional local config, an optional YAML
// convention-book override, then plain http.HandleFunc routes.
package main

import (
	"flag"
	"log"
	"net/http"

	apicurve "curveboot/pkg/api/curve"
	"curveboot/pkg/core/convention"
	"curveboot/pkg/core/curveconfig"

	"github.com/joho/godotenv"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	overridesPath := flag.String("conventions", "config/conventions.yaml", "optional YAML file of extra currency conventions")
	flag.Parse()

	godotenv.Load()
	curveconfig.Load()

	if err := convention.LoadOverrides(*overridesPath); err != nil {
		log.Printf("[curveserver] WARNING: failed to load convention overrides: %v", err)
	}

	http.HandleFunc("/api/curve/bootstrap", apicurve.HandleBootstrap)
	http.HandleFunc("/api/curve/export", apicurve.HandleExport)

	log.Printf("[curveserver] listening on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatalf("[curveserver] server error: %v", err)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-keycore/internal/keyctl"
	"github.com/MKhiriev/go-pass-keycore/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := keyctl.NewRootCommand(info).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

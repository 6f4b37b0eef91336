// Where: cmd/refresh/main.go
// What: CLI entrypoint.
// Why: Run the refresh pipeline with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/hawkeyetwolf/ddev-refresh/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}

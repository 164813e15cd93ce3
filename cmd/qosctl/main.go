// qosctl resolves and inspects QoS parameter overrides.
//
// Usage:
//
//	qosctl resolve -topic /chatter -entity publisher [flags]
//	qosctl check -overrides overrides.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run is the entrypoint, split out for testing.
func Run(args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewJSONHandler(stderr, nil))

	if len(args) < 2 {
		usage(stderr)
		return 1
	}

	switch args[1] {
	case "resolve":
		return runResolveCmd(args[2:], stdout, logger)
	case "check":
		return runCheckCmd(args[2:], stdout, logger)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[1])
		usage(stderr)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `qosctl - QoS parameter override tooling

Commands:
  resolve   declare overrides for an endpoint and print the resolved profile
  check     validate an override file and list the parameters it sets`)
}

package run

import (
	"fmt"
	"path/filepath"
	"strings"

	"testctl/internal/config"
)

// For mocking in tests
var filepathAbs = filepath.Abs

// containerize wraps a resolved local invocation in a `docker run` command.
// The artifact root is bind-mounted into the container and the child
// environment pairs are forwarded with -e, token by token.
func containerize(inv Invocation, req RunRequest, cfg config.Config) (Invocation, error) {
	absOutput, err := filepathAbs(req.OutputDir)
	if err != nil {
		return Invocation{}, fmt.Errorf("failed to resolve artifact root %s: %w", req.OutputDir, err)
	}

	workdir := cfg.Docker.Workdir
	if workdir == "" {
		workdir = "/work"
	}

	args := []string{"run", "--rm",
		"-v", fmt.Sprintf("%s:%s", absOutput, filepath.Join(workdir, "test-results")),
		"-w", workdir,
	}
	for _, pair := range inv.Env {
		// Inside the container the artifacts land on the mount point, not
		// the host path.
		if strings.HasPrefix(pair, "TEST_RESULTS_DIR=") {
			pair = "TEST_RESULTS_DIR=" + filepath.Join(workdir, "test-results")
		}
		args = append(args, "-e", pair)
	}
	args = append(args, cfg.Docker.Image)
	args = append(args, inv.Program)
	args = append(args, inv.Args...)

	return Invocation{
		Program: "docker",
		Args:    args,
		// Env pairs were forwarded with -e; docker itself needs nothing extra.
		Venue: VenueDocker,
	}, nil
}

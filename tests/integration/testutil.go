// Package integration exercises profilectl end to end: catalog loading,
// specification validation, update authorization, and support status
// resolution through the CLI command surface.
package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dukaforge/profilekit/internal/cli"
)

// runCLI executes profilectl in-process with the given arguments and
// returns captured stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile writes content under dir and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// novaServerDecl is an extra declaration used to exercise schema-dir
// loading alongside the builtin catalog.
const novaServerDecl = `
type_name: os.nova.server
schema:
  flavor:
    type: String
    required: true
    updatable: true
    description: Flavor to use for the server.
  image:
    type: String
    updatable: true
    description: Image to boot the server from.
  metadata:
    type: Map
    default: {}
    updatable: true
    description: Metadata key-value pairs attached to the server.
support_status:
  "1.0":
    - {status: SUPPORTED, since: "2016.04"}
    - {status: DEPRECATED, since: "2017.10"}
`

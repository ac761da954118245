package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// runCLI executes the root command against fs and returns what it wrote.
func runCLI(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := NewRootCommandWithFs(fs)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	var in io.Reader = strings.NewReader(stdin)
	cmd.SetIn(in)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

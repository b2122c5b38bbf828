package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obskit/tempo"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(Report{ISO: "1970-01-01T00:00:00.000000000Z"})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	_, parseErr := tempo.Parse("nonsense")
	require.Error(t, parseErr)
	require.NoError(t, formatter.Error(parseErr))

	var resp CLIResponse
	err := json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PARSE_ERROR", resp.Error.Code)
	assert.Equal(t, "nonsense", resp.Error.Input)
}

func TestOutputFormatter_JSONForeignError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	require.NoError(t, formatter.Error(errors.New("disk on fire")))

	var resp CLIResponse
	err := json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "COMMAND_ERROR", resp.Error.Code)
	assert.Equal(t, "disk on fire", resp.Error.Message)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("41 entries")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "41 entries")
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	_, parseErr := tempo.Parse("nonsense")
	require.NoError(t, formatter.Error(parseErr))
	assert.Contains(t, buf.String(), "Error [PARSE_ERROR]")
	assert.NotContains(t, buf.String(), "Input:")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	_, parseErr := tempo.Parse("nonsense")
	require.NoError(t, formatter.Error(parseErr))
	assert.Contains(t, buf.String(), "Error [PARSE_ERROR]")
	assert.Contains(t, buf.String(), "Input: nonsense")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:  "text",
				Writer:  buf,
				Verbose: tt.verbose,
			}

			formatter.VerboseLog("merging %s", "announced.yaml")

			if tt.wantLog {
				assert.Contains(t, buf.String(), "merging announced.yaml")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestOutputFormatter_VerboseLogUsesErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "json",
		Writer:    out,
		ErrWriter: errBuf,
		Verbose:   true,
	}

	formatter.VerboseLog("diagnostic")
	assert.Empty(t, out.String(), "diagnostics must not corrupt JSON output")
	assert.Contains(t, errBuf.String(), "diagnostic")
}

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitCommandError, "bad flags")
	assert.Equal(t, "bad flags", plain.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(plain))

	cause := errors.New("no such file")
	wrapped := WrapExitError(ExitCommandError, "cannot read leap file", cause)
	assert.Equal(t, "cannot read leap file: no such file", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)

	// Rewrapping preserves the code through the chain.
	chained := fmt.Errorf("running leaps: %w", wrapped)
	assert.Equal(t, ExitCommandError, GetExitCode(chained))

	// Non-exit errors default to failure.
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("anything")))
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tally/internal/display"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
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

	err := formatter.Error(CodeUnknownKey, `decode "q": unknown key`, map[string]string{"key": "q"})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeUnknownKey, resp.Error.Code)
	assert.Equal(t, `decode "q": unknown key`, resp.Error.Message)
	assert.NotNil(t, resp.Error.Details)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success("All sessions verified")
	require.NoError(t, err)
	assert.Equal(t, "All sessions verified\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error("E_UNKNOWN_KEY", "unknown key", nil)
	require.NoError(t, err)
	assert.Equal(t, "Error [E_UNKNOWN_KEY]: unknown key\n", buf.String())
}

func TestOutputFormatter_ScreenText(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Screen(display.Screen{Result: "12", History: "12 +"}, ""))
	assert.Equal(t, "12 +\n12\n", buf.String())

	buf.Reset()
	require.NoError(t, formatter.Screen(display.Screen{Result: "1,024"}, ""))
	assert.Equal(t, "1,024\n", buf.String())
}

func TestOutputFormatter_ScreenJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	screen := display.Screen{Result: "12,345,678,901", Tier: display.TierSmall}
	require.NoError(t, formatter.Screen(screen, "session-1"))

	var resp struct {
		Status    string     `json:"status"`
		Data      ScreenView `json:"data"`
		SessionID string     `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "session-1", resp.SessionID)
	assert.Equal(t, ScreenView{Result: "12,345,678,901", Tier: "small", FontSize: "32px"}, resp.Data)
}

func TestExitError(t *testing.T) {
	inner := errors.New("disk full")
	err := WrapExitError(ExitCommandError, "failed to open tape", inner)

	assert.Equal(t, "failed to open tape: disk full", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "determinism verification failed", NewExitError(ExitFailure, "determinism verification failed").Error())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitFailure, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitFailure, "failed"))))
}

package cliapp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/better-ecosystem/better-shell/internal/shellerr"
)

func TestUnquoteCommandStripsQuotes(t *testing.T) {
	text, err := unquoteCommand(`"echo hi"`)
	assert.Nil(t, err)
	assert.Equal(t, "echo hi", text)
}

func TestUnquoteCommandRejectsMissingOpenQuote(t *testing.T) {
	_, err := unquoteCommand(`echo hi"`)
	if assert.NotNil(t, err) {
		assert.Equal(t, shellerr.NoParameter, err.Kind)
	}
}

func TestUnquoteCommandRejectsMissingCloseQuote(t *testing.T) {
	_, err := unquoteCommand(`"echo hi`)
	if assert.NotNil(t, err) {
		assert.Equal(t, shellerr.UnclosedQuote, err.Kind)
	}
}

func TestExitCodeExtraction(t *testing.T) {
	code, ok := ExitCode(&ExitError{Code: 22})
	assert.True(t, ok)
	assert.Equal(t, 22, code)

	_, ok = ExitCode(assert.AnError)
	assert.False(t, ok)
}

package diagnostic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskYesNoDefaultOnEmpty(t *testing.T) {
	var out bytes.Buffer
	a := TerminalAsker{In: strings.NewReader("\n"), Out: &out}
	assert.True(t, a.AskYesNo("ok?", true))
	assert.Contains(t, out.String(), "[Y/n]")
}

func TestAskYesNoExplicitNo(t *testing.T) {
	var out bytes.Buffer
	a := TerminalAsker{In: strings.NewReader("n\n"), Out: &out}
	assert.False(t, a.AskYesNo("ok?", true))
}

func TestAskYesNoReprompts(t *testing.T) {
	var out bytes.Buffer
	a := TerminalAsker{In: strings.NewReader("bogus\ny\n"), Out: &out}
	assert.True(t, a.AskYesNo("ok?", false))
}

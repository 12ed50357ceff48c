package shellerr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportWithContext(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, "cd", "HOME not set")
	assert.Equal(t, "minishell: cd: HOME not set\n", buf.String())
}

func TestReportWithoutContext(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, "", "syntax error")
	assert.Equal(t, "minishell: syntax error\n", buf.String())
}

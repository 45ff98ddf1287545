package cmdutil

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, Report{
		Created:   []string{"out/auth.py", "out/auth_requirements.txt"},
		Headline:  "Authentication scaffolding added successfully!",
		Details:   [][2]string{{"Database type", "sqlite"}},
		NextSteps: []string{"1. Install dependencies:"},
	})

	out := buf.String()
	assert.Contains(t, out, "out/auth.py")
	assert.Contains(t, out, "out/auth_requirements.txt")
	assert.Contains(t, out, "Authentication scaffolding added successfully!")
	assert.Contains(t, out, "Database type: sqlite")
	assert.Contains(t, out, "Next steps:")
	assert.Contains(t, out, "  1. Install dependencies:")
}

func TestResolveString(t *testing.T) {
	newCmd := func() (*cobra.Command, *string) {
		var v string
		c := &cobra.Command{Use: "x"}
		c.Flags().StringVar(&v, "addr", "", "")
		return c, &v
	}

	c, v := newCmd()
	assert.Equal(t, "def", ResolveString(c, "addr", *v, "", "def"))
	assert.Equal(t, "cfg", ResolveString(c, "addr", *v, "cfg", "def"))

	c, v = newCmd()
	c.SetArgs([]string{"--addr", "flag"})
	c.RunE = func(*cobra.Command, []string) error { return nil }
	assert.NoError(t, c.Execute())
	assert.Equal(t, "flag", ResolveString(c, "addr", *v, "cfg", "def"))
}

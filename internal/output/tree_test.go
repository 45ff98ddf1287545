package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("demo", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderPathTree("demo", []string{
		"main.py",
		"routers/items.py",
		"routers/__init__.py",
		"README.md",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "demo/")
	assert.Equal(t, "├── routers/", lines[1])
	assert.Equal(t, "│   ├── __init__.py", lines[2])
	assert.Equal(t, "│   └── items.py", lines[3])
	assert.Equal(t, "├── README.md", lines[4])
	assert.Equal(t, "└── main.py", lines[5])
}

func TestRenderFileTree_Descriptions(t *testing.T) {
	out := RenderFileTree("routers", map[string]string{"auth.py": "JWT auth router"})
	assert.Contains(t, out, "└── auth.py")
	assert.Contains(t, out, "JWT auth router")
}

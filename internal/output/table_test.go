package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_RendersHeadersAndRows(t *testing.T) {
	out := NewTable("NAME", "DESCRIPTION").
		Row("hello-world", "Basic FastAPI application").
		Row("rest-api", "REST API with database integration").
		String()

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "hello-world")
	assert.Contains(t, out, "REST API with database integration")
}

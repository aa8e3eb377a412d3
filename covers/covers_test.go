package covers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "legal", r.Resolve("Legal", ""))
	assert.Equal(t, "contabilidad", r.Resolve("Contabilidad", ""))

	// Unknown departments use the fallback instead of guessing a filename.
	assert.Equal(t, Default, r.Resolve("Ventas", ""))

	// A per-department override always wins.
	assert.Equal(t, "custom_legal", r.Resolve("Legal", "custom_legal"))
	assert.Equal(t, "custom", r.Resolve("Ventas", "custom"))
}

func TestRegisterReplacesEntry(t *testing.T) {
	r := NewRegistry()
	r.Register("Ventas", "ventas")
	r.Register("Legal", "legal_v2")

	assert.Equal(t, "ventas", r.Resolve("Ventas", ""))
	assert.Equal(t, "legal_v2", r.Resolve("Legal", ""))
}

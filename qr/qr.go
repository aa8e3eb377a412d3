package qr

import (
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator writes one PNG per box display id under a fixed directory. A
// label is rendered once and reused from disk afterwards.
type Generator struct {
	Dir string
}

func NewGenerator(dir string) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Generator{Dir: dir}, nil
}

// Ensure returns the PNG path for displayID, rendering it if absent.
func (g *Generator) Ensure(displayID string) (string, error) {
	path := filepath.Join(g.Dir, displayID+".png")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := qrcode.WriteFile(displayID, qrcode.Medium, 256, path); err != nil {
		return "", err
	}
	return path, nil
}

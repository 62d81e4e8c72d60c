package qr

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"commission-tracker/internal/pkg/errs"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize   = 300
	dataURLPrefix = "data:image/png;base64,"
)

var ErrEmptyContent = errs.New("qr content is empty")

type Code struct {
	DataURL string
	Hash    string
}

type Generator struct {
	size  int
	level qrcode.RecoveryLevel
}

func NewGenerator() *Generator {
	return &Generator{size: defaultSize, level: qrcode.Medium}
}

// Generate renders content as a PNG data URL; Hash is the hex sha256 of that URL.
func (g *Generator) Generate(content string) (Code, error) {
	if content == "" {
		return Code{}, ErrEmptyContent
	}

	png, err := qrcode.Encode(content, g.level, g.size)
	if err != nil {
		return Code{}, err
	}

	dataURL := dataURLPrefix + base64.StdEncoding.EncodeToString(png)
	sum := sha256.Sum256([]byte(dataURL))

	return Code{DataURL: dataURL, Hash: hex.EncodeToString(sum[:])}, nil
}

package filemgr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"provender/utils"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	RecipePicDir = "./static/recipepic"

	// DefaultRecipeImage is served when a recipe has no image of its own.
	DefaultRecipeImage = "/static/recipepic/default.png"
)

// SaveBase64Image decodes a base64-encoded image (optionally a data URI),
// re-encodes it as JPEG under RecipePicDir alongside a 300px-wide
// thumbnail, and returns the public path of the saved image.
func SaveBase64Image(encoded string) (string, error) {
	if idx := strings.Index(encoded, "base64,"); idx >= 0 {
		encoded = encoded[idx+len("base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GenerateID("", 16)
	fileName := uniqueID + ".jpg"

	if err := os.MkdirAll(RecipePicDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	thumbDir := filepath.Join(RecipePicDir, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(RecipePicDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/recipepic/" + fileName, nil
}

package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-trade-journal/models"
)

// readImage loads a screenshot file as a data URL. Only files whose
// extension maps to an image/* type are accepted.
func readImage(path string) (models.NewImage, error) {
	mediaType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mediaType, _, _ = strings.Cut(mediaType, ";"); !strings.HasPrefix(mediaType, "image/") {
		return models.NewImage{}, fmt.Errorf("%s: not an image file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.NewImage{}, err
	}

	return models.NewImage{
		Name:    filepath.Base(path),
		DataURL: "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

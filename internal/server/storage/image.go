package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"

	// регистрация декодеров для image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// ImageInfo: результат проверки загруженного файла.
type ImageInfo struct {
	Format      string // jpeg|png|gif
	Ext         string // расширение по формату, например ".jpg"
	ContentType string
	Width       int
	Height      int
}

var formats = map[string]struct{ ext, contentType string }{
	"jpeg": {".jpg", "image/jpeg"},
	"png":  {".png", "image/png"},
	"gif":  {".gif", "image/gif"},
}

// extAliases: допустимые расширения имени файла для каждого формата.
var extAliases = map[string][]string{
	".jpg": {".jpg", ".jpeg"},
	".png": {".png"},
	".gif": {".gif"},
}

func sameFormat(ext, formatExt string) bool {
	for _, a := range extAliases[formatExt] {
		if ext == a {
			return true
		}
	}
	return false
}

// DetectImage проверяет, что data декодируется как изображение.
//
// Возвращает ErrInvalidImage для пустых, повреждённых и неподдерживаемых файлов.
func DetectImage(data []byte) (ImageInfo, error) {
	if len(data) == 0 {
		return ImageInfo{}, serr.ErrInvalidImage
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("%w: %v", serr.ErrInvalidImage, err)
	}
	f, ok := formats[format]
	if !ok {
		return ImageInfo{}, serr.ErrInvalidImage
	}
	return ImageInfo{
		Format:      format,
		Ext:         f.ext,
		ContentType: f.contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// ReadLimited читает не больше limit байт; при превышении возвращает ErrImageTooLarge.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, serr.ErrImageTooLarge
	}
	return data, nil
}

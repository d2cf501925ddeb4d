// Package storage хранит загруженные изображения рецептов.
//
// Поддерживаются два бэкенда: локальный каталог (раздаётся сервером по /media/)
// и S3-совместимое хранилище (AWS S3, MinIO). Пути внутри хранилища всегда
// генерируются сервером, имя файла от клиента не используется.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// RecipeImageDir: каталог изображений рецептов внутри хранилища.
const RecipeImageDir = "uploads/recipe"

// ImageStore: хранилище файлов изображений.
type ImageStore interface {
	// Save записывает содержимое r по пути p.
	Save(ctx context.Context, p string, r io.Reader, size int64, contentType string) error
	// Delete удаляет файл; отсутствие файла не ошибка.
	Delete(ctx context.Context, p string) error
	// URL возвращает публичный адрес файла.
	URL(p string) string
}

// RecipeImagePath строит путь uploads/recipe/<id><ext>.
//
// От исходного имени остаётся только расширение (в нижнем регистре), и только
// если оно соответствует формату, определённому по содержимому (formatExt из
// ImageInfo.Ext). В остальных случаях используется formatExt: файл evil.html
// с содержимым GIF сохраняется как .gif.
func RecipeImagePath(filename string, newID func() string, formatExt string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(filename, "\\", "/")))
	if !sameFormat(ext, formatExt) {
		ext = formatExt
	}
	return path.Join(RecipeImageDir, newID()+ext)
}

// NewRecipeImagePath: RecipeImagePath со случайным UUID.
func NewRecipeImagePath(filename, formatExt string) string {
	return RecipeImagePath(filename, uuid.NewString, formatExt)
}

// cleanKey нормализует путь и запрещает выход за корень хранилища.
func cleanKey(p string) (string, error) {
	key := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))[1:]
	if key == "" || key == "." {
		return "", fmt.Errorf("storage: empty path")
	}
	return key, nil
}

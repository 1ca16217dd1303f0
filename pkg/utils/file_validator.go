package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"slices"

	"github.com/gabriel-vasile/mimetype"

	"service-tasks/config"
)

// ValidateFile проверяет размер и реальный тип содержимого файла.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) (string, error) {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return "", fmt.Errorf("неизвестный контекст загрузки: %s", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return "", fmt.Errorf("размер файла (%d KB) превышает лимит в %d MB", fileHeader.Size/1024, rules.MaxSizeMB)
		}
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать файл для определения типа")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("не удалось сбросить указатель файла")
	}

	for m := mtype; m != nil; m = m.Parent() {
		if slices.Contains(rules.AllowedMimeTypes, m.String()) {
			return mtype.String(), nil
		}
	}
	return "", fmt.Errorf("недопустимый тип файла: %s", mtype.String())
}

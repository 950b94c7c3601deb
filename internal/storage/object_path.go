package storage

import (
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

func sanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			builder.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			builder.WriteByte(ch + 32)
		case ch == '-', ch == '_':
			builder.WriteByte(ch)
		}
	}
	return builder.String()
}

func normalizeExtension(ext string) string {
	trimmed := strings.TrimSpace(ext)
	trimmed = strings.TrimPrefix(trimmed, ".")
	if trimmed == "" {
		return "bin"
	}
	return sanitizePathSegment(trimmed)
}

// ExtensionOf extracts the extension (without the dot) from an original
// filename so stored assets keep the type the client uploaded.
func ExtensionOf(filename string) string {
	return strings.TrimPrefix(path.Ext(strings.TrimSpace(filename)), ".")
}

// buildObjectPath produces a collision-free relative key. Without an
// explicit base name it combines a random token with a nanosecond timestamp.
func buildObjectPath(category, baseName, ext string) string {
	now := time.Now().UTC()
	category = sanitizePathSegment(category)
	if category == "" {
		category = "misc"
	}
	normalizedExt := normalizeExtension(ext)
	base := sanitizeFileBase(baseName)
	if base == "" {
		token := strings.ReplaceAll(uuid.NewString(), "-", "")
		base = fmt.Sprintf("%s_%d", token, now.UnixNano())
	}
	datedir := fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day())
	filename := fmt.Sprintf("%s.%s", base, normalizedExt)
	return path.Join(category, datedir, filename)
}

func detectContentType(ext string) string {
	normalized := normalizeExtension(ext)
	typeName := mime.TypeByExtension("." + normalized)
	if typeName == "" {
		return "application/octet-stream"
	}
	return typeName
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func sanitizeFileBase(value string) string {
	replaced := strings.ReplaceAll(strings.TrimSpace(value), " ", "-")
	sanitized := sanitizePathSegment(replaced)
	return strings.Trim(sanitized, "-_")
}

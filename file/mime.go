package file

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// extensionToMIME covers the common extensions so that MIME detection does
// not depend on the host's mime database for everyday types.
var extensionToMIME = map[string]string{
	".txt":  "text/plain",
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".json": "application/json",
	".xml":  "application/xml",
	".csv":  "text/csv",
	".md":   "text/markdown",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
	".mp3":  "audio/mpeg",
	".ogg":  "audio/ogg",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
}

// MimeType determines the MIME type of the file at path: first from its
// extension, then by sniffing the leading bytes of its content, and finally
// via the host's mime database. Falls back to "application/octet-stream".
// Returns [ErrNotFound] (wrapped) when the file does not exist.
func MimeType(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return "", pathErr("mime", path, err)
	}
	defer f.Close()

	if mt, ok := extensionToMIME[ext]; ok {
		return mt, nil
	}

	// http.DetectContentType needs at most 512 bytes.
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", pathErr("mime", path, err)
	}
	if n > 0 {
		if mt := http.DetectContentType(buf[:n]); mt != "application/octet-stream" {
			return mt, nil
		}
	}

	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt, nil
	}
	return "application/octet-stream", nil
}

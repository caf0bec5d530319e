package classify

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// mime 分组
const (
	GroupText     = "text"
	GroupImage    = "image"
	GroupAudio    = "audio"
	GroupVideo    = "video"
	GroupFont     = "font"
	GroupArchive  = "archive"
	GroupData     = "data"
	GroupDocument = "document"
	GroupBinary   = "binary"
)

var archiveTypes = map[string]bool{
	"application/zip":              true,
	"application/gzip":             true,
	"application/x-tar":            true,
	"application/x-7z-compressed":  true,
	"application/x-rar-compressed": true,
	"application/x-bzip2":          true,
	"application/x-xz":             true,
	"application/zstd":             true,
	"application/java-archive":     true,
	"application/vnd.rar":          true,
}

var dataTypes = map[string]bool{
	"application/json":        true,
	"application/xml":         true,
	"application/x-ndjson":    true,
	"application/geo+json":    true,
	"application/vnd.sqlite3": true,
	"application/x-sqlite3":   true,
}

var documentTypes = map[string]bool{
	"application/pdf":      true,
	"application/msword":   true,
	"application/rtf":      true,
	"application/epub+zip": true,
}

// sniffGroup 嗅探内容的 mime 类型并归并到分组，空内容返回 Unknown
func sniffGroup(content []byte) string {
	if len(content) == 0 {
		return Unknown
	}
	return mimeGroup(mimetype.Detect(content).String())
}

// mimeGroup 把完整的 mime 类型（可带参数）归并到分组
func mimeGroup(mtype string) string {
	mtype, _, _ = strings.Cut(mtype, ";")
	mtype = strings.ToLower(strings.TrimSpace(mtype))
	top, sub, _ := strings.Cut(mtype, "/")

	switch top {
	case "text":
		return GroupText
	case "image":
		return GroupImage
	case "audio":
		return GroupAudio
	case "video":
		return GroupVideo
	case "font":
		return GroupFont
	}

	switch {
	case archiveTypes[mtype]:
		return GroupArchive
	case documentTypes[mtype], strings.HasPrefix(sub, "vnd.openxmlformats"), strings.HasPrefix(sub, "vnd.oasis.opendocument"):
		return GroupDocument
	case dataTypes[mtype], strings.HasSuffix(sub, "+json"), strings.HasSuffix(sub, "+xml"):
		return GroupData
	case strings.HasPrefix(sub, "font-") || strings.HasPrefix(sub, "x-font"):
		return GroupFont
	}
	return GroupBinary
}

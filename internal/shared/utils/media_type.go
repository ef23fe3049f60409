package utils

// Accepted upload content types. Anything else is rejected at the handler.
var imageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var videoContentTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/x-msvideo": true,
	"video/webm":      true,
}

// MediaTypeFromContentType maps an upload MIME type to "image" or "video".
// Returns ok=false for unsupported types.
func MediaTypeFromContentType(contentType string) (string, bool) {
	if imageContentTypes[contentType] {
		return "image", true
	}
	if videoContentTypes[contentType] {
		return "video", true
	}
	return "", false
}

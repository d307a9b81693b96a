package validators

import "net/http"

// iconTypes maps the sniffed content types accepted for profile icons to
// the extension of their blob key. Only raster formats are listed: SVG and
// HTML can carry script.
var iconTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// IconType sniffs body and returns its content type and blob key extension.
// ok is false when the body is not one of the accepted image formats.
func IconType(body []byte) (contentType, ext string, ok bool) {
	contentType = http.DetectContentType(body)
	ext, ok = iconTypes[contentType]
	return contentType, ext, ok
}

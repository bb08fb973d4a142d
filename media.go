package diffconv

import "encoding/base64"

// MediaType tags the content of an Image.
type MediaType int

// Media types.
const (
	MediaTypeText MediaType = iota // fallback for unrecognized extensions
	MediaTypePNG
	MediaTypeJPEG
	MediaTypeGIF
)

// MIME returns the MIME type string for the tag.
func (m MediaType) MIME() string {
	switch m {
	case MediaTypePNG:
		return "image/png"
	case MediaTypeJPEG:
		return "image/jpeg"
	case MediaTypeGIF:
		return "image/gif"
	default:
		return "text/plain"
	}
}

// MediaTypeFor maps a dot-prefixed file extension to a MediaType. The match
// is byte-exact: ".PNG" is not recognized, only the lowercase forms git
// images conventionally carry. Anything unrecognized falls back to
// MediaTypeText.
func MediaTypeFor(ext string) MediaType {
	switch ext {
	case ".png":
		return MediaTypePNG
	case ".jpg", ".jpeg":
		return MediaTypeJPEG
	case ".gif":
		return MediaTypeGIF
	default:
		return MediaTypeText
	}
}

// Image is one side of an image comparison: base64-encoded content plus its
// media type, ready to embed as a data reference.
type Image struct {
	Data      string // base64, standard encoding
	MediaType MediaType
}

// NewImage encodes raw content into an Image with the given media type.
func NewImage(content []byte, mt MediaType) Image {
	return Image{
		Data:      base64.StdEncoding.EncodeToString(content),
		MediaType: mt,
	}
}

// DataURI returns the image as a data: URI suitable for direct display.
func (img Image) DataURI() string {
	return "data:" + img.MediaType.MIME() + ";base64," + img.Data
}

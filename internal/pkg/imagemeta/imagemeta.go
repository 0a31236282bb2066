package imagemeta

import (
	"bytes"
	"fmt"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Info carries what the pipeline could learn about an uploaded image. Any
// field may be zero; extraction is best-effort and never blocks an upload.
type Info struct {
	Width   int
	Height  int
	TakenAt *time.Time
}

// Inspect decodes image dimensions and, when EXIF data is present, the
// capture time.
func Inspect(data []byte) Info {
	var info Info

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.Info(fmt.Sprintf("could not decode image for inspection: %v", err))
		return info
	}
	bounds := img.Bounds()
	info.Width = bounds.Dx()
	info.Height = bounds.Dy()

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		// Plenty of images carry no EXIF block; that is not an error.
		return info
	}
	if dt, err := x.DateTime(); err == nil {
		info.TakenAt = &dt
	}

	return info
}

// ThumbnailWebP renders a WebP thumbnail that fits within maxEdge on the
// longer side, preserving aspect ratio.
func ThumbnailWebP(data []byte, maxEdge int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	thumb := imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, 85)
	if err != nil {
		return nil, fmt.Errorf("error creating encoder options: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, options); err != nil {
		return nil, fmt.Errorf("error encoding WebP thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

package shared

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/ooxml/opc"
)

func init() {
	for _, ct := range []string{
		opc.CTPNG, opc.CTJPEG, opc.CTJPG, opc.CTGIF,
		opc.CTTIFF, opc.CTBMP, opc.CTWebP,
	} {
		opc.RegisterPartType(ct, newImagePart)
	}
}

// ImagePart is an embedded raster image. The pixel data stays unread until
// asked for; Config decodes only the header.
type ImagePart struct {
	*opc.BasePart

	cfg    image.Config
	format string
	probed bool
}

func newImagePart(b *opc.BasePart) opc.Part {
	return &ImagePart{BasePart: b}
}

// Config returns the image's decoded header: pixel dimensions and color
// model. The result is cached after the first call.
func (p *ImagePart) Config() (image.Config, error) {
	if err := p.probe(); err != nil {
		return image.Config{}, err
	}
	return p.cfg, nil
}

// Format returns the decoded format name (png, jpeg, gif, tiff, bmp, webp),
// which may disagree with the declared content type.
func (p *ImagePart) Format() (string, error) {
	if err := p.probe(); err != nil {
		return "", err
	}
	return p.format, nil
}

// Size returns the image's pixel dimensions.
func (p *ImagePart) Size() (width, height int, err error) {
	cfg, err := p.Config()
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// Image decodes the full pixel data.
func (p *ImagePart) Image() (image.Image, error) {
	data, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p.Name(), err)
	}
	return img, nil
}

func (p *ImagePart) probe() error {
	if p.probed {
		return nil
	}
	data, err := p.Bytes()
	if err != nil {
		return err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image header %s: %w", p.Name(), err)
	}
	p.cfg = cfg
	p.format = format
	p.probed = true
	return nil
}

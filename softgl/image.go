package softgl

import "image"

// Image is a decoded still image usable as a texture source.
type Image struct {
	img image.Image
}

// NewImage wraps img.
func NewImage(img image.Image) *Image {
	return &Image{img: img}
}

// Kind returns the traced kind name.
func (i *Image) Kind() string { return "HTMLImageElement" }

// Image returns the wrapped image.
func (i *Image) Image() image.Image {
	if i == nil {
		return nil
	}
	return i.img
}

// Width returns the natural width of the image.
func (i *Image) Width() int { return i.img.Bounds().Dx() }

// Height returns the natural height of the image.
func (i *Image) Height() int { return i.img.Bounds().Dy() }

// imageSource is anything uploadable with the source forms of texImage2D.
type imageSource interface {
	Image() image.Image
}

// Flat RGBA pixel storage with bounds-checked access
package core

import "fmt"

// RawImage is the boundary representation exchanged with loaders and
// displays: tightly packed RGBA rows.
type RawImage struct {
	Width  int
	Height int
	Pix    []byte
}

// Region selects a sub-rectangle of a buffer. A zero Width or Height
// extends the region to the buffer edge.
type Region struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// PixelBuffer owns width*height RGBA pixels in row-major order.
type PixelBuffer struct {
	width  int
	height int
	data   []byte
}

// NewPixelBuffer allocates a zero-filled buffer.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d: %w", width, height, ErrInvalidArgument)
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]byte, width*height*4),
	}, nil
}

// NewPixelBufferFromRaw takes ownership of data, which must hold exactly
// width*height RGBA pixels.
func NewPixelBufferFromRaw(width, height int, data []byte) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("buffer holds %d bytes, %dx%d RGBA needs %d: %w",
			len(data), width, height, width*height*4, ErrInvalidArgument)
	}
	return &PixelBuffer{width: width, height: height, data: data}, nil
}

func (pb *PixelBuffer) Width() int  { return pb.width }
func (pb *PixelBuffer) Height() int { return pb.height }

func (pb *PixelBuffer) offset(row, col int) (int, error) {
	if row < 0 || row >= pb.height || col < 0 || col >= pb.width {
		return 0, fmt.Errorf("pixel (%d,%d) outside %dx%d buffer: %w", row, col, pb.width, pb.height, ErrOutOfRange)
	}
	return (row*pb.width + col) * 4, nil
}

// Get reads the pixel at (row, col).
func (pb *PixelBuffer) Get(row, col int) (Pixel, error) {
	i, err := pb.offset(row, col)
	if err != nil {
		return Pixel{}, err
	}
	return pb.at(i), nil
}

// Set clamps p and stores it at (row, col).
func (pb *PixelBuffer) Set(row, col int, p Pixel) error {
	i, err := pb.offset(row, col)
	if err != nil {
		return err
	}
	pb.put(i, p)
	return nil
}

func (pb *PixelBuffer) at(i int) Pixel {
	d := pb.data[i : i+4 : i+4]
	return Pixel{float64(d[0]), float64(d[1]), float64(d[2]), float64(d[3])}
}

func (pb *PixelBuffer) put(i int, p Pixel) {
	d := pb.data[i : i+4 : i+4]
	d[0] = toByte(p[R])
	d[1] = toByte(p[G])
	d[2] = toByte(p[B])
	d[3] = toByte(p[A])
}

// Clone returns an independent copy of the buffer.
func (pb *PixelBuffer) Clone() *PixelBuffer {
	data := make([]byte, len(pb.data))
	copy(data, pb.data)
	return &PixelBuffer{width: pb.width, height: pb.height, data: data}
}

// Export copies the whole buffer out.
func (pb *PixelBuffer) Export() RawImage {
	c := pb.Clone()
	return RawImage{Width: c.width, Height: c.height, Pix: c.data}
}

// ExportRegion copies the rectangle selected by r into a new buffer.
func (pb *PixelBuffer) ExportRegion(r Region) (RawImage, error) {
	if r.Row < 0 || r.Row >= pb.height || r.Col < 0 || r.Col >= pb.width {
		return RawImage{}, fmt.Errorf("region offset (%d,%d) outside %dx%d buffer: %w",
			r.Row, r.Col, pb.width, pb.height, ErrOutOfRange)
	}
	if r.Width < 0 || r.Height < 0 {
		return RawImage{}, fmt.Errorf("negative region extent %dx%d: %w", r.Width, r.Height, ErrOutOfRange)
	}

	width, height := r.Width, r.Height
	if width == 0 {
		width = pb.width - r.Col
	}
	if height == 0 {
		height = pb.height - r.Row
	}
	if r.Col+width > pb.width || r.Row+height > pb.height {
		return RawImage{}, fmt.Errorf("region %dx%d at (%d,%d) exceeds %dx%d buffer: %w",
			width, height, r.Row, r.Col, pb.width, pb.height, ErrOutOfRange)
	}

	out := make([]byte, 0, width*height*4)
	for row := r.Row; row < r.Row+height; row++ {
		start := (row*pb.width + r.Col) * 4
		out = append(out, pb.data[start:start+width*4]...)
	}
	return RawImage{Width: width, Height: height, Pix: out}, nil
}

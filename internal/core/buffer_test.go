package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixelBufferGetSet(t *testing.T) {
	pb, err := NewPixelBuffer(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			p := Pixel{float64(row * 10), float64(col * 20), float64(row + col), 255}
			if err := pb.Set(row, col, p); err != nil {
				t.Fatalf("Set(%d,%d): %v", row, col, err)
			}
		}
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			got, err := pb.Get(row, col)
			if err != nil {
				t.Fatalf("Get(%d,%d): %v", row, col, err)
			}
			want := Pixel{float64(row * 10), float64(col * 20), float64(row + col), 255}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Get(%d,%d) mismatch (-want +got):\n%s", row, col, diff)
			}
		}
	}
}

func TestPixelBufferLayout(t *testing.T) {
	pb, _ := NewPixelBuffer(3, 2)
	if err := pb.Set(1, 2, Pixel{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	// (1*3+2)*4 = 20
	if diff := cmp.Diff([]byte{1, 2, 3, 4}, pb.data[20:24]); diff != "" {
		t.Errorf("bytes at offset 20 (-want +got):\n%s", diff)
	}
}

func TestPixelBufferSetClamps(t *testing.T) {
	pb, _ := NewPixelBuffer(1, 1)
	if err := pb.Set(0, 0, Pixel{-20, 300, 127.5, 254.6}); err != nil {
		t.Fatal(err)
	}
	got, _ := pb.Get(0, 0)
	if diff := cmp.Diff(Pixel{0, 255, 128, 255}, got); diff != "" {
		t.Errorf("clamped pixel (-want +got):\n%s", diff)
	}
}

func TestPixelBufferOutOfRange(t *testing.T) {
	pb, _ := NewPixelBuffer(4, 3)
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}, {100, 100}}
	for _, rc := range coords {
		if _, err := pb.Get(rc[0], rc[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d,%d) error = %v, want ErrOutOfRange", rc[0], rc[1], err)
		}
		if err := pb.Set(rc[0], rc[1], Pixel{}); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d,%d) error = %v, want ErrOutOfRange", rc[0], rc[1], err)
		}
	}
}

func TestPixelFromValues(t *testing.T) {
	p, err := PixelFromValues(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if p != (Pixel{1, 2, 3, 4}) {
		t.Errorf("PixelFromValues = %v", p)
	}
	for _, values := range [][]float64{nil, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		if _, err := PixelFromValues(values...); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("PixelFromValues(%v) error = %v, want ErrInvalidArgument", values, err)
		}
	}
}

func TestNewPixelBufferFromRawLength(t *testing.T) {
	if _, err := NewPixelBufferFromRaw(2, 2, make([]byte, 15)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("short buffer error = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewPixelBufferFromRaw(2, 2, make([]byte, 16)); err != nil {
		t.Errorf("exact buffer: %v", err)
	}
}

func TestExportRegion(t *testing.T) {
	// 3x2 image whose red channel is 10*row+col.
	pb, _ := NewPixelBuffer(3, 2)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			pb.Set(row, col, Pixel{float64(10*row + col), 0, 0, 255})
		}
	}

	tests := []struct {
		name   string
		region Region
		want   RawImage
	}{
		{
			name:   "full",
			region: Region{},
			want: RawImage{Width: 3, Height: 2, Pix: []byte{
				0, 0, 0, 255, 1, 0, 0, 255, 2, 0, 0, 255,
				10, 0, 0, 255, 11, 0, 0, 255, 12, 0, 0, 255,
			}},
		},
		{
			name:   "remaining from offset",
			region: Region{Row: 1, Col: 1},
			want:   RawImage{Width: 2, Height: 1, Pix: []byte{11, 0, 0, 255, 12, 0, 0, 255}},
		},
		{
			name:   "explicit extent",
			region: Region{Row: 0, Col: 1, Width: 1, Height: 2},
			want:   RawImage{Width: 1, Height: 2, Pix: []byte{1, 0, 0, 255, 11, 0, 0, 255}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pb.ExportRegion(tc.region)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ExportRegion(%+v) (-want +got):\n%s", tc.region, diff)
			}
		})
	}

	got, _ := pb.ExportRegion(Region{})
	got.Pix[0] = 99
	if p, _ := pb.Get(0, 0); p[R] != 0 {
		t.Error("exported region aliases the buffer")
	}
}

func TestExportRegionOutOfRange(t *testing.T) {
	pb, _ := NewPixelBuffer(3, 2)
	regions := []Region{
		{Row: -1},
		{Col: -1},
		{Row: 2},
		{Col: 3},
		{Col: 1, Width: 3},
		{Row: 1, Height: 2},
		{Width: -1},
	}
	for _, r := range regions {
		if _, err := pb.ExportRegion(r); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("ExportRegion(%+v) error = %v, want ErrOutOfRange", r, err)
		}
	}
}

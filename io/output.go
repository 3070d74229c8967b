package io

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"unsafe"

	"github.com/phil-mansfield/potflow/flow"
)

var end = binary.LittleEndian

// FieldHeader describes the contents of a binary field file. The header is
// followed by one float64 array of Nx*Ny values for each quantity from Phi to
// Vy, in flow.Quantity order. Undefined samples are stored as NaN.
type FieldHeader struct {
	Type TypeInfo
	Flow FlowInfo
	Loc  LocationInfo
}

type TypeInfo struct {
	Endianness int64
	HeaderSize int64
	Quantities int64
}

type FlowInfo struct {
	U, A, Gamma float64
}

type LocationInfo struct {
	Nx, Ny     int64
	XMin, XMax float64
	YMin, YMax float64
}

// WriteField writes f in the binary field format.
func WriteField(f *flow.Field, wr io.Writer) error {
	var endFlag int64
	if end == binary.LittleEndian {
		endFlag = -1
	} else {
		endFlag = 0
	}

	nx, ny := f.Grid.Dims()

	hd := FieldHeader{ }
	hd.Type.Endianness = endFlag
	hd.Type.HeaderSize = int64(unsafe.Sizeof(hd))
	hd.Type.Quantities = int64(flow.EndQuantity)
	hd.Flow = FlowInfo{ f.Params.U, f.Params.A, f.Params.Gamma }
	hd.Loc = LocationInfo{
		Nx: int64(nx), Ny: int64(ny),
		XMin: f.Grid.X(0), XMax: f.Grid.X(nx - 1),
		YMin: f.Grid.Y(0), YMax: f.Grid.Y(ny - 1),
	}

	if err := binary.Write(wr, end, &hd); err != nil { return err }
	for q := flow.Quantity(0); q < flow.EndQuantity; q++ {
		if err := binary.Write(wr, end, f.Values(q)); err != nil { return err }
	}
	return nil
}

// WriteFieldFile writes f to the named file in the binary field format.
func WriteFieldFile(fname string, f *flow.Field) error {
	file, err := os.Create(fname)
	if err != nil { return err }
	defer file.Close()

	if err = WriteField(f, file); err != nil { return err }
	return file.Close()
}

// ReadField reads a binary field file. vals[q] holds quantity q in grid
// order.
func ReadField(rd io.Reader) (hd *FieldHeader, vals [][]float64, err error) {
	hd = &FieldHeader{ }
	if err = binary.Read(rd, end, hd); err != nil { return nil, nil, err }

	if hd.Type.Endianness != -1 {
		return nil, nil, fmt.Errorf("Field file is not little-endian.")
	} else if hd.Type.HeaderSize != int64(unsafe.Sizeof(*hd)) {
		return nil, nil, fmt.Errorf(
			"Field header size is %d, expected %d.",
			hd.Type.HeaderSize, unsafe.Sizeof(*hd),
		)
	} else if hd.Loc.Nx < 0 || hd.Loc.Ny < 0 || hd.Type.Quantities < 0 {
		return nil, nil, fmt.Errorf("Field header has negative dimensions.")
	}

	n := hd.Loc.Nx * hd.Loc.Ny
	vals = make([][]float64, hd.Type.Quantities)
	for i := range vals {
		vals[i] = make([]float64, n)
		if err = binary.Read(rd, end, vals[i]); err != nil { return nil, nil, err }
	}

	return hd, vals, nil
}

// Grid returns the sampling grid described by the header.
func (hd *FieldHeader) Grid() *flow.Grid {
	xs := flow.Linspace(hd.Loc.XMin, hd.Loc.XMax, int(hd.Loc.Nx))
	ys := flow.Linspace(hd.Loc.YMin, hd.Loc.YMax, int(hd.Loc.Ny))
	return flow.NewRectGrid(xs, ys)
}

// Params returns the flow parameters stored in the header.
func (hd *FieldHeader) Params() flow.Params {
	return flow.Params{ U: hd.Flow.U, A: hd.Flow.A, Gamma: hd.Flow.Gamma }
}

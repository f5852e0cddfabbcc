package persist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/hupe1980/numvec"
	"github.com/hupe1980/numvec/element"
	"github.com/hupe1980/numvec/storage"
)

var byteOrder = binary.LittleEndian // native on x86/ARM

// Save writes a snapshot of v to w. The backend kind is preserved: a
// sparse vector's snapshot stores only its populated entries and loads
// back as sparse.
func Save[T element.Number](w io.Writer, v *numvec.Vector[T], optFns ...func(*Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if v == nil {
		return numvec.ErrNilVector
	}

	kind := storage.KindOf(v.Storage())
	payload, err := encodePayload(v.Storage(), kind)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	compressed, err := compress(payload, opts.Compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	header := FileHeader{
		Magic:       Magic,
		Version:     Version,
		Element:     elementCode[T](),
		Kind:        uint8(kind),
		Compression: uint8(opts.Compression),
		Length:      uint64(v.Count()),
	}
	if err := binary.Write(w, byteOrder, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := binary.Write(w, byteOrder, crc32.ChecksumIEEE(payload)); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}
	if err := binary.Write(w, byteOrder, uint64(len(compressed))); err != nil {
		return fmt.Errorf("write payload size: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		if opts.Logger != nil {
			opts.Logger.WithKind(kind.String()).WithLength(v.Count()).LogSave(len(compressed), err)
		}
		return fmt.Errorf("write payload: %w", err)
	}

	if opts.Logger != nil {
		opts.Logger.WithKind(kind.String()).WithLength(v.Count()).LogSave(len(compressed), nil)
	}
	return nil
}

// Load reads a snapshot from r and rebuilds the vector with the backend
// kind it was saved with. The element type T must match the snapshot.
func Load[T element.Number](r io.Reader, optFns ...func(*Options)) (*numvec.Vector[T], error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	var header FileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != Magic {
		return nil, ErrBadMagic
	}
	if header.Version != Version {
		return nil, &ErrUnsupportedVersion{Version: header.Version}
	}
	if want := elementCode[T](); header.Element != want {
		return nil, &ErrElementTypeMismatch{Expected: want, Actual: header.Element}
	}

	var checksum uint32
	if err := binary.Read(r, byteOrder, &checksum); err != nil {
		return nil, fmt.Errorf("read checksum: %w", err)
	}
	var size uint64
	if err := binary.Read(r, byteOrder, &size); err != nil {
		return nil, fmt.Errorf("read payload size: %w", err)
	}
	compressed := make([]byte, size)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	payload, err := decompress(compressed, Compression(header.Compression))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, ErrChecksumMismatch
	}

	v, err := decodePayload[T](payload, storage.Kind(header.Kind), int(header.Length))
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.LogLoad(err)
		}
		return nil, err
	}

	if opts.Logger != nil {
		opts.Logger.WithKind(storage.Kind(header.Kind).String()).WithLength(v.Count()).LogLoad(nil)
	}
	return v, nil
}

func encodePayload[T element.Number](st storage.Storage[T], kind storage.Kind) ([]byte, error) {
	var buf bytes.Buffer

	switch kind {
	case storage.KindDense:
		arr := make([]T, st.Length())
		for i, x := range st.ElementsIndexed() {
			arr[i] = x
		}
		if err := binary.Write(&buf, byteOrder, arr); err != nil {
			return nil, err
		}

	case storage.KindSparse:
		var (
			indices []uint32
			values  []T
		)
		for i, x := range st.NonZeroElementsIndexed() {
			indices = append(indices, uint32(i))
			values = append(values, x)
		}
		if err := binary.Write(&buf, byteOrder, uint64(len(indices))); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, byteOrder, indices); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, byteOrder, values); err != nil {
			return nil, err
		}

	case storage.KindConstant:
		c := st.(*storage.Constant[T])
		if err := binary.Write(&buf, byteOrder, c.Value()); err != nil {
			return nil, err
		}

	default:
		return nil, &ErrUnknownKind{Kind: uint8(kind)}
	}

	return buf.Bytes(), nil
}

func decodePayload[T element.Number](payload []byte, kind storage.Kind, length int) (*numvec.Vector[T], error) {
	br := bytes.NewReader(payload)

	switch kind {
	case storage.KindDense:
		arr := make([]T, length)
		if err := binary.Read(br, byteOrder, arr); err != nil {
			return nil, fmt.Errorf("decode dense payload: %w", err)
		}
		return numvec.NewFromSlice(arr), nil

	case storage.KindSparse:
		var nnz uint64
		if err := binary.Read(br, byteOrder, &nnz); err != nil {
			return nil, fmt.Errorf("decode sparse entry count: %w", err)
		}
		indices := make([]uint32, nnz)
		values := make([]T, nnz)
		if err := binary.Read(br, byteOrder, indices); err != nil {
			return nil, fmt.Errorf("decode sparse indices: %w", err)
		}
		if err := binary.Read(br, byteOrder, values); err != nil {
			return nil, fmt.Errorf("decode sparse values: %w", err)
		}
		v := numvec.NewSparse[T](length)
		for k, u := range indices {
			v.SetAt(int(u), values[k])
		}
		return v, nil

	case storage.KindConstant:
		var value T
		if err := binary.Read(br, byteOrder, &value); err != nil {
			return nil, fmt.Errorf("decode constant payload: %w", err)
		}
		return numvec.NewConstant(length, value), nil

	default:
		return nil, &ErrUnknownKind{Kind: uint8(kind)}
	}
}

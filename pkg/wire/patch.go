package wire

import "github.com/viewtree-dev/viewtree/pkg/vtree"

// Frame is a batch of patches with a sequence number. Receivers use the
// sequence to detect missed frames; a gap means the receiver's tree is
// stale and needs a full remount.
type Frame struct {
	Seq     uint64
	Patches []vtree.Patch
}

// EncodeFrame encodes a patch frame to bytes.
func EncodeFrame(f *Frame) []byte {
	e := NewEncoder()
	EncodeFrameTo(e, f)
	return e.Bytes()
}

// EncodeFrameTo encodes a patch frame using the provided encoder.
func EncodeFrameTo(e *Encoder, f *Frame) {
	e.WriteUvarint(f.Seq)
	e.WriteUvarint(uint64(len(f.Patches)))
	for i := range f.Patches {
		encodePatch(e, &f.Patches[i])
	}
}

// DecodeFrame decodes a patch frame from bytes.
func DecodeFrame(data []byte) (*Frame, error) {
	d := NewDecoder(data)
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}
	count, err := d.ReadCount()
	if err != nil {
		return nil, err
	}
	patches := make([]vtree.Patch, count)
	for i := 0; i < count; i++ {
		if err := decodePatch(d, &patches[i]); err != nil {
			return nil, err
		}
	}
	return &Frame{Seq: seq, Patches: patches}, nil
}

func encodePatch(e *Encoder, p *vtree.Patch) {
	e.WriteByte(byte(p.Op))
	encodePath(e, p.Path)

	switch p.Op {
	case vtree.OpReplace:
		EncodeNode(e, p.Node)

	case vtree.OpSetText:
		e.WriteString(p.Text)

	case vtree.OpUpdateAttrs, vtree.OpUpdateStyles:
		encodeDelta(e, p.Added, p.Updated, p.Removed)

	case vtree.OpInsertChild:
		e.WriteUvarint(uint64(p.Index))
		EncodeNode(e, p.Node)

	case vtree.OpRemoveChild:
		e.WriteUvarint(uint64(p.Index))

	case vtree.OpMoveChild:
		e.WriteUvarint(uint64(p.From))
		e.WriteUvarint(uint64(p.To))
	}
}

func decodePatch(d *Decoder, p *vtree.Patch) error {
	opByte, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = vtree.Op(opByte)

	if p.Path, err = decodePath(d); err != nil {
		return err
	}

	switch p.Op {
	case vtree.OpReplace:
		p.Node, err = DecodeNode(d)

	case vtree.OpSetText:
		p.Text, err = d.ReadString()

	case vtree.OpUpdateAttrs, vtree.OpUpdateStyles:
		p.Added, p.Updated, p.Removed, err = decodeDelta(d)

	case vtree.OpInsertChild:
		if p.Index, err = decodeIndex(d); err != nil {
			return err
		}
		p.Node, err = DecodeNode(d)

	case vtree.OpRemoveChild:
		p.Index, err = decodeIndex(d)

	case vtree.OpMoveChild:
		if p.From, err = decodeIndex(d); err != nil {
			return err
		}
		p.To, err = decodeIndex(d)

	default:
		// Unknown op: nothing further decodable. Surfaces reject it.
	}
	return err
}

func encodePath(e *Encoder, path vtree.Path) {
	e.WriteUvarint(uint64(len(path)))
	for _, i := range path {
		e.WriteUvarint(uint64(i))
	}
}

func decodePath(d *Decoder) (vtree.Path, error) {
	n, err := d.ReadCount()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	path := make(vtree.Path, n)
	for i := 0; i < n; i++ {
		idx, err := decodeIndex(d)
		if err != nil {
			return nil, err
		}
		path[i] = idx
	}
	return path, nil
}

func decodeIndex(d *Decoder) (int, error) {
	v, err := d.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if v > MaxCollectionCount {
		return 0, ErrCollectionTooLarge
	}
	return int(v), nil
}

func encodeDelta(e *Encoder, added, updated map[string]string, removed []string) {
	writeStringMap(e, added)
	writeStringMap(e, updated)
	e.WriteUvarint(uint64(len(removed)))
	for _, k := range removed {
		e.WriteString(k)
	}
}

func decodeDelta(d *Decoder) (added, updated map[string]string, removed []string, err error) {
	if added, err = readStringMap(d); err != nil {
		return nil, nil, nil, err
	}
	if updated, err = readStringMap(d); err != nil {
		return nil, nil, nil, err
	}
	n, err := d.ReadCount()
	if err != nil {
		return nil, nil, nil, err
	}
	for i := 0; i < n; i++ {
		k, err := d.ReadString()
		if err != nil {
			return nil, nil, nil, err
		}
		removed = append(removed, k)
	}
	return added, updated, removed, nil
}

func writeStringMap(e *Encoder, m map[string]string) {
	e.WriteUvarint(uint64(len(m)))
	for k, v := range m {
		e.WriteString(k)
		e.WriteString(v)
	}
}

func readStringMap(d *Decoder) (map[string]string, error) {
	n, err := d.ReadCount()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	m := make(map[string]string, n)
	for i := 0; i < n; i++ {
		k, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

package wire

import (
	"github.com/viewtree-dev/viewtree/pkg/css"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
)

// nullMarker stands in for a nil node.
const nullMarker = 0xFF

// EncodeNode encodes a tree, dropping event handlers. A nil node
// encodes as a null marker.
func EncodeNode(e *Encoder, n *vtree.Node) {
	if n == nil {
		e.WriteByte(nullMarker)
		return
	}

	e.WriteByte(byte(n.Kind))
	switch n.Kind {
	case vtree.KindElement:
		e.WriteString(n.Tag)
		e.WriteString(n.ID)
		e.WriteString(n.Key)

		e.WriteUvarint(uint64(len(n.Attrs)))
		for _, a := range n.Attrs {
			e.WriteString(a.Key)
			e.WriteBool(a.Toggle)
			if a.Toggle {
				e.WriteBool(a.On)
			} else {
				e.WriteString(a.Value)
			}
		}

		e.WriteUvarint(uint64(len(n.Styles)))
		for _, s := range n.Styles {
			e.WriteString(s.Pseudo)
			e.WriteString(s.Property)
			e.WriteString(s.Value)
		}

		e.WriteUvarint(uint64(len(n.Children)))
		for _, c := range n.Children {
			EncodeNode(e, c)
		}

	case vtree.KindText, vtree.KindComment:
		e.WriteString(n.Text)
	}
}

// DecodeNode decodes a tree, enforcing MaxNodeDepth.
func DecodeNode(d *Decoder) (*vtree.Node, error) {
	return decodeNode(d, 0)
}

func decodeNode(d *Decoder, depth int) (*vtree.Node, error) {
	if depth > MaxNodeDepth {
		return nil, ErrMaxDepthExceeded
	}

	kindByte, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if kindByte == nullMarker {
		return nil, nil
	}

	n := &vtree.Node{Kind: vtree.Kind(kindByte)}
	switch n.Kind {
	case vtree.KindElement:
		if n.Tag, err = d.ReadString(); err != nil {
			return nil, err
		}
		if n.ID, err = d.ReadString(); err != nil {
			return nil, err
		}
		if n.Key, err = d.ReadString(); err != nil {
			return nil, err
		}

		attrCount, err := d.ReadCount()
		if err != nil {
			return nil, err
		}
		for i := 0; i < attrCount; i++ {
			a, err := decodeAttr(d)
			if err != nil {
				return nil, err
			}
			n.Attrs = append(n.Attrs, a)
		}

		styleCount, err := d.ReadCount()
		if err != nil {
			return nil, err
		}
		for i := 0; i < styleCount; i++ {
			s, err := decodeStyle(d)
			if err != nil {
				return nil, err
			}
			n.Styles = append(n.Styles, s)
		}

		childCount, err := d.ReadCount()
		if err != nil {
			return nil, err
		}
		for i := 0; i < childCount; i++ {
			c, err := decodeNode(d, depth+1)
			if err != nil {
				return nil, err
			}
			if c != nil {
				n.Children = append(n.Children, c)
			}
		}

	case vtree.KindText, vtree.KindComment:
		if n.Text, err = d.ReadString(); err != nil {
			return nil, err
		}

	default:
		return nil, ErrUnknownKind
	}

	return n, nil
}

func decodeAttr(d *Decoder) (vtree.Attr, error) {
	var a vtree.Attr
	var err error
	if a.Key, err = d.ReadString(); err != nil {
		return a, err
	}
	if a.Toggle, err = d.ReadBool(); err != nil {
		return a, err
	}
	if a.Toggle {
		a.On, err = d.ReadBool()
	} else {
		a.Value, err = d.ReadString()
	}
	return a, err
}

func decodeStyle(d *Decoder) (css.Style, error) {
	var s css.Style
	var err error
	if s.Pseudo, err = d.ReadString(); err != nil {
		return s, err
	}
	if s.Property, err = d.ReadString(); err != nil {
		return s, err
	}
	s.Value, err = d.ReadString()
	return s, err
}

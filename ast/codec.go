package ast

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/xiam/sexpression/lexer"
)

var errMalformedNode = errors.New("malformed node")

type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonValue struct {
	Type  string       `json:"type"`
	Pos   jsonPosition `json:"pos"`
	Value interface{}  `json:"value"`
}

type jsonList struct {
	Type  string       `json:"type"`
	Pos   jsonPosition `json:"pos"`
	Items []*Node      `json:"items"`
}

// MarshalJSON encodes the node as {"type", "pos", "value"} or, for lists,
// {"type", "pos", "items"}.
func (n *Node) MarshalJSON() ([]byte, error) {
	pos := jsonPosition{Offset: n.pos.Offset, Line: n.pos.Line, Column: n.pos.Column}
	if n.IsVector() {
		return json.Marshal(jsonList{Type: n.nt.String(), Pos: pos, Items: n.children})
	}
	return json.Marshal(jsonValue{Type: n.nt.String(), Pos: pos, Value: n.Value()})
}

// EncodeMsgpack writes the node as a five element array:
// [type, offset, line, column, payload].
func (n *Node) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(5); err != nil {
		return err
	}
	if err := enc.EncodeString(n.nt.String()); err != nil {
		return err
	}
	for _, v := range []int{n.pos.Offset, n.pos.Line, n.pos.Column} {
		if err := enc.EncodeInt(int64(v)); err != nil {
			return err
		}
	}

	switch n.nt {
	case NodeTypeInt:
		return enc.EncodeInt(n.i)
	case NodeTypeFloat:
		return enc.EncodeFloat64(n.f)
	case NodeTypeSymbol, NodeTypeString:
		return enc.EncodeString(n.text.String())
	case NodeTypeList:
		if err := enc.EncodeArrayLen(len(n.children)); err != nil {
			return err
		}
		for _, child := range n.children {
			if err := child.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: unknown type %d", errMalformedNode, n.nt)
}

// maxDecodeDepth bounds list nesting accepted by DecodeMsgpack. It matches
// the default nesting limit of the parser.
const maxDecodeDepth = 1024

// decodeCapacityLimit caps the children reserved up front for a decoded list;
// the slice grows as children are actually read.
const decodeCapacityLimit = 8

// DecodeMsgpack reads a node written by EncodeMsgpack. Decoded texts are
// owned.
func (n *Node) DecodeMsgpack(dec *msgpack.Decoder) error {
	return n.decodeMsgpack(dec, 0)
}

func (n *Node) decodeMsgpack(dec *msgpack.Decoder, depth int) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if l != 5 {
		return fmt.Errorf("%w: expecting 5 fields, got %d", errMalformedNode, l)
	}

	name, err := dec.DecodeString()
	if err != nil {
		return err
	}
	nt, ok := nodeTypeByName(name)
	if !ok {
		return fmt.Errorf("%w: unknown type %q", errMalformedNode, name)
	}

	var pos [3]int
	for i := range pos {
		if pos[i], err = dec.DecodeInt(); err != nil {
			return err
		}
	}

	*n = Node{
		nt:  nt,
		pos: lexer.Position{Offset: pos[0], Line: pos[1], Column: pos[2]},
	}

	switch nt {
	case NodeTypeInt:
		n.i, err = dec.DecodeInt64()
		return err
	case NodeTypeFloat:
		n.f, err = dec.DecodeFloat64()
		return err
	case NodeTypeSymbol, NodeTypeString:
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		n.text = Own(s)
		return nil
	}

	if depth >= maxDecodeDepth {
		return fmt.Errorf("%w: nesting deeper than %d", errMalformedNode, maxDecodeDepth)
	}

	count, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("%w: nil list", errMalformedNode)
	}

	n.children = make([]*Node, 0, min(count, decodeCapacityLimit))
	for i := 0; i < count; i++ {
		child := &Node{}
		if err := child.decodeMsgpack(dec, depth+1); err != nil {
			return err
		}
		n.children = append(n.children, child)
	}
	return nil
}

// MarshalMsgpack encodes a tree into msgpack.
func MarshalMsgpack(n *Node) ([]byte, error) {
	return msgpack.Marshal(n)
}

// UnmarshalMsgpack decodes a tree produced by MarshalMsgpack.
func UnmarshalMsgpack(b []byte) (*Node, error) {
	n := &Node{}
	if err := msgpack.Unmarshal(b, n); err != nil {
		return nil, err
	}
	return n, nil
}

var (
	_ msgpack.CustomEncoder = (*Node)(nil)
	_ msgpack.CustomDecoder = (*Node)(nil)
	_ json.Marshaler        = (*Node)(nil)
)

package ast

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func sampleTree() *Node {
	return NewList(origin, []*Node{
		NewSymbol(origin, Borrow("define")),
		NewList(origin, []*Node{
			NewSymbol(origin, Borrow("f")),
			NewSymbol(origin, Borrow("x")),
		}),
		NewString(origin, Own("he said \"hi\"\n")),
		NewInt(origin, -42),
		NewFloat(origin, 3),
		NewFloat(origin, 1e10),
		NewList(origin, nil),
	})
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{NewInt(origin, 42), `42`},
		{NewFloat(origin, 3.14), `3.14`},
		{NewFloat(origin, 2), `2.0`},
		{NewFloat(origin, -0.5), `-0.5`},
		{NewFloat(origin, 1e21), `1e+21`},
		{NewFloat(origin, math.Inf(1)), `+Inf`},
		{NewString(origin, Own("a\tb\\c")), `"a\tb\\c"`},
		{NewList(origin, nil), `()`},
		{sampleTree(), `(define (f x) "he said \"hi\"\n" -42 3.0 1e+10 ())`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	err := Fprint(&buf, NewList(origin, []*Node{NewSymbol(origin, Borrow("a")), NewInt(origin, 1)}))
	require.NoError(t, err)

	expected := "(list): [2] (1:1)\n" +
		"    (symbol): a (1:1)\n" +
		"    (int): 1 (1:1)\n"
	assert.Equal(t, expected, buf.String())
}

func TestMarshalJSON(t *testing.T) {
	node := NewList(origin, []*Node{NewSymbol(origin, Borrow("a")), NewFloat(origin, 1.5), NewList(origin, nil)})

	b, err := json.Marshal(node)
	require.NoError(t, err)

	expected := `{"type":"list","pos":{"offset":0,"line":1,"column":1},"items":[` +
		`{"type":"symbol","pos":{"offset":0,"line":1,"column":1},"value":"a"},` +
		`{"type":"float","pos":{"offset":0,"line":1,"column":1},"value":1.5},` +
		`{"type":"list","pos":{"offset":0,"line":1,"column":1},"items":[]}]}`
	assert.JSONEq(t, expected, string(b))
}

func TestMsgpackRoundTrip(t *testing.T) {
	tree := sampleTree()

	b, err := MarshalMsgpack(tree)
	require.NoError(t, err)

	back, err := UnmarshalMsgpack(b)
	require.NoError(t, err)

	assert.True(t, Equal(tree, back), "got %s", Encode(back))
	assert.Equal(t, tree.Pos(), back.Pos())
	assert.False(t, back.List()[0].TextValue().Borrowed())
	assert.NotNil(t, back.List()[6].List())
}

func TestMsgpackMalformed(t *testing.T) {
	b, err := msgpack.Marshal([]interface{}{"list", 0, 1, 1})
	require.NoError(t, err)
	_, err = UnmarshalMsgpack(b)
	assert.ErrorIs(t, err, errMalformedNode)

	b, err = msgpack.Marshal([]interface{}{"vector", 0, 1, 1, 0})
	require.NoError(t, err)
	_, err = UnmarshalMsgpack(b)
	assert.ErrorIs(t, err, errMalformedNode)
}

func TestMsgpackHugeListHeader(t *testing.T) {
	// ["list", 0, 1, 1, array32 header claiming 0x7fffffff children]
	b := []byte{0x95, 0xa4, 'l', 'i', 's', 't', 0x00, 0x01, 0x01, 0xdd, 0x7f, 0xff, 0xff, 0xff}

	node, err := UnmarshalMsgpack(b)
	assert.Error(t, err)
	assert.Nil(t, node)
}

func TestMsgpackNestingLimit(t *testing.T) {
	nested := func(depth int) []byte {
		var buf bytes.Buffer
		for i := 0; i < depth; i++ {
			buf.Write([]byte{0x95, 0xa4, 'l', 'i', 's', 't', 0x00, 0x01, 0x01, 0x91})
		}
		buf.Write([]byte{0x95, 0xa4, 'l', 'i', 's', 't', 0x00, 0x01, 0x01, 0x90})
		return buf.Bytes()
	}

	node, err := UnmarshalMsgpack(nested(maxDecodeDepth - 1))
	require.NoError(t, err)
	assert.Equal(t, 1, node.Len())

	_, err = UnmarshalMsgpack(nested(maxDecodeDepth))
	assert.ErrorIs(t, err, errMalformedNode)

	_, err = UnmarshalMsgpack(nested(100000))
	assert.ErrorIs(t, err, errMalformedNode)
}

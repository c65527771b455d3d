package resource

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestByteView_Accessors(t *testing.T) {
	v := Of("abc")

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, byte('b'), v.At(1))
	assert.True(t, v.Equal([]byte("abc")))
	assert.False(t, v.Equal([]byte("abd")))
	assert.True(t, v.EqualString("abc"))
	assert.False(t, v.EqualString("ab"))
	assert.Equal(t, "abc", v.String())
}

func TestByteView_BytesIsCopy(t *testing.T) {
	v := Of("abc")

	b := v.Bytes()
	b[0] = 'x'

	assert.Equal(t, "abc", v.String())
}

func TestByteView_ZeroValueIsEmpty(t *testing.T) {
	var v ByteView

	assert.Equal(t, 0, v.Len())
	assert.True(t, v.Equal(nil))
	assert.True(t, v.Equal([]byte{}))
	assert.NotNil(t, v.Bytes())
	assert.Empty(t, v.Bytes())
}

func TestByteView_KeepsZeroBytes(t *testing.T) {
	v := Of("a\x00b")

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, byte(0), v.At(1))
	assert.True(t, v.Equal([]byte{'a', 0, 'b'}))
}

func TestByteView_WriteTo(t *testing.T) {
	var buf bytes.Buffer

	n, err := Of("hello").WriteTo(&buf)
	require.NoError(t, err)

	assert.EqualValues(t, 5, n)
	assert.Equal(t, "hello", buf.String())
}

func TestByteView_Digest(t *testing.T) {
	assert.Equal(t, xxh3.Hash([]byte("hello")), Of("hello").Digest())
	assert.NotEqual(t, Of("hello").Digest(), Of("hellp").Digest())
}

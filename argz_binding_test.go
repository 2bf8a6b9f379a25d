package argz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceBoolMatchesLiteralTrue(t *testing.T) {
	var b bool

	assert.NoError(t, coerceValue("true", &b))
	assert.True(t, b)

	assert.NoError(t, coerceValue("TRUE", &b))
	assert.False(t, b)

	assert.NoError(t, coerceValue("1", &b))
	assert.False(t, b)
}

func TestCoerceIntegerWrapsWithoutRangeCheck(t *testing.T) {
	var small int32
	assert.NoError(t, coerceValue("4294967296", &small))
	assert.Equal(t, int32(0), small)

	assert.NoError(t, coerceValue("2147483648", &small))
	assert.Equal(t, int32(-2147483648), small)

	var unsigned uint32
	assert.NoError(t, coerceValue("-1", &unsigned))
	assert.Equal(t, uint32(4294967295), unsigned)

	var wide int64
	assert.NoError(t, coerceValue("-9223372036854775808", &wide))
	assert.Equal(t, int64(-9223372036854775808), wide)
}

func TestCoerceMalformedNumberLeavesSlotUntouched(t *testing.T) {
	count := int64(42)

	err := coerceValue("12x", &count)

	assert.True(t, errors.Is(err, MalformedNumberErr))
	assert.Equal(t, int64(42), count)
}

func TestCoercePathCleansValue(t *testing.T) {
	var p Path

	assert.NoError(t, coerceValue("./etc/../conf/app.yml", &p))
	assert.Equal(t, Path("conf/app.yml"), p)
}

func TestCoerceStringTakesTokenVerbatim(t *testing.T) {
	var s string

	assert.NoError(t, coerceValue("./etc/../conf", &s))
	assert.Equal(t, "./etc/../conf", s)
}

func TestBindWritesThroughToSlot(t *testing.T) {
	count := int64(1)
	binding := Bind(&count)

	assert.NoError(t, binding.coerce("5"))
	assert.Equal(t, int64(5), count)
	assert.Equal(t, "5", binding.render())
}

func TestBindOptPopulatesOnFirstCoercion(t *testing.T) {
	var level *int32
	binding := BindOpt(&level)

	assert.Equal(t, "", binding.render())

	assert.NoError(t, binding.coerce("7"))
	if assert.NotNil(t, level) {
		assert.Equal(t, int32(7), *level)
	}
	assert.Equal(t, "7", binding.render())
}

func TestBindOptFailedCoercionStaysAbsent(t *testing.T) {
	var level *int32
	binding := BindOpt(&level)

	err := binding.coerce("abc")

	assert.True(t, errors.Is(err, MalformedNumberErr))
	assert.Nil(t, level)
}

func TestBindOptCoercionsAreIndependent(t *testing.T) {
	var level *int32
	binding := BindOpt(&level)

	assert.NoError(t, binding.coerce("1"))
	first := level
	assert.NoError(t, binding.coerce("2"))

	assert.Equal(t, int32(1), *first)
	assert.Equal(t, int32(2), *level)
}

func TestRenderValueFormats(t *testing.T) {
	assert.Equal(t, "true", renderValue(true))
	assert.Equal(t, "false", renderValue(false))
	assert.Equal(t, "-5", renderValue(int32(-5)))
	assert.Equal(t, "4294967295", renderValue(uint32(4294967295)))
	assert.Equal(t, "18446744073709551615", renderValue(uint64(18446744073709551615)))
	assert.Equal(t, "0.25", renderValue(0.25))
	assert.Equal(t, "hello", renderValue("hello"))
	assert.Equal(t, "a/b", renderValue(Path("a/b")))
}

func TestKindNames(t *testing.T) {
	var b bool
	var p Path
	var level *int32

	assert.Equal(t, "bool", Bind(&b).kind())
	assert.Equal(t, "path", Bind(&p).kind())
	assert.Equal(t, "optional int32", BindOpt(&level).kind())
}

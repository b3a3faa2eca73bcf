package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshuapare/wininterop/pkg/types"
)

func TestWriteStringValue_RejectsBeforeOS(t *testing.T) {
	tests := []struct {
		name   string
		target types.RegistryTarget
		want   error
	}{
		{
			name:   "root out of range",
			target: types.RegistryTarget{Root: types.Root(7), Path: "Software", Type: types.REG_SZ},
			want:   types.ErrInvalidArgument,
		},
		{
			name:   "dword is unsupported",
			target: types.RegistryTarget{Root: types.RootCurrentUser, Path: "Software", Type: types.REG_DWORD, Data: []byte{1, 0, 0, 0}},
			want:   types.ErrUnsupportedValueType,
		},
		{
			name:   "expand_sz is unsupported",
			target: types.RegistryTarget{Root: types.RootCurrentUser, Path: "Environment", Type: types.REG_EXPAND_SZ, Data: []byte("%PATH%")},
			want:   types.ErrUnsupportedValueType,
		},
		{
			name:   "NUL inside data",
			target: types.RegistryTarget{Root: types.RootCurrentUser, Path: "Software", Type: types.REG_SZ, Data: []byte("a\x00b")},
			want:   types.ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteStringValue(tt.target)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnsupportedValueTypeIsAnError(t *testing.T) {
	err := WriteStringValue(types.RegistryTarget{Root: types.RootUsers, Type: types.REG_BINARY})
	assert.True(t, types.IsKind(err, types.ErrKindOS))
	assert.Contains(t, err.Error(), "REG_BINARY")
}

func TestReadStringValue_RootOutOfRange(t *testing.T) {
	_, err := ReadStringValue(types.Root(-1), "Software", "x")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/mfaf/internal/mfaferr"
)

func TestValidate_Accepts(t *testing.T) {
	records := []Record{
		{Name: "a", Offset: 64, Size: 10},
		{Name: "b", Offset: 74, Size: 0},
		{Name: "c", Offset: 74, Size: 5},
	}
	require.NoError(t, Validate(records, 100))
}

func TestValidate_RejectsEmptyName(t *testing.T) {
	records := []Record{{Name: "", Offset: 64, Size: 1}}
	err := Validate(records, 100)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindRange, mfaferr.KindOf(err))
}

func TestValidate_RejectsDuplicateName(t *testing.T) {
	records := []Record{
		{Name: "a", Offset: 64, Size: 1},
		{Name: "a", Offset: 65, Size: 1},
	}
	err := Validate(records, 100)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindRange, mfaferr.KindOf(err))
}

func TestValidate_RejectsOffsetBeforeContentRegion(t *testing.T) {
	records := []Record{{Name: "a", Offset: 10, Size: 1}}
	err := Validate(records, 100)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindRange, mfaferr.KindOf(err))
}

func TestValidate_RejectsOverflowingEnd(t *testing.T) {
	records := []Record{{Name: "a", Offset: 64, Size: ^uint64(0)}}
	err := Validate(records, 100)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindRange, mfaferr.KindOf(err))
}

func TestValidate_RejectsEntryPastContentRegion(t *testing.T) {
	records := []Record{{Name: "a", Offset: 64, Size: 1000}}
	err := Validate(records, 100)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindRange, mfaferr.KindOf(err))
}

func TestValidate_RejectsOverlap(t *testing.T) {
	records := []Record{
		{Name: "a", Offset: 64, Size: 20},
		{Name: "b", Offset: 70, Size: 10},
	}
	err := Validate(records, 100)
	require.Error(t, err)
	require.Equal(t, mfaferr.KindRange, mfaferr.KindOf(err))
}

func TestValidate_AllowsZeroSizeAtSameOffset(t *testing.T) {
	records := []Record{
		{Name: "a", Offset: 64, Size: 0},
		{Name: "b", Offset: 64, Size: 0},
	}
	require.NoError(t, Validate(records, 100))
}

func TestValidate_EmptySetOK(t *testing.T) {
	require.NoError(t, Validate(nil, 64))
}

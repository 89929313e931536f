package convention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorName(t *testing.T) {
	m := newTestManager(t)

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"left to right", "arm_l_jnt", "arm_r_jnt"},
		{"right to left", "arm_r_jnt", "arm_l_jnt"},
		{"center is stable", "spine_c_jnt", "spine_c_jnt"},
		{"no side token", "arm", "arm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.MirrorName(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("mirroring twice is the identity", func(t *testing.T) {
		once, err := m.MirrorName("leg_l_ctl")
		require.NoError(t, err)
		twice, err := m.MirrorName(once)
		require.NoError(t, err)
		assert.Equal(t, "leg_l_ctl", twice)
	})
}

func TestMirrorSide(t *testing.T) {
	assert.Equal(t, "r", MirrorSide("l"))
	assert.Equal(t, "l", MirrorSide("r"))
	assert.Equal(t, "Right", MirrorSide("Left"))
	assert.Equal(t, "c", MirrorSide("c"))
	assert.Equal(t, "unknown", MirrorSide("unknown"))
}

func TestIncrementDigit(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"arm", "arm01"},
		{"arm01", "arm02"},
		{"arm09", "arm10"},
		{"arm99", "arm100"},
		{"arm001", "arm002"},
		{"v009", "v010"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IncrementDigit(tc.input), "input %q", tc.input)
	}
}

func TestDecrementDigit(t *testing.T) {
	assert.Equal(t, "arm01", DecrementDigit("arm02"))
	assert.Equal(t, "arm", DecrementDigit("arm01"))
	assert.Equal(t, "arm", DecrementDigit("arm"))
	assert.Equal(t, "arm09", DecrementDigit("arm10"))
}

func TestReplacePadding(t *testing.T) {
	assert.Equal(t, "arm001", ReplacePadding("arm1", 3))
	assert.Equal(t, "arm1", ReplacePadding("arm001", 1))
	assert.Equal(t, "arm", ReplacePadding("arm", 3))
}

func TestUniqueName(t *testing.T) {
	existing := []string{"arm_l_jnt", "arm_l_jnt01", "arm_l_jnt02"}

	assert.Equal(t, "leg_l_jnt", UniqueName("leg_l_jnt", existing))
	assert.Equal(t, "arm_l_jnt03", UniqueName("arm_l_jnt", existing))
	assert.Equal(t, "arm_l_jnt03", UniqueName("arm_l_jnt01", existing))
}

func TestSplitTrailingNumber(t *testing.T) {
	base, number := SplitTrailingNumber("arm01")
	assert.Equal(t, "arm", base)
	assert.Equal(t, "01", number)

	base, number = SplitTrailingNumber("arm")
	assert.Equal(t, "arm", base)
	assert.Equal(t, "", number)
}

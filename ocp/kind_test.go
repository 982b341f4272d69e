package ocp_test

import (
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/solid/ocp"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ocp.Kind
		wantErr  bool
	}{
		{name: "undo", input: "undo", expected: ocp.KindUndo},
		{name: "redo", input: "redo", expected: ocp.KindRedo},
		{name: "prepare log", input: "prepare_log", expected: ocp.KindPrepareLog},
		{name: "mixed case with spaces", input: "  Prepare_Log ", expected: ocp.KindPrepareLog},
		{name: "unknown", input: "rollback", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := ocp.ParseKind(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errx.IsCodeIn(err, ocp.CodeInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, kind)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "undo", ocp.KindUndo.String())
	assert.Equal(t, "redo", ocp.KindRedo.String())
	assert.Equal(t, "prepare_log", ocp.KindPrepareLog.String())
	assert.Equal(t, "Kind(0)", ocp.Kind(0).String())
}

func TestKindsRoundTripThroughNames(t *testing.T) {
	for _, k := range ocp.Kinds() {
		parsed, err := ocp.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssembly(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	clips := []ClipDetail{{Pos: 1, Filename: "a.mp4", Start: 0, End: 2, Duration: 2}}

	asm := NewAssembly("intro", true, clips, now)

	assert.Equal(t, AssemblyStatusProcessing, asm.Status)
	assert.Equal(t, "intro", asm.Name)
	assert.True(t, asm.Preview)
	assert.Equal(t, clips, asm.Clips)
	assert.Equal(t, time.UTC, asm.Created.Location())
	assert.True(t, asm.Created.Equal(now))
	assert.False(t, asm.IsTerminal())
}

func TestAssembly_MarkAsDone(t *testing.T) {
	asm := NewAssembly("", true, nil, time.Now())
	asm.Error = "stale"

	asm.MarkAsDone("/media/asm_001/result.mp4", 3.02)

	assert.Equal(t, AssemblyStatusDone, asm.Status)
	assert.Equal(t, "/media/asm_001/result.mp4", asm.OutputURL)
	require.NotNil(t, asm.Duration)
	assert.InDelta(t, 3.02, *asm.Duration, 1e-9)
	assert.Empty(t, asm.Error)
	assert.True(t, asm.IsTerminal())
}

func TestAssembly_MarkAsFailed(t *testing.T) {
	asm := NewAssembly("", false, nil, time.Now())
	asm.MarkAsDone("/media/x/result.mp4", 1)

	asm.MarkAsFailed(errors.New("ffmpeg exploded"))

	assert.Equal(t, AssemblyStatusFailed, asm.Status)
	assert.Equal(t, "ffmpeg exploded", asm.Error)
	assert.Empty(t, asm.OutputURL)
	assert.Nil(t, asm.Duration)
}

func TestAssembly_SegmentExt(t *testing.T) {
	assert.Equal(t, ".ts", (&Assembly{Preview: true}).SegmentExt())
	assert.Equal(t, ".mp4", (&Assembly{Preview: false}).SegmentExt())
}

func TestFormatAndParseAssemblyID(t *testing.T) {
	assert.Equal(t, "asm_001", FormatAssemblyID(1))
	assert.Equal(t, "asm_042", FormatAssemblyID(42))
	assert.Equal(t, "asm_1000", FormatAssemblyID(1000))

	seq, err := ParseAssemblyID("asm_007")
	require.NoError(t, err)
	assert.Equal(t, int64(7), seq)

	seq, err = ParseAssemblyID("asm_1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), seq)

	for _, bad := range []string{"", "asm_", "asm_x1", "job_001", "asm_-3", "asm_000"} {
		_, err := ParseAssemblyID(bad)
		assert.Error(t, err, bad)
	}
}

func TestSegmentName(t *testing.T) {
	assert.Equal(t, "001.ts", SegmentName(1, ".ts"))
	assert.Equal(t, "012.mp4", SegmentName(12, ".mp4"))
}

func TestSourceRef_UnmarshalJSON(t *testing.T) {
	var specs []ClipSpec
	body := `[{"source": 3, "start": 1.5}, {"source": "clip b.mov", "end": 4}]`
	require.NoError(t, json.Unmarshal([]byte(body), &specs))

	require.Len(t, specs, 2)
	assert.Equal(t, SourceRef{Index: 3}, specs[0].Source)
	require.NotNil(t, specs[0].Start)
	assert.Equal(t, 1.5, *specs[0].Start)
	assert.Nil(t, specs[0].End)

	assert.Equal(t, SourceRef{Filename: "clip b.mov"}, specs[1].Source)
	assert.Nil(t, specs[1].Start)
	require.NotNil(t, specs[1].End)
	assert.Equal(t, 4.0, *specs[1].End)
}

func TestSourceRef_UnmarshalJSON_Invalid(t *testing.T) {
	var ref SourceRef
	assert.Error(t, json.Unmarshal([]byte(`true`), &ref))
	assert.Error(t, json.Unmarshal([]byte(`""`), &ref))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &ref))
}

func TestSourceRef_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(SourceRef{Index: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `2`, string(data))

	data, err = json.Marshal(SourceRef{Filename: "a.mp4"})
	require.NoError(t, err)
	assert.JSONEq(t, `"a.mp4"`, string(data))
}

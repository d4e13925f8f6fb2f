package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
)

type recordedCall struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []recordedCall
	stdout []byte
	err    error
}

func (f *fakeRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, recordedCall{name: name, args: args})
	return f.stdout, f.err
}

func argAfter(t *testing.T, args []string, flag string) string {
	t.Helper()
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("flag %s not found in %v", flag, args)
	return ""
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "valid path", path: "/tmp/video.mp4"},
		{name: "valid path with spaces", path: "/tmp/my video.mp4"},
		{name: "valid relative path", path: "video.mp4"},
		{name: "empty path", path: "", wantErr: ErrEmptyPath},
		{name: "null byte in middle", path: "/tmp/\x00video.mp4", wantErr: ErrInvalidPath},
		{name: "null byte at end", path: "/tmp/video.mp4\x00", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEscapeDrawtext(t *testing.T) {
	assert.Equal(t, `it\'s\: a.mp4`, escapeDrawtext("it's: a.mp4"))
	assert.Equal(t, `50\% off`, escapeDrawtext("50% off"))
	assert.Equal(t, `plain.mp4`, escapeDrawtext("plain.mp4"))
}

func TestAudioFadeFilter(t *testing.T) {
	assert.Equal(t,
		"asetpts=PTS-STARTPTS,afade=t=in:st=0:d=0.05,afade=t=out:st=2.95:d=0.05",
		audioFadeFilter(3, 50))
	// segments shorter than the fade start the fade-out at zero
	assert.Equal(t,
		"asetpts=PTS-STARTPTS,afade=t=in:st=0:d=0.05,afade=t=out:st=0:d=0.05",
		audioFadeFilter(0.02, 50))
}

func TestConverter_Cut_Preview(t *testing.T) {
	fake := &fakeRunner{}
	c := NewConverter(Options{}).WithCommandRunner(fake.run)

	err := c.Cut(context.Background(), domain.CutRequest{
		InputPath:  "/src/it's: a.mp4",
		Filename:   "it's: a.mp4",
		Start:      2,
		End:        5,
		OutputPath: "/media/asm_001/segments/001.ts",
		Preview:    true,
		Pos:        1,
	})
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)

	call := fake.calls[0]
	assert.Equal(t, "ffmpeg", call.name)
	assert.Equal(t, "2", argAfter(t, call.args, "-ss"))
	assert.Equal(t, "3", argAfter(t, call.args, "-t"))
	assert.Equal(t, "/src/it's: a.mp4", argAfter(t, call.args, "-i"))
	assert.Equal(t, "libx264", argAfter(t, call.args, "-c:v"))
	assert.Equal(t, "ultrafast", argAfter(t, call.args, "-preset"))
	assert.Equal(t, "28", argAfter(t, call.args, "-crf"))
	assert.Equal(t, "aac", argAfter(t, call.args, "-c:a"))
	assert.Equal(t, "128k", argAfter(t, call.args, "-b:a"))
	assert.Contains(t, call.args, "-shortest")
	assert.Equal(t, "/media/asm_001/segments/001.ts", call.args[len(call.args)-1])

	vf := argAfter(t, call.args, "-vf")
	assert.True(t, strings.HasPrefix(vf, "setpts=PTS-STARTPTS,scale=-2:720,"), vf)
	assert.Contains(t, vf, `drawtext=text='[1] it\'s\: a.mp4'`)
	assert.Contains(t, vf, `%{pts\:hms}`)

	assert.Equal(t, audioFadeFilter(3, 50), argAfter(t, call.args, "-af"))
}

func TestConverter_Cut_Final(t *testing.T) {
	fake := &fakeRunner{}
	c := NewConverter(Options{FFmpegBin: "/opt/ffmpeg", AudioBitrate: "192k"}).WithCommandRunner(fake.run)

	err := c.Cut(context.Background(), domain.CutRequest{
		InputPath:  "/src/a.mp4",
		Filename:   "a.mp4",
		Start:      1.5,
		End:        4,
		OutputPath: "/media/asm_002/segments/001.mp4",
		Pos:        1,
	})
	require.NoError(t, err)
	require.Len(t, fake.calls, 1)

	call := fake.calls[0]
	assert.Equal(t, "/opt/ffmpeg", call.name)
	assert.Equal(t, "1.5", argAfter(t, call.args, "-ss"))
	assert.Equal(t, "4", argAfter(t, call.args, "-to"))
	assert.Equal(t, "copy", argAfter(t, call.args, "-c:v"))
	assert.Equal(t, "192k", argAfter(t, call.args, "-b:a"))
	assert.NotContains(t, call.args, "-vf")
	assert.Equal(t, audioFadeFilter(2.5, 50), argAfter(t, call.args, "-af"))
}

func TestConverter_Cut_RunnerFailure(t *testing.T) {
	perr := &domain.ProcessError{Tool: "ffmpeg", ExitCode: 1, Stderr: "Invalid data found"}
	fake := &fakeRunner{err: perr}
	c := NewConverter(Options{}).WithCommandRunner(fake.run)

	err := c.Cut(context.Background(), domain.CutRequest{
		InputPath: "/src/a.mp4", Start: 0, End: 1, OutputPath: "/out/001.ts", Preview: true, Pos: 1,
	})

	var got *domain.ProcessError
	require.ErrorAs(t, err, &got)
	assert.Contains(t, err.Error(), "Invalid data found")
}

func TestConverter_Cut_PathValidation(t *testing.T) {
	fake := &fakeRunner{}
	c := NewConverter(Options{}).WithCommandRunner(fake.run)

	err := c.Cut(context.Background(), domain.CutRequest{OutputPath: "/out/001.ts", End: 1})
	assert.ErrorContains(t, err, "invalid input path")

	err = c.Cut(context.Background(), domain.CutRequest{InputPath: "/src/a.mp4", OutputPath: "/out/\x00.ts", End: 1})
	assert.ErrorContains(t, err, "invalid output path")

	err = c.Cut(context.Background(), domain.CutRequest{InputPath: "/src/a.mp4", OutputPath: "/out/001.ts", Start: 2, End: 2})
	assert.ErrorContains(t, err, "invalid range")

	assert.Empty(t, fake.calls)
}

func TestConverter_Concat(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeRunner{}
	c := NewConverter(Options{}).WithCommandRunner(fake.run)

	segments := []string{
		filepath.Join(dir, "segments", "001.ts"),
		filepath.Join(dir, "segments", "o'clock.ts"),
	}
	output := filepath.Join(dir, "result.mp4")

	require.NoError(t, c.Concat(context.Background(), segments, output))
	require.Len(t, fake.calls, 1)

	manifest := filepath.Join(dir, manifestName)
	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t,
		"file '"+segments[0]+"'\nfile '"+filepath.Join(dir, "segments", `o'\''clock.ts`)+"'\n",
		string(data))

	args := fake.calls[0].args
	assert.Equal(t, "concat", argAfter(t, args, "-f"))
	assert.Equal(t, "0", argAfter(t, args, "-safe"))
	assert.Equal(t, manifest, argAfter(t, args, "-i"))
	assert.Equal(t, "copy", argAfter(t, args, "-c"))
	assert.Equal(t, output, args[len(args)-1])
}

func TestConverter_Concat_NoSegments(t *testing.T) {
	fake := &fakeRunner{}
	c := NewConverter(Options{}).WithCommandRunner(fake.run)

	err := c.Concat(context.Background(), nil, filepath.Join(t.TempDir(), "result.mp4"))
	assert.Error(t, err)
	assert.Empty(t, fake.calls)
}

func TestConverter_Probe(t *testing.T) {
	fake := &fakeRunner{stdout: []byte(`{
		"format": {"duration": "10.042000"},
		"streams": [
			{"index": 0, "codec_type": "audio", "codec_name": "aac"},
			{"index": 1, "codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720}
		]
	}`)}
	c := NewConverter(Options{FFprobeBin: "ffprobe6"}).WithCommandRunner(fake.run)

	info, err := c.Probe(context.Background(), "/src/a.mp4")
	require.NoError(t, err)
	assert.InDelta(t, 10.042, info.Duration, 1e-9)
	assert.Equal(t, "1280x720", info.Resolution)
	assert.Equal(t, "h264", info.Codec)

	require.Len(t, fake.calls, 1)
	assert.Equal(t, "ffprobe6", fake.calls[0].name)
	assert.Equal(t, []string{"-v", "quiet", "-print_format", "json", "-show_format", "-show_streams", "/src/a.mp4"}, fake.calls[0].args)
}

func TestConverter_Probe_Unparseable(t *testing.T) {
	fake := &fakeRunner{stdout: []byte("not json")}
	c := NewConverter(Options{}).WithCommandRunner(fake.run)

	_, err := c.Probe(context.Background(), "/src/a.mp4")
	assert.ErrorContains(t, err, "parse ffprobe output")
}

func TestConverter_Probe_PathValidation(t *testing.T) {
	c := NewConverter(Options{}).WithCommandRunner((&fakeRunner{}).run)

	_, err := c.Probe(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestConverter_Thumbnail(t *testing.T) {
	fake := &fakeRunner{}
	c := NewConverter(Options{}).WithCommandRunner(fake.run)

	require.NoError(t, c.Thumbnail(context.Background(), "/src/a.mp4", "/media/previews/a.jpg"))
	require.Len(t, fake.calls, 1)
	args := fake.calls[0].args
	assert.Equal(t, "0.5", argAfter(t, args, "-ss"))
	assert.Equal(t, "1", argAfter(t, args, "-vframes"))
	assert.Equal(t, "scale=320:-1", argAfter(t, args, "-vf"))
	assert.Equal(t, "/media/previews/a.jpg", args[len(args)-1])
}

func TestRunCommand_Success(t *testing.T) {
	out, err := runCommand(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestRunCommand_ExitCodeAndStderr(t *testing.T) {
	_, err := runCommand(context.Background(), "sh", "-c", "echo broken input >&2; exit 3")

	var perr *domain.ProcessError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "sh", perr.Tool)
	assert.Equal(t, 3, perr.ExitCode)
	assert.Contains(t, perr.Stderr, "broken input")
	assert.Contains(t, err.Error(), "exit 3")
}

func TestRunCommand_CancelKillsProcessGroup(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	started := time.Now()
	_, err := runCommand(ctx, "sh", "-c", "sleep 30 & sleep 30; wait")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), err)
	assert.Less(t, time.Since(started), 10*time.Second)
}

func TestTailBuffer(t *testing.T) {
	b := &tailBuffer{limit: 5}
	_, _ = b.Write([]byte("abc"))
	_, _ = b.Write([]byte("defg"))
	assert.Equal(t, "cdefg", b.String())

	_, _ = b.Write([]byte("0123456789"))
	assert.Equal(t, "56789", b.String())
}

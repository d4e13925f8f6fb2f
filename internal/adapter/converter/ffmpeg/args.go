package ffmpeg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
)

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeDrawtext escapes characters that drawtext treats specially inside a
// single-quoted text value.
func escapeDrawtext(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`, `%`, `\%`)
	return r.Replace(s)
}

// audioFadeFilter builds a linear fade-in and fade-out over a segment of the
// given duration. Very short segments get overlapping fades.
func audioFadeFilter(duration float64, fadeMS int) string {
	fade := float64(fadeMS) / 1000
	outStart := math.Max(0, duration-fade)
	return fmt.Sprintf("asetpts=PTS-STARTPTS,afade=t=in:st=0:d=%s,afade=t=out:st=%s:d=%s",
		formatSeconds(fade), formatSeconds(outStart), formatSeconds(fade))
}

func previewVideoFilter(req domain.CutRequest, height int) string {
	label := escapeDrawtext(fmt.Sprintf("[%d] %s", req.Pos, req.Filename))
	caption := fmt.Sprintf("drawtext=text='%s':x=10:y=10:fontsize=24:fontcolor=white:borderw=2:bordercolor=black", label)
	clock := `drawtext=text='%{pts\:hms}':x=10:y=38:fontsize=20:fontcolor=yellow:borderw=2:bordercolor=black`
	return fmt.Sprintf("setpts=PTS-STARTPTS,scale=-2:%d,%s,%s", height, caption, clock)
}

func (c *Converter) previewCutArgs(req domain.CutRequest) []string {
	return []string{
		"-nostdin", "-y",
		"-ss", formatSeconds(req.Start),
		"-t", formatSeconds(req.Duration()),
		"-i", req.InputPath,
		"-vf", previewVideoFilter(req, c.opts.PreviewHeight),
		"-af", audioFadeFilter(req.Duration(), c.opts.FadeMS),
		"-c:v", "libx264",
		"-preset", c.opts.PreviewPreset,
		"-crf", strconv.Itoa(c.opts.PreviewCRF),
		"-c:a", c.opts.AudioCodec,
		"-b:a", c.opts.AudioBitrate,
		"-shortest",
		"-fflags", "+igndts",
		req.OutputPath,
	}
}

func (c *Converter) finalCutArgs(req domain.CutRequest) []string {
	return []string{
		"-nostdin", "-y",
		"-ss", formatSeconds(req.Start),
		"-to", formatSeconds(req.End),
		"-i", req.InputPath,
		"-c:v", "copy",
		"-af", audioFadeFilter(req.Duration(), c.opts.FadeMS),
		"-c:a", c.opts.AudioCodec,
		"-b:a", c.opts.AudioBitrate,
		req.OutputPath,
	}
}

func concatArgs(manifestPath, outputPath string) []string {
	return []string{
		"-nostdin", "-y",
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c", "copy",
		outputPath,
	}
}

func probeArgs(path string) []string {
	return []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	}
}

func thumbnailArgs(inputPath, outputPath string) []string {
	return []string{
		"-nostdin", "-y",
		"-ss", "0.5",
		"-i", inputPath,
		"-vframes", "1",
		"-vf", "scale=320:-1",
		outputPath,
	}
}

// concatManifest renders the concat demuxer list. Paths must be absolute.
func concatManifest(segments []string) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(seg, "'", `'\''`))
		b.WriteString("'\n")
	}
	return b.String()
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const UnknownValue = "unknown"

type ProbeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	NbStreams  int    `json:"nb_streams"`
}

type ProbeStream struct {
	Index        int    `json:"index"`
	CodecType    string `json:"codec_type"`
	CodecName    string `json:"codec_name"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
	TimeBase     string `json:"time_base"`
	Duration     string `json:"duration"`
	SampleRate   string `json:"sample_rate"`
	Channels     int    `json:"channels"`
}

type ProbeResult struct {
	Format  ProbeFormat   `json:"format"`
	Streams []ProbeStream `json:"streams"`
}

// MediaInfo is the subset of probe data the pipeline and catalog use.
type MediaInfo struct {
	Duration   float64 `json:"duration"`
	Resolution string  `json:"resolution"`
	Codec      string  `json:"codec"`
}

func (p *ProbeResult) VideoStream() *ProbeStream {
	for i := range p.Streams {
		if p.Streams[i].CodecType == "video" {
			return &p.Streams[i]
		}
	}
	return nil
}

// MediaInfo reduces a probe result; the first video stream supplies resolution
// and codec, both "unknown" when there is none.
func (p *ProbeResult) MediaInfo() (MediaInfo, error) {
	duration, err := ParseDuration(p.Format.Duration)
	if err != nil {
		return MediaInfo{}, err
	}
	info := MediaInfo{
		Duration:   duration,
		Resolution: UnknownValue,
		Codec:      UnknownValue,
	}
	if vs := p.VideoStream(); vs != nil {
		info.Resolution = fmt.Sprintf("%dx%d", vs.Width, vs.Height)
		if vs.CodecName != "" {
			info.Codec = vs.CodecName
		}
	}
	return info, nil
}

func ParseDuration(durationStr string) (float64, error) {
	s := strings.TrimSpace(durationStr)
	if s == "" || s == "N/A" {
		return 0, fmt.Errorf("duration not reported")
	}
	duration, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", durationStr, err)
	}
	return duration, nil
}

func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "00:00"
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

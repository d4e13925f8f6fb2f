package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type AssemblyStatus string

const (
	AssemblyStatusProcessing AssemblyStatus = "processing"
	AssemblyStatusDone       AssemblyStatus = "done"
	AssemblyStatusFailed     AssemblyStatus = "failed"
)

const assemblyIDPrefix = "asm_"

// SourceRef points at a catalog entry either by its index or by filename.
// In JSON a number selects by index and a string selects by filename.
type SourceRef struct {
	Index    int
	Filename string
}

func (r SourceRef) String() string {
	if r.Filename != "" {
		return strconv.Quote(r.Filename)
	}
	return strconv.Itoa(r.Index)
}

func (r SourceRef) MarshalJSON() ([]byte, error) {
	if r.Filename != "" {
		return json.Marshal(r.Filename)
	}
	return json.Marshal(r.Index)
}

func (r *SourceRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("source filename is empty")
		}
		*r = SourceRef{Filename: name}
		return nil
	}
	var idx int
	if err := json.Unmarshal(data, &idx); err != nil {
		return fmt.Errorf("source must be an index or a filename: %w", err)
	}
	*r = SourceRef{Index: idx}
	return nil
}

// ClipSpec is one requested clip as submitted by a caller.
type ClipSpec struct {
	Source SourceRef `json:"source"`
	Start  *float64  `json:"start,omitempty"`
	End    *float64  `json:"end,omitempty"`
}

type ClipDetail struct {
	Pos      int     `json:"pos"`
	Filename string  `json:"filename"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

type Assembly struct {
	ID        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	Status    AssemblyStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
	Preview   bool           `json:"preview"`
	Clips     []ClipDetail   `json:"clips"`
	OutputURL string         `json:"output_url,omitempty"`
	Duration  *float64       `json:"duration,omitempty"`
	Note      string         `json:"note,omitempty"`
	Created   time.Time      `json:"created"`
}

func NewAssembly(name string, preview bool, clips []ClipDetail, now time.Time) *Assembly {
	return &Assembly{
		Name:    name,
		Status:  AssemblyStatusProcessing,
		Preview: preview,
		Clips:   clips,
		Created: now.UTC(),
	}
}

func (a *Assembly) IsTerminal() bool {
	return a.Status == AssemblyStatusDone || a.Status == AssemblyStatusFailed
}

func (a *Assembly) MarkAsDone(outputURL string, duration float64) {
	a.Status = AssemblyStatusDone
	a.OutputURL = outputURL
	a.Duration = &duration
	a.Error = ""
}

func (a *Assembly) MarkAsFailed(err error) {
	a.Status = AssemblyStatusFailed
	a.Error = err.Error()
	if a.Error == "" {
		a.Error = "unknown failure"
	}
	a.OutputURL = ""
	a.Duration = nil
}

// SegmentExt is the container extension used for intermediate segments.
// Preview segments are MPEG-TS so concatenation of re-encoded streams stays clean.
func (a *Assembly) SegmentExt() string {
	if a.Preview {
		return ".ts"
	}
	return ".mp4"
}

// FormatAssemblyID renders a sequence number as asm_NNN.
func FormatAssemblyID(seq int64) string {
	return fmt.Sprintf("%s%03d", assemblyIDPrefix, seq)
}

// ParseAssemblyID extracts the numeric suffix of an asm_NNN identifier.
func ParseAssemblyID(id string) (int64, error) {
	suffix, ok := strings.CutPrefix(id, assemblyIDPrefix)
	if !ok || suffix == "" {
		return 0, fmt.Errorf("invalid assembly id %q", id)
	}
	seq, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || seq <= 0 {
		return 0, fmt.Errorf("invalid assembly id %q", id)
	}
	return seq, nil
}

func SegmentName(pos int, ext string) string {
	return fmt.Sprintf("%03d%s", pos, ext)
}

package domain

// CutRequest describes one segment to produce from one source clip.
type CutRequest struct {
	InputPath  string
	Filename   string
	Start      float64
	End        float64
	OutputPath string
	Preview    bool
	Pos        int
}

func (r CutRequest) Duration() float64 {
	return r.End - r.Start
}

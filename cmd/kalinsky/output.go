package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
)

func renderSources(w io.Writer, sources []domain.Source) string {
	headers := []string{"#", "File", "Duration", "Resolution", "Codec", "Size", "Tags"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignRight, alignLeft}

	rows := make([][]string, 0, len(sources))
	for _, s := range sources {
		tags := make([]string, 0, len(s.Tags))
		for _, t := range s.Tags {
			tags = append(tags, t.Name)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Index),
			s.Filename,
			domain.FormatDuration(s.Duration),
			s.Resolution,
			s.Codec,
			humanize.Bytes(uint64(s.FileSize)),
			strings.Join(tags, ", "),
		})
	}
	return renderTable(w, headers, rows, aligns)
}

func renderAssemblies(w io.Writer, assemblies []*domain.Assembly) string {
	headers := []string{"ID", "Name", "Status", "Mode", "Clips", "Duration", "Created"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(assemblies))
	for _, a := range assemblies {
		rows = append(rows, []string{
			a.ID,
			a.Name,
			string(a.Status),
			modeLabel(a.Preview),
			strconv.Itoa(len(a.Clips)),
			durationLabel(a.Duration),
			humanize.Time(a.Created),
		})
	}
	return renderTable(w, headers, rows, aligns)
}

func writeAssemblyDetail(w io.Writer, a *domain.Assembly) {
	fmt.Fprintf(w, "ID:       %s\n", a.ID)
	if a.Name != "" {
		fmt.Fprintf(w, "Name:     %s\n", a.Name)
	}
	fmt.Fprintf(w, "Status:   %s\n", a.Status)
	fmt.Fprintf(w, "Mode:     %s\n", modeLabel(a.Preview))
	fmt.Fprintf(w, "Created:  %s (%s)\n", a.Created.Local().Format("2006-01-02 15:04:05"), humanize.Time(a.Created))
	if a.Duration != nil {
		fmt.Fprintf(w, "Duration: %s\n", durationLabel(a.Duration))
	}
	if a.OutputURL != "" {
		fmt.Fprintf(w, "Output:   %s\n", a.OutputURL)
	}
	if a.Error != "" {
		fmt.Fprintf(w, "Error:    %s\n", a.Error)
	}
	if a.Note != "" {
		fmt.Fprintf(w, "Note:     %s\n", a.Note)
	}

	if len(a.Clips) == 0 {
		return
	}
	fmt.Fprintln(w)
	headers := []string{"Pos", "File", "Start", "End", "Duration"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(a.Clips))
	for _, c := range a.Clips {
		rows = append(rows, []string{
			strconv.Itoa(c.Pos),
			c.Filename,
			seconds(c.Start),
			seconds(c.End),
			seconds(c.Duration),
		})
	}
	fmt.Fprintln(w, renderTable(w, headers, rows, aligns))
}

func modeLabel(preview bool) string {
	if preview {
		return "preview"
	}
	return "final"
}

func durationLabel(d *float64) string {
	if d == nil {
		return "-"
	}
	return domain.FormatDuration(*d)
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

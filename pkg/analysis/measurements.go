package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/goshade/pkg/geometry"
	"github.com/philipparndt/goshade/pkg/shadow"
)

// EdgeInfo contains the visibility of a single face edge
type EdgeInfo struct {
	Face          int
	Edge          int
	Start         geometry.Vector3
	End           geometry.Vector3
	Length        float64
	VisibleLength float64
	Segments      int
}

// IsHidden reports whether nothing of the edge is visible
func (e EdgeInfo) IsHidden() bool {
	return e.Segments == 0
}

// IsPartial reports whether the edge is visible only in parts
func (e EdgeInfo) IsPartial() bool {
	return e.Segments > 0 && e.VisibleLength < e.Length
}

// FaceInfo contains the classification of a single face
type FaceInfo struct {
	Index         int
	VertexCount   int
	Centroid      geometry.Vector3
	Vertical      bool
	Degenerate    bool
	FullyVisible  bool
	Relevant      bool
	ProjectedArea float64
}

// Counted reports whether the face contributes to the visible area
func (f FaceInfo) Counted() bool {
	return f.FullyVisible && f.Relevant
}

// Report contains the result of a drawing pass over a polyhedron
type Report struct {
	Name            string
	BoundingBox     geometry.BoundingBox
	Dimensions      geometry.Vector3
	Projection      geometry.Vector3
	VertexCount     int
	FaceCount       int
	EdgeCount       int
	VerticalFaces   int
	DegenerateFaces int
	VisibleFaces    int
	CountedFaces    int
	HiddenEdges     int
	PartialEdges    int
	SegmentCount    int
	TotalLength     float64
	VisibleLength   float64
	Area            float64
	Faces           []FaceInfo
	Edges           []EdgeInfo
}

// Analyze runs a drawing pass and collects per-face and per-edge results
func Analyze(p *shadow.Polyhedron) *Report {
	report := &Report{
		Name:        p.Name,
		BoundingBox: p.BoundingBox(),
		Projection:  p.Projection(),
		VertexCount: len(p.Vertices()),
		FaceCount:   len(p.Faces()),
	}
	report.Dimensions = report.BoundingBox.Size()
	report.Area = p.ComputeVisibleArea(nil)

	for i, f := range p.Faces() {
		info := FaceInfo{
			Index:        i,
			VertexCount:  len(f.Vertices),
			Centroid:     f.Centroid(),
			Vertical:     f.IsParallelToProjection(),
			Degenerate:   f.IsDegenerate(),
			FullyVisible: f.IsFullyVisible(),
			Relevant:     p.IsRelevant(f),
		}
		if !info.Degenerate {
			info.ProjectedArea = f.ProjectedArea(p.Scale())
		}

		if info.Vertical {
			report.VerticalFaces++
		}
		if info.Degenerate {
			report.DegenerateFaces++
		}
		if info.FullyVisible {
			report.VisibleFaces++
		}
		if info.Counted() {
			report.CountedFaces++
		}
		report.Faces = append(report.Faces, info)

		for j, e := range f.Edges {
			segments := e.VisibleSegments()
			length := e.Start.Distance(e.End)
			edge := EdgeInfo{
				Face:          i,
				Edge:          j,
				Start:         e.Start,
				End:           e.End,
				Length:        length,
				VisibleLength: length * e.VisibleFraction(),
				Segments:      len(segments),
			}

			if edge.IsHidden() {
				report.HiddenEdges++
			} else if edge.IsPartial() {
				report.PartialEdges++
			}
			report.SegmentCount += edge.Segments
			report.TotalLength += edge.Length
			report.VisibleLength += edge.VisibleLength
			report.Edges = append(report.Edges, edge)
		}
	}
	report.EdgeCount = len(report.Edges)

	return report
}

// FindHiddenEdges returns all edges that are completely shaded
func FindHiddenEdges(report *Report) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range report.Edges {
		if edge.IsHidden() {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindPartialEdges returns all edges that are visible only in parts
func FindPartialEdges(report *Report) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range report.Edges {
		if edge.IsPartial() {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLargestFaces returns the N counted faces with the largest projected area
func FindLargestFaces(report *Report, count int) []FaceInfo {
	var faces []FaceInfo
	for _, face := range report.Faces {
		if face.Counted() {
			faces = append(faces, face)
		}
	}

	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].ProjectedArea > faces[j].ProjectedArea
	})

	if count > len(faces) {
		count = len(faces)
	}

	return faces[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatEdge formats an edge with its one-based face and edge numbers
func FormatEdge(e EdgeInfo) string {
	return fmt.Sprintf("face %d edge %d: %s -> %s, visible %.1f%%",
		e.Face+1, e.Edge+1, FormatVector(e.Start), FormatVector(e.End), 100*e.VisibleLength/e.Length)
}

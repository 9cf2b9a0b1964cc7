package core

import "time"

// SectionResult holds the captured output of one tour section.
type SectionResult struct {
	Key     string        `json:"key" yaml:"key"`
	Title   string        `json:"title" yaml:"title"`
	Lines   []string      `json:"lines" yaml:"lines"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// TourResult holds the sections of one tour run in order.
type TourResult struct {
	Sections []SectionResult `json:"sections" yaml:"sections"`
}

// SectionInfo describes a registered section.
type SectionInfo struct {
	Key   string `json:"key" yaml:"key"`
	Title string `json:"title" yaml:"title"`
}

// SectionListResult holds the registered sections.
type SectionListResult struct {
	Sections []SectionInfo `json:"sections" yaml:"sections"`
}

// LineResult holds a single rendered printer line and its parts.
type LineResult struct {
	Values []string `json:"values" yaml:"values"`
	Line   string   `json:"line" yaml:"line"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the proposal-engine pipeline.
package types

import "time"

// Methodology is a development methodology offered on the input form.
type Methodology string

const (
	MethodWaterfall Methodology = "Waterfall"
	MethodPrototype Methodology = "Prototype"
	MethodAgile     Methodology = "Agile"
	MethodRAD       Methodology = "RAD"
)

// Methodologies lists the selectable development methodologies in form order.
var Methodologies = []Methodology{MethodWaterfall, MethodPrototype, MethodAgile, MethodRAD}

// ProposalInput holds the user-entered attributes that seed a generation
// session. JSON tags match the draft file layout, so exported drafts from
// earlier versions of the tool load unchanged.
type ProposalInput struct {
	// Title is the proposal title (judul).
	Title string `json:"judul" yaml:"judul"`

	// Problem describes the observed problem (masalah).
	Problem string `json:"masalah" yaml:"masalah"`

	// Solution describes the proposed system (solusi).
	Solution string `json:"solusi" yaml:"solusi"`

	// Method is the development methodology.
	Method Methodology `json:"metode" yaml:"metode"`

	// Organization names the target institution. When empty the proposal
	// is written in general-topic mode instead of naming one subject.
	Organization string `json:"instansi" yaml:"instansi"`

	// Interviewee describes who is interviewed (narasumber).
	Interviewee string `json:"narasumber" yaml:"narasumber"`

	// Observation describes what is observed on site (observasi).
	Observation string `json:"observasi" yaml:"observasi"`

	// Features lists the system's main features (fitur).
	Features string `json:"fitur" yaml:"fitur"`

	// Users describes the system's user roles (pengguna).
	Users string `json:"pengguna" yaml:"pengguna"`

	// Location is the proposal's locale (lokasi).
	Location string `json:"lokasi" yaml:"lokasi"`

	// SystemDescription is the free-text detailed description of the
	// system to be designed.
	SystemDescription string `json:"deskripsiSistem" yaml:"deskripsiSistem"`
}

// GeneralTopic reports whether the proposal covers a category of locations
// rather than one named organization.
func (p ProposalInput) GeneralTopic() bool { return p.Organization == "" }

// Complete reports whether the fields required to start a generation
// session are present.
func (p ProposalInput) Complete() bool {
	return p.Title != "" && p.Problem != "" && p.Solution != ""
}

// ScheduleEntry is one row of the four-period activity schedule.
type ScheduleEntry struct {
	ID       int    `json:"id" yaml:"id"`
	Activity string `json:"activity" yaml:"activity"`
	M1       bool   `json:"m1" yaml:"m1"`
	M2       bool   `json:"m2" yaml:"m2"`
	M3       bool   `json:"m3" yaml:"m3"`
	M4       bool   `json:"m4" yaml:"m4"`
}

// Draft bundles everything a draft file or history snapshot carries. The
// JSON field names mirror the original draft export format.
type Draft struct {
	Input    ProposalInput     `json:"smartInput" yaml:"smartInput"`
	Fields   map[string]string `json:"formData" yaml:"formData"`
	Schedule []ScheduleEntry   `json:"schedule" yaml:"schedule"`
}

// HistoryEntry is an immutable snapshot of a draft at save time.
type HistoryEntry struct {
	ID      int64     `json:"id" yaml:"id"`
	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`
	Title   string    `json:"judul" yaml:"judul"`
	Draft   Draft     `json:"draft" yaml:"draft"`
}

package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/demosh/demosh/pkg/demosh"
)

// RecordKind distinguishes transcript record variants.
type RecordKind int

const (
	// RecordCommand is a submitted command line, captured together with
	// the prompt that was showing when it was submitted.
	RecordCommand RecordKind = iota
	// RecordOutput is one line of command output.
	RecordOutput
)

// Record is one row of the session transcript. The transcript is
// append-only; clear empties it wholesale but no record is ever edited.
type Record struct {
	Kind   RecordKind
	Prompt string // command records only
	Text   string
	IsErr  bool // output records only
}

// Output builds a plain output record.
func Output(text string) Record {
	return Record{Kind: RecordOutput, Text: text}
}

// ErrorLine builds an error-flagged output record.
func ErrorLine(text string) Record {
	return Record{Kind: RecordOutput, Text: text, IsErr: true}
}

// State is the complete mutable state of one session.
type State struct {
	ID uuid.UUID

	// Profile-derived identity, fixed for the session lifetime.
	User         string
	ElevatedUser string
	Host         string
	Home         string

	Cwd        string
	Elevated   bool
	Transcript []Record
	History    []string

	recallIdx int // index into History, -1 when not recalling
}

// New creates a session positioned at home with standard privilege.
func New(user, elevatedUser, host, home string) *State {
	if user == "" {
		user = demosh.DefaultUser
	}
	if elevatedUser == "" {
		elevatedUser = demosh.DefaultElevatedUser
	}
	if host == "" {
		host = demosh.DefaultHost
	}
	if home == "" {
		home = demosh.DefaultHome
	}
	return &State{
		ID:           uuid.New(),
		User:         user,
		ElevatedUser: elevatedUser,
		Host:         host,
		Home:         home,
		Cwd:          home,
		recallIdx:    -1,
	}
}

// Identity returns the name shown by whoami and in the prompt.
func (s *State) Identity() string {
	if s.Elevated {
		return s.ElevatedUser
	}
	return s.User
}

// DisplayPath renders Cwd for the prompt, substituting the home alias for
// the home-directory prefix.
func (s *State) DisplayPath() string {
	if s.Cwd == s.Home {
		return demosh.HomeAlias
	}
	if rest, ok := strings.CutPrefix(s.Cwd, s.Home+"/"); ok {
		return demosh.HomeAlias + "/" + rest
	}
	return s.Cwd
}

// Prompt renders the full prompt, trailing space included:
// <identity>@<host>:<display><symbol>
func (s *State) Prompt() string {
	symbol := "$"
	if s.Elevated {
		symbol = "#"
	}
	return s.Identity() + "@" + s.Host + ":" + s.DisplayPath() + symbol + " "
}

// AppendCommand records a submitted line under the current prompt.
// Command records must precede their output records so transcript replay
// stays causally consistent.
func (s *State) AppendCommand(line string) {
	s.Transcript = append(s.Transcript, Record{Kind: RecordCommand, Prompt: s.Prompt(), Text: line})
}

// AppendInterrupted records an aborted input line with the interruption
// marker. The line is never dispatched.
func (s *State) AppendInterrupted(line string) {
	s.Transcript = append(s.Transcript, Record{Kind: RecordCommand, Prompt: s.Prompt(), Text: line + "^C"})
}

// Append adds output records to the transcript.
func (s *State) Append(records ...Record) {
	s.Transcript = append(s.Transcript, records...)
}

// ClearTranscript empties the transcript. History and the recall buffer
// survive, so history navigation keeps working after a clear.
func (s *State) ClearTranscript() {
	s.Transcript = nil
}

// PushHistory appends a submitted line to the recall buffer and leaves
// recall mode.
func (s *State) PushHistory(line string) {
	s.History = append(s.History, line)
	s.recallIdx = -1
}

// RecallPrev moves the recall cursor toward older entries, entering recall
// mode at the newest entry. It saturates at the oldest entry. The returned
// bool reports whether the input line should change.
func (s *State) RecallPrev() (string, bool) {
	if len(s.History) == 0 {
		return "", false
	}
	switch {
	case s.recallIdx == -1:
		s.recallIdx = len(s.History) - 1
	case s.recallIdx > 0:
		s.recallIdx--
	}
	return s.History[s.recallIdx], true
}

// RecallNext moves the recall cursor toward newer entries. Stepping past
// the newest entry leaves recall mode and yields an empty line, telling
// the caller to clear the input. Outside recall mode it is a no-op.
func (s *State) RecallNext() (string, bool) {
	if s.recallIdx == -1 {
		return "", false
	}
	if s.recallIdx < len(s.History)-1 {
		s.recallIdx++
		return s.History[s.recallIdx], true
	}
	s.recallIdx = -1
	return "", true
}

// ResetRecall leaves recall mode without touching the input line.
func (s *State) ResetRecall() {
	s.recallIdx = -1
}

// Recalling reports whether the cursor is inside the recall buffer.
func (s *State) Recalling() bool {
	return s.recallIdx != -1
}

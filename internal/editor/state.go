package editor

import (
	"GopherSky/internal/logger"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// DefaultStatePath is where the viewer keeps inspector state between runs.
const DefaultStatePath = "gophersky_editor.json"

// EditorState is the persisted inspector layout. Foldouts are keyed by
// group name and start closed.
type EditorState struct {
	ShowInspector bool            `json:"show_inspector"`
	Foldouts      map[string]bool `json:"foldouts"`
	LastPreset    string          `json:"last_preset,omitempty"`
}

func NewEditorState() *EditorState {
	foldouts := make(map[string]bool, len(Groups))
	for _, g := range Groups {
		foldouts[g] = false
	}
	return &EditorState{
		ShowInspector: true,
		Foldouts:      foldouts,
	}
}

// Open reports whether a foldout is expanded.
func (s *EditorState) Open(group string) bool {
	return s.Foldouts[group]
}

func (s *EditorState) SetOpen(group string, open bool) {
	if s.Foldouts == nil {
		s.Foldouts = make(map[string]bool)
	}
	s.Foldouts[group] = open
}

// LoadEditorState reads the state file. A missing file yields the defaults
// without error.
func LoadEditorState(path string) (*EditorState, error) {
	state := NewEditorState()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Log.Debug("No editor state found, using defaults", zap.String("path", path))
		return state, nil
	}
	if err != nil {
		return state, fmt.Errorf("read editor state: %w", err)
	}

	if err := json.Unmarshal(data, state); err != nil {
		return NewEditorState(), fmt.Errorf("parse editor state %q: %w", path, err)
	}
	if state.Foldouts == nil {
		state.Foldouts = NewEditorState().Foldouts
	}

	logger.Log.Info("Editor state loaded", zap.String("path", path))
	return state, nil
}

// SaveEditorState writes the state as indented JSON.
func SaveEditorState(path string, state *EditorState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal editor state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write editor state: %w", err)
	}
	return nil
}

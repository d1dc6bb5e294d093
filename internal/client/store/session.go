package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SessionFile persists the auth slice as JSON at a fixed path. Only the
// auth sub-tree survives restarts; every other slice starts empty.
type SessionFile struct {
	path string
}

func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Load reads the persisted session. A missing file is not an error: it
// means a logged-out start (ok=false). A corrupt file is reported but
// should be treated the same way by the caller.
func (f *SessionFile) Load() (AuthState, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return AuthState{}, false, nil
		}
		return AuthState{}, false, fmt.Errorf("read session: %w", err)
	}

	var auth AuthState
	if err := json.Unmarshal(data, &auth); err != nil {
		return AuthState{}, false, fmt.Errorf("decode session: %w", err)
	}
	return auth, true, nil
}

// Save writes the auth slice, creating parent directories as needed.
// The write goes through a temp file and rename so a crash mid-write
// cannot leave a half-written session behind.
func (f *SessionFile) Save(auth AuthState) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(auth, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"visitas360/internal/domain"
)

const (
	profileFile = "profile.json"
	tokenFile   = "session_token"
)

// FileStore persists the session as two records under the workspace dir:
// a durable profile record and a separate token record. Restore only
// succeeds when both are present and readable.
type FileStore struct {
	Dir string
}

// NewFileStore returns a file store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (f *FileStore) profilePath() string { return filepath.Join(f.Dir, profileFile) }
func (f *FileStore) tokenPath() string   { return filepath.Join(f.Dir, tokenFile) }

// Save writes both records. The token record is kept out of the profile
// JSON so clearing one invalidates the whole session.
func (f *FileStore) Save(p domain.Profile) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return err
	}
	token := p.Token
	p.Token = ""
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.profilePath(), data, 0o644); err != nil {
		return err
	}
	return os.WriteFile(f.tokenPath(), []byte(token), 0o600)
}

// Load reads both records. Read or parse failures are treated as
// "no session".
func (f *FileStore) Load() (domain.Profile, bool) {
	var p domain.Profile
	data, err := os.ReadFile(f.profilePath())
	if err != nil {
		return p, false
	}
	token, err := os.ReadFile(f.tokenPath())
	if err != nil || len(token) == 0 {
		return p, false
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, false
	}
	p.Token = string(token)
	return p, true
}

// Clear removes both records. Missing files are fine.
func (f *FileStore) Clear() error {
	err1 := os.Remove(f.profilePath())
	err2 := os.Remove(f.tokenPath())
	if err1 != nil && !os.IsNotExist(err1) {
		return err1
	}
	if err2 != nil && !os.IsNotExist(err2) {
		return err2
	}
	return nil
}

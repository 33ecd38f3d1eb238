package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Durable slot names used by the auth flow.
const (
	SlotAuthToken       = "auth_token"
	SlotUnverifiedEmail = "unverified_email"
)

// KV stores small named values durably, one file per slot. It backs the
// session-resume token and the pending-verification marker.
type KV struct {
	fs  afero.Fs
	dir string
}

// NewKV creates a KV rooted at the given data directory.
func NewKV(fs afero.Fs, dir string) *KV {
	return &KV{fs: fs, dir: dir}
}

func (k *KV) slotPath(name string) string {
	return filepath.Join(k.dir, name)
}

// Get returns the slot value, or "" when the slot is absent.
func (k *KV) Get(name string) string {
	raw, err := afero.ReadFile(k.fs, k.slotPath(name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// Set writes the slot value.
func (k *KV) Set(name, value string) error {
	if err := k.fs.MkdirAll(k.dir, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(k.fs, k.slotPath(name), []byte(value), 0o644)
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (k *KV) Delete(name string) error {
	err := k.fs.Remove(k.slotPath(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

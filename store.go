package gagyebu

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Per-user file names. Each user owns exactly two flat text files, UTF-8,
// no binary formats, no checksums.
const (
	LedgerFileSuffix   = "_HL.txt"
	SettingsFileSuffix = "_setting.txt"
)

// Store locates and persists one user's ledger and settings files. All
// mutating writes are whole-file rewrites staged through a temp file and
// published by rename, so a failed write never leaves a half-written file.
//
// The design assumes exclusive single-process access to the files for the
// duration of a session; there is no locking against external writers.
type Store struct {
	Dir  string // data directory
	User string // user identifier, the file name prefix
}

// NewStore creates a store for the given user's files under dir.
func NewStore(dir, user string) *Store {
	return &Store{Dir: dir, User: user}
}

// LedgerPath returns the path of the user's ledger file.
func (s *Store) LedgerPath() string {
	return filepath.Join(s.Dir, s.User+LedgerFileSuffix)
}

// SettingsPath returns the path of the user's settings file.
func (s *Store) SettingsPath() string {
	return filepath.Join(s.Dir, s.User+SettingsFileSuffix)
}

// LoadLedger reads the user's whole ledger file into memory. An absent
// file is treated as an empty ledger after lazily creating the file.
func (s *Store) LoadLedger() (*Ledger, error) {
	f, err := os.Open(s.LedgerPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("ledger file %s does not exist, creating an empty one", s.LedgerPath())
		if err := os.WriteFile(s.LedgerPath(), nil, 0644); err != nil {
			return nil, fmt.Errorf("could not create ledger file: %w", err)
		}
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file: %w", err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	var corrupt *CorruptError
	if errors.As(err, &corrupt) {
		corrupt.File = s.LedgerPath()
		return nil, corrupt
	}
	return ledger, err
}

// SaveLedger rewrites the user's whole ledger file in canonical form.
func (s *Store) SaveLedger(l *Ledger) error {
	return writeFileAtomic(s.LedgerPath(), func(w io.Writer) error {
		return EncodeLedger(w, l)
	})
}

// AppendRecord appends a brand-new record to the ledger file after
// re-reading the whole file and re-checking solvency against it. This is
// the only mutation that does not rewrite the file wholesale: the record
// is appended, after repairing a missing trailing newline if the file was
// written by hand.
func (s *Store) AppendRecord(rec Record) (int64, error) {
	ledger, err := s.LoadLedger()
	if err != nil {
		return 0, err
	}
	balance, err := ledger.Append(rec)
	if err != nil {
		return 0, err
	}

	prev, err := os.ReadFile(s.LedgerPath())
	if err != nil {
		return 0, fmt.Errorf("could not read ledger file: %w", err)
	}
	f, err := os.OpenFile(s.LedgerPath(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("could not open ledger file: %w", err)
	}
	defer f.Close()
	if len(prev) > 0 && prev[len(prev)-1] != '\n' {
		if _, err := f.WriteString("\n"); err != nil {
			return 0, fmt.Errorf("could not repair trailing newline: %w", err)
		}
	}
	if err := EncodeRecord(f, rec); err != nil {
		return 0, err
	}
	return balance, nil
}

// LoadSettings reads the user's settings file. An absent file is lazily
// created with the default categories and no budgets.
func (s *Store) LoadSettings() (*Settings, error) {
	f, err := os.Open(s.SettingsPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("settings file %s does not exist, creating the default one", s.SettingsPath())
		settings := DefaultSettings()
		if err := s.SaveSettings(settings); err != nil {
			return nil, err
		}
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open settings file: %w", err)
	}
	defer f.Close()

	settings, err := DecodeSettings(f)
	var corrupt *CorruptError
	if errors.As(err, &corrupt) {
		corrupt.File = s.SettingsPath()
		return nil, corrupt
	}
	return settings, err
}

// SaveSettings rewrites the user's whole settings file.
func (s *Store) SaveSettings(settings *Settings) error {
	return writeFileAtomic(s.SettingsPath(), func(w io.Writer) error {
		return EncodeSettings(w, settings)
	})
}

// SaveLedgerAndSettings rewrites both of the user's files as one unit, for
// operations that must keep them mutually consistent. Both images are fully
// staged before either is published; if the settings publish then fails,
// the ledger is rolled back to its previous image. Only a crash between the
// two renames can leave the files apart, and the ledger-first order makes
// that state repairable: the registry still holds a code the ledger no
// longer references, so retrying the operation converges.
func (s *Store) SaveLedgerAndSettings(l *Ledger, settings *Settings) error {
	prev, err := os.ReadFile(s.LedgerPath())
	if err != nil {
		return fmt.Errorf("could not read ledger file: %w", err)
	}

	ledgerImg, err := stageFile(s.LedgerPath(), func(w io.Writer) error {
		return EncodeLedger(w, l)
	})
	if err != nil {
		return err
	}
	defer ledgerImg.discard()
	settingsImg, err := stageFile(s.SettingsPath(), func(w io.Writer) error {
		return EncodeSettings(w, settings)
	})
	if err != nil {
		return err
	}
	defer settingsImg.discard()

	if err := ledgerImg.publish(); err != nil {
		return err
	}
	if err := settingsImg.publish(); err != nil {
		restore, rerr := stageFile(s.LedgerPath(), func(w io.Writer) error {
			_, werr := w.Write(prev)
			return werr
		})
		if rerr == nil {
			if restore.publish() != nil {
				restore.discard()
			}
		}
		return err
	}
	return nil
}

// stagedFile is a fully written temp image awaiting publication by rename.
type stagedFile struct {
	tmp  string
	path string
}

// stageFile writes the content to a temp file next to path. The target is
// untouched until publish.
func stageFile(path string, write func(io.Writer) error) (*stagedFile, error) {
	dir, base := filepath.Split(path)
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("could not stage %s: %w", path, err)
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("could not stage %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("could not stage %s: %w", path, err)
	}
	return &stagedFile{tmp: tmp.Name(), path: path}, nil
}

// publish moves the staged image onto its target.
func (f *stagedFile) publish() error {
	if err := os.Rename(f.tmp, f.path); err != nil {
		return fmt.Errorf("could not publish %s: %w", f.path, err)
	}
	return nil
}

// discard removes the staged image. Harmless after a successful publish.
func (f *stagedFile) discard() { os.Remove(f.tmp) }

// writeFileAtomic stages the content in a temp file next to path and
// publishes it by rename.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	img, err := stageFile(path, write)
	if err != nil {
		return err
	}
	defer img.discard()
	return img.publish()
}

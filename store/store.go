package store

import (
	"encoding/json"
	"os"
	"path"

	"github.com/rotisserie/eris"

	"github.com/multa-cli/multa/card"
	"github.com/multa-cli/multa/log"
	"github.com/multa-cli/multa/util"
)

// Store reads and writes per-profile progress files in a single directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on the
// first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// document is the on-disk layout of a profile file.
type document struct {
	Cards []card.Card `json:"cards"`
}

func (s *Store) profilePath(profile string) string {
	return path.Join(s.dir, profile)
}

// Load returns the saved cards of a profile. A profile that has never been
// saved yields no cards and no error.
func (s *Store) Load(profile string) ([]card.Card, error) {
	profilePath := s.profilePath(profile)
	if !util.FileExists(profilePath) {
		log.Debug("No saved progress at `%s`.\n", profilePath)
		return nil, nil
	}

	data, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read profile %q", profile)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "profile %q is corrupt", profile)
	}
	log.Debug("Loaded %d cards from `%s`.\n", len(doc.Cards), profilePath)
	return doc.Cards, nil
}

// Save writes the cards of a profile, creating the store directory as needed.
func (s *Store) Save(profile string, cards []card.Card) error {
	if cards == nil {
		cards = []card.Card{}
	}
	data, err := json.Marshal(document{Cards: cards})
	if err != nil {
		return eris.Wrapf(err, "failed to encode profile %q", profile)
	}
	if err := os.MkdirAll(s.dir, 0775); err != nil {
		return eris.Wrapf(err, "failed to create store directory %q", s.dir)
	}
	if err := os.WriteFile(s.profilePath(profile), data, util.FileMode); err != nil {
		return eris.Wrapf(err, "failed to write profile %q", profile)
	}
	return nil
}

// List returns the names of all saved profiles.
func (s *Store) List() ([]string, error) {
	if !util.DirExists(s.dir) {
		return nil, nil
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read store directory %q", s.dir)
	}

	profiles := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			profiles = append(profiles, entry.Name())
		}
	}
	return profiles, nil
}

// Remove deletes the saved progress of a profile.
func (s *Store) Remove(profile string) error {
	profilePath := s.profilePath(profile)
	if !util.FileExists(profilePath) {
		return eris.Errorf("profile %q has no saved progress", profile)
	}
	if err := os.Remove(profilePath); err != nil {
		return eris.Wrapf(err, "failed to remove profile %q", profile)
	}
	return nil
}

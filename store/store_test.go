package store

import (
	"os"
	"path"
	"testing"

	"github.com/multa-cli/multa/card"
)

func TestSaveLoad(t *testing.T) {
	st := New(path.Join(t.TempDir(), "multa"))

	good := card.Good
	seen := uint64(1600000000)
	cards := []card.Card{
		{
			Value:      card.Factors{X: 9, Y: 9},
			Interval:   3,
			Status:     card.Status{Kind: card.Learning, Due: 1},
			LastResult: &good,
			LastSeen:   &seen,
		},
	}

	if err := st.Save("default", cards); err != nil {
		t.Fatal(err)
	}
	loaded, err := st.Load("default")
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatal("unexpected number of cards")
	}
	if loaded[0].Value != cards[0].Value || loaded[0].Status != cards[0].Status {
		t.Fatal("loaded card does not match the saved one")
	}
	if loaded[0].LastResult == nil || *loaded[0].LastResult != good {
		t.Fatal("unexpected last result")
	}
	if loaded[0].LastSeen == nil || *loaded[0].LastSeen != seen {
		t.Fatal("unexpected last seen")
	}
}

// The document layout must stay compatible with the original save files.
func TestSavedDocumentFormat(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	cards := []card.Card{
		{
			Value:    card.Factors{X: 2, Y: 5},
			Interval: 2,
			Status:   card.Status{Kind: card.Learning, Due: 0},
		},
	}
	if err := st.Save("default", cards); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path.Join(dir, "default"))
	if err != nil {
		t.Fatal(err)
	}
	expected := `{"cards":[{"value":[2,5],"interval":2,"status":{"Learning":0},"last_result":null,"last_seen":null}]}`
	if string(data) != expected {
		t.Fatalf("unexpected document: %s", data)
	}
}

func TestLoadMissingProfile(t *testing.T) {
	st := New(t.TempDir())

	cards, err := st.Load("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if cards != nil {
		t.Fatal("a missing profile must yield no cards")
	}
}

func TestLoadCorruptProfile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(path.Join(dir, "broken"), []byte("not json"), 0664); err != nil {
		t.Fatal(err)
	}

	st := New(dir)
	if _, err := st.Load("broken"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestList(t *testing.T) {
	st := New(path.Join(t.TempDir(), "multa"))

	profiles, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 0 {
		t.Fatal("a missing store directory must yield no profiles")
	}

	if err := st.Save("alice", []card.Card{}); err != nil {
		t.Fatal(err)
	}
	if err := st.Save("bob", []card.Card{}); err != nil {
		t.Fatal(err)
	}

	profiles, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 2 {
		t.Fatal("unexpected number of profiles")
	}
	if profiles[0] != "alice" || profiles[1] != "bob" {
		t.Fatalf("unexpected profiles: %v", profiles)
	}
}

func TestRemove(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Save("gone", []card.Card{}); err != nil {
		t.Fatal(err)
	}
	if err := st.Remove("gone"); err != nil {
		t.Fatal(err)
	}

	profiles, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 0 {
		t.Fatal("the profile must be gone")
	}

	if err := st.Remove("gone"); err == nil {
		t.Fatal("removing a missing profile must fail")
	}
}

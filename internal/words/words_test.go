package words

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go-hangman/internal/utils"
)

func writeList(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadWordFileFiltersAndUppercases(t *testing.T) {
	path := writeList(t, t.TempDir(), "w.txt", "apple\n\n  River \nc3po\ndon't\nquickly\n")
	got, err := ReadWordFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"APPLE", "RIVER", "QUICKLY"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFileSourceUsesFirstUsableCandidate(t *testing.T) {
	dir := t.TempDir()
	empty := writeList(t, dir, "empty.txt", "123\n\n")
	good := writeList(t, dir, "good.txt", "tree\nbook\n")
	other := writeList(t, dir, "other.txt", "music\n")

	src := &FileSource{Candidates: []string{filepath.Join(dir, "missing.txt"), empty, good, other}}
	got := src.LoadWords()
	if !reflect.DeepEqual(got, []string{"TREE", "BOOK"}) {
		t.Errorf("got %v", got)
	}
}

func TestFileSourceFallsBack(t *testing.T) {
	src := &FileSource{Candidates: []string{filepath.Join(t.TempDir(), "nope.txt")}}
	got := src.LoadWords()
	if !reflect.DeepEqual(got, Fallback) {
		t.Errorf("got %v, want fallback", got)
	}
	got[0] = "CHANGED"
	if Fallback[0] != "PYTHON" {
		t.Error("LoadWords returned the shared fallback slice")
	}
}

func TestDefaultCandidatesPutsConfiguredFirst(t *testing.T) {
	c := DefaultCandidates("/tmp/words.txt")
	if c[0] != "/tmp/words.txt" || c[1] != DefaultFileName {
		t.Errorf("candidates = %v", c)
	}
	if c := DefaultCandidates(""); c[0] != DefaultFileName {
		t.Errorf("candidates without config = %v", c)
	}
}

func TestPickerChoosesFromFilteredList(t *testing.T) {
	p := NewPicker(StaticSource{"cat", "d0g", "", "Go"}, utils.NewPRNGService(9))
	if p.Len() != 2 {
		t.Fatalf("len = %d, want 2", p.Len())
	}
	for i := 0; i < 50; i++ {
		if w := p.Next(); w != "CAT" && w != "GO" {
			t.Fatalf("Next() = %q", w)
		}
	}
}

func TestPickerFallsBackWhenNothingValid(t *testing.T) {
	p := NewPicker(StaticSource{"42", "?"}, utils.NewPRNGService(9))
	if p.Len() != len(Fallback) {
		t.Errorf("len = %d, want %d", p.Len(), len(Fallback))
	}
}

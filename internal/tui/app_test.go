package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo-cli/internal/config"
	"todo-cli/internal/model"
	"todo-cli/internal/render"
	"todo-cli/internal/session"
	"todo-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	render.SetGlyphs(render.GlyphsASCII)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyCtrlW     = tea.KeyMsg{Type: tea.KeyCtrlW}
	keyCtrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
	keySpace     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
)

func newTestModel(t *testing.T, persist string, items ...model.Item) (appModel, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.md")
	sess := session.New(store.NewList(items))
	return newAppModel(store.File{Path: path}, sess, Options{Persist: persist}), path
}

func press(t *testing.T, m appModel, keys ...tea.KeyMsg) (appModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(appModel)
	}
	return m, cmd
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewItemIsPersisted(t *testing.T) {
	m, path := newTestModel(t, config.PersistAlways)

	m, cmd := press(t, m, runes("n"), runes("e"), runes("g"), runes("g"), runes("s"), keyEnter)
	if isQuit(cmd) {
		t.Fatalf("unexpected quit")
	}
	if !m.sess.Mode().IsView() {
		t.Fatalf("expected View mode, got %v", m.sess.Mode())
	}
	if got, want := readFile(t, path), "# TODO\n\n- [ ] eggs\n"; got != want {
		t.Fatalf("file\n got: %q\nwant: %q", got, want)
	}
}

func TestQInTextModeIsText(t *testing.T) {
	m, _ := newTestModel(t, config.PersistAlways)

	m, cmd := press(t, m, runes("n"), runes("q"))
	if isQuit(cmd) {
		t.Fatalf("q must insert text while composing")
	}
	if m.sess.Draft() != "q" {
		t.Fatalf("expected draft q, got %q", m.sess.Draft())
	}

	_, cmd = press(t, m, keyCtrlC)
	if !isQuit(cmd) {
		t.Fatalf("ctrl+c must quit from NewItem")
	}
}

func TestQuitFromView(t *testing.T) {
	m, _ := newTestModel(t, config.PersistAlways, model.Item{Text: "a"})
	if _, cmd := press(t, m, runes("q")); !isQuit(cmd) {
		t.Fatalf("expected q to quit")
	}
}

func TestToggleDeleteReorderPersist(t *testing.T) {
	m, path := newTestModel(t, config.PersistAlways,
		model.Item{Text: "a"}, model.Item{Text: "b"}, model.Item{Text: "c"})

	m, _ = press(t, m, keyDown, keySpace)
	if got := readFile(t, path); !strings.Contains(got, "- [x] b") {
		t.Fatalf("toggle not saved: %q", got)
	}

	m, _ = press(t, m, runes("o"))
	if got, want := readFile(t, path), "# TODO\n\n- [x] b\n\n- [ ] a\n\n- [ ] c\n"; got != want {
		t.Fatalf("reorder not saved\n got: %q\nwant: %q", got, want)
	}

	_, _ = press(t, m, runes("d"))
	if got, want := readFile(t, path), "# TODO\n\n- [ ] a\n\n- [ ] c\n"; got != want {
		t.Fatalf("delete not saved\n got: %q\nwant: %q", got, want)
	}
}

func TestEditWithBackspaceAndWordDelete(t *testing.T) {
	m, path := newTestModel(t, config.PersistAlways, model.Item{Text: "buy oat milk"})

	m, _ = press(t, m, keyEnter, keyCtrlW, keyBackspace, runes("!"), keyEnter)
	if got := readFile(t, path); !strings.Contains(got, "- [ ] buy oa!") {
		t.Fatalf("edit not saved: %q", got)
	}
	if !m.sess.Mode().IsView() {
		t.Fatalf("expected View after confirm, got %v", m.sess.Mode())
	}
}

func TestPasteInsertsEveryRune(t *testing.T) {
	m, _ := newTestModel(t, config.PersistAlways)

	m, _ = press(t, m, runes("n"), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("two\nwords"), Paste: true}, keySpace)
	if m.sess.Draft() != "twowords " {
		t.Fatalf("unexpected draft %q", m.sess.Draft())
	}
}

func TestPersistAlwaysWritesOnNavigation(t *testing.T) {
	m, path := newTestModel(t, config.PersistAlways, model.Item{Text: "a"})
	_, _ = press(t, m, runes("j"))
	if got := readFile(t, path); got != "# TODO\n\n- [ ] a\n" {
		t.Fatalf("expected navigation to save, got %q", got)
	}
}

func TestPersistChangesSkipsNavigation(t *testing.T) {
	m, path := newTestModel(t, config.PersistChanges, model.Item{Text: "a"})
	m, _ = press(t, m, runes("j"), runes("k"), runes("z"))
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file after pure navigation, stat err=%v", err)
	}
	_, _ = press(t, m, runes("j"), keySpace)
	if got := readFile(t, path); got != "# TODO\n\n- [x] a\n" {
		t.Fatalf("expected toggle to save, got %q", got)
	}
}

func TestSaveFailureIsRetried(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "later")
	path := filepath.Join(dir, "todo.md")
	var logs bytes.Buffer
	sess := session.New(store.NewList(nil))
	m := newAppModel(store.File{Path: path}, sess, Options{Logger: log.New(&logs)})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	m = next.(appModel)

	m, cmd := press(t, m, runes("n"), runes("x"), keyEnter)
	if isQuit(cmd) {
		t.Fatalf("save failure must not quit")
	}
	if m.saveErr == nil || !m.dirty {
		t.Fatalf("expected a pending save error")
	}
	if !strings.Contains(xansi.Strip(m.View()), "not saved") {
		t.Fatalf("expected a warning in the view")
	}
	if !strings.Contains(logs.String(), "save failed") {
		t.Fatalf("expected the failure to be logged, got %q", logs.String())
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	m, _ = press(t, m, runes("j"))
	if m.saveErr != nil || m.dirty {
		t.Fatalf("expected the retry to succeed: %v", m.saveErr)
	}
	if got := readFile(t, path); got != "# TODO\n\n- [ ] x\n" {
		t.Fatalf("unexpected file after retry: %q", got)
	}
}

func TestStateMachineFailureQuitsWithError(t *testing.T) {
	list := store.NewList([]model.Item{{Text: "a"}})
	sess := session.New(list)
	m := newAppModel(store.File{Path: filepath.Join(t.TempDir(), "todo.md")}, sess, Options{})

	m, _ = press(t, m, keyEnter)
	if err := list.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	m, cmd := press(t, m, runes("x"))
	if !isQuit(cmd) {
		t.Fatalf("expected quit on state machine failure")
	}
	if m.err == nil || !strings.Contains(m.err.Error(), "out of range") {
		t.Fatalf("expected an index error, got %v", m.err)
	}
}

func TestStateMachineFailureSavesPendingChanges(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "later")
	path := filepath.Join(dir, "todo.md")
	list := store.NewList([]model.Item{{Text: "a"}, {Text: "b"}})
	m := newAppModel(store.File{Path: path}, session.New(list), Options{})

	// The directory is missing, so the toggle stays unsaved.
	m, _ = press(t, m, keyDown, keySpace, keyEnter)
	if !m.dirty {
		t.Fatalf("expected an unsaved toggle")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := list.Remove(1); err != nil {
		t.Fatalf("remove: %v", err)
	}

	m, cmd := press(t, m, runes("x"))
	if !isQuit(cmd) || m.err == nil {
		t.Fatalf("expected quit with an error, err=%v", m.err)
	}
	if got := readFile(t, path); got != "# TODO\n\n- [ ] a\n" {
		t.Fatalf("pending changes not flushed before quitting: %q", got)
	}
}

func TestViewShowsItemsDraftAndHelp(t *testing.T) {
	m, _ := newTestModel(t, config.PersistAlways, model.Item{Text: "milk", Complete: true})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m = next.(appModel)

	out := xansi.Strip(m.View())
	if !strings.Contains(out, "-ok milk") {
		t.Fatalf("missing item row: %q", out)
	}
	if !strings.Contains(out, "VIEW") || !strings.Contains(out, "toggle") {
		t.Fatalf("missing view help: %q", out)
	}

	m, _ = press(t, m, runes("n"), runes("h"), runes("i"))
	rows := strings.Split(xansi.Strip(m.View()), "\n")
	if len(rows) != 10 {
		t.Fatalf("expected a full-height frame, got %d rows", len(rows))
	}
	if strings.TrimRight(rows[1], " ") != "hi" {
		t.Fatalf("draft not drawn below the last item: %q", rows[1])
	}
	if !strings.Contains(rows[9], "NEW") || !strings.Contains(rows[9], "delete word") {
		t.Fatalf("missing text-mode help: %q", rows[9])
	}
}

func TestKeyMapDecoding(t *testing.T) {
	k := newKeyMap()
	view := session.View()

	cases := []struct {
		msg  tea.KeyMsg
		mode session.Mode
		want session.Op
	}{
		{runes("q"), view, session.OpQuit},
		{keyCtrlC, view, session.OpQuit},
		{runes("d"), view, session.OpDelete},
		{keySpace, view, session.OpToggle},
		{runes("n"), view, session.OpNew},
		{keyEnter, view, session.OpEdit},
		{runes("j"), view, session.OpDown},
		{keyDown, view, session.OpDown},
		{runes("k"), view, session.OpUp},
		{tea.KeyMsg{Type: tea.KeyUp}, view, session.OpUp},
		{runes("o"), view, session.OpReorder},
		{runes("z"), view, session.OpNone},
		{keyEnter, session.NewItem(), session.OpConfirm},
		{keyBackspace, session.EditItem(1), session.OpBackspace},
		{keyCtrlW, session.NewItem(), session.OpWordDelete},
		{keyCtrlC, session.EditItem(1), session.OpQuit},
		{runes("q"), session.NewItem(), session.OpInsert},
		{keySpace, session.NewItem(), session.OpInsert},
		{tea.KeyMsg{Type: tea.KeyTab}, session.NewItem(), session.OpNone},
	}
	for _, tc := range cases {
		got := k.commands(tc.msg, tc.mode)
		if len(got) != 1 || got[0].Op != tc.want {
			t.Fatalf("%q in %v: got %+v, want %v", tc.msg.String(), tc.mode, got, tc.want)
		}
	}
}

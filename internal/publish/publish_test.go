package publish

import (
	"strings"
	"testing"

	"todo-cli/internal/model"
)

var sample = []model.Item{{Text: "buy milk"}, {Text: "walk dog", Complete: true}}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	md := RenderMarkdown(sample, RenderOptions{})
	want := "# TODO\n\n_1 of 2 complete_\n\n- [ ] buy milk\n- [x] walk dog\n"
	if md != want {
		t.Fatalf("markdown\n got: %q\nwant: %q", md, want)
	}
}

func TestRenderMarkdown_HideComplete(t *testing.T) {
	t.Parallel()

	md := RenderMarkdown(sample, RenderOptions{HideComplete: true})
	if strings.Contains(md, "walk dog") {
		t.Fatalf("completed item not hidden: %q", md)
	}
	if !strings.Contains(md, "_1 of 2 complete_") {
		t.Fatalf("summary should still count every item: %q", md)
	}
}

func TestRenderTerminal(t *testing.T) {
	t.Parallel()

	out, err := RenderTerminal(sample, RenderOptions{Style: "notty", Width: 40})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"TODO", "buy milk", "walk dog", "1 of 2 complete"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderTerminal_UnknownStyle(t *testing.T) {
	t.Parallel()

	if _, err := RenderTerminal(sample, RenderOptions{Style: "no-such-style"}); err == nil {
		t.Fatalf("expected an error for an unknown style")
	}
}

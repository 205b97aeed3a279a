package markup

import (
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_PlainTextIsOneUnstyledRun(t *testing.T) {
	for _, s := range []string{"a", "hello world", "ünïcødé テキスト", "multi\nline"} {
		runs := Render(s)
		require.Len(t, runs, 1, s)
		assert.Equal(t, Run{Text: s}, runs[0])
	}
}

func TestRender_Examples(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Run
	}{
		{
			name: "bold",
			in:   "[b]Hi",
			want: []Run{{Text: "Hi", Style: Style{Bold: true}}},
		},
		{
			name: "italic then color",
			in:   "[i][FF0000]Bye",
			want: []Run{{Text: "Bye", Style: Style{Italic: true, Color: "#FF0000"}}},
		},
		{
			name: "cumulative styles with lowercase hex",
			in:   "A[b]B[i]C[00ff00]D",
			want: []Run{
				{Text: "A"},
				{Text: "B", Style: Style{Bold: true}},
				{Text: "C", Style: Style{Bold: true, Italic: true}},
				{Text: "D", Style: Style{Bold: true, Italic: true, Color: "#00FF00"}},
			},
		},
		{
			name: "unknown tag is literal",
			in:   "[x]",
			want: []Run{{Text: "[x]"}},
		},
		{
			name: "uppercase tags are literal",
			in:   "[B]x[I]",
			want: []Run{{Text: "[B]x[I]"}},
		},
		{
			name: "later color overrides earlier",
			in:   "[FF0000]r[0000ff]b",
			want: []Run{
				{Text: "r", Style: Style{Color: "#FF0000"}},
				{Text: "b", Style: Style{Color: "#0000FF"}},
			},
		},
		{
			name: "malformed color passes through",
			in:   "[FF00]x[GG0000]y[FF00000]",
			want: []Run{{Text: "[FF00]x[GG0000]y[FF00000]"}},
		},
		{
			name: "repeated bold is harmless",
			in:   "[b]a[b]b",
			want: []Run{
				{Text: "a", Style: Style{Bold: true}},
				{Text: "b", Style: Style{Bold: true}},
			},
		},
		{
			name: "marker split by unicode",
			in:   "é[b]テ",
			want: []Run{
				{Text: "é"},
				{Text: "テ", Style: Style{Bold: true}},
			},
		},
		{
			name: "bracket before marker",
			in:   "[[b]x]",
			want: []Run{
				{Text: "["},
				{Text: "x]", Style: Style{Bold: true}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.in))
		})
	}
}

func TestRender_EmptyAndMarkerOnly(t *testing.T) {
	assert.Nil(t, Render(""))
	assert.Nil(t, Render("[b][i][ABCDEF]"))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "Hi there", Strip("[b]Hi[00ff00] there"))
	assert.Equal(t, "[x]", Strip("[x]"))
	assert.Equal(t, "", Strip("[i]"))
}

// markerRE mirrors the marker grammar for the property checks below.
var markerRE = regexp.MustCompile(`\[b\]|\[i\]|\[[0-9A-Fa-f]{6}\]`)

func checkRunProperties(t *testing.T, s string) {
	t.Helper()
	runs := Render(s)

	for i, r := range runs {
		if r.Text == "" {
			t.Fatalf("run %d is empty for %q", i, s)
		}
	}
	if got, want := Text(runs), markerRE.ReplaceAllString(s, ""); got != want {
		t.Fatalf("Text(Render(%q))=%q, want %q", s, got, want)
	}
	if got := Strip(s); got != Text(runs) {
		t.Fatalf("Strip(%q)=%q, want %q", s, got, Text(runs))
	}
}

func TestRender_Properties(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"[b]",
		"a[b]b[i]c[123abc]d",
		"[b][b][b]x",
		"[[b]]",
		"[FFFFFF][000000]",
		"x[FfFfFf]y",
		"[i]\n[b]\n",
		"😀[b]😀",
	}
	for _, s := range inputs {
		checkRunProperties(t, s)
	}
}

func FuzzRender(f *testing.F) {
	for _, s := range []string{"", "[b]Hi", "[i][FF0000]Bye", "A[b]B[i]C[00ff00]D", "[x]", "[[b]x]"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip()
		}
		runs := Render(s)
		for _, r := range runs {
			if r.Text == "" {
				t.Fatalf("empty run for %q", s)
			}
			if r.Color != "" && !IsHex6(r.Color[1:]) {
				t.Fatalf("bad color %q for %q", r.Color, s)
			}
		}
		if utf8.RuneCountInString(Text(runs)) > utf8.RuneCountInString(s) {
			t.Fatalf("render grew the text for %q", s)
		}
	})
}

package mdv

import "testing"

func TestStripFrontMatter(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"yaml", "---\ntitle: x\n---\nbody\n", "body\n"},
		{"toml", "+++\ntitle = \"x\"\n+++\nbody\n", "body\n"},
		{"json", ";;;\n{\"title\": \"x\"}\n;;;\nbody\n", "body\n"},
		{"bom", "\xef\xbb\xbf---\ntitle: x\n---\nbody\n", "body\n"},
		{"crlf", "---\r\ntitle: x\r\n---\r\nbody\r\n", "body\r\n"},
		{"no front matter", "body\n---\nmore\n", "body\n---\nmore\n"},
		{"not metadata", "---\njust a line\n---\nbody\n", "---\njust a line\n---\nbody\n"},
		{"unterminated", "---\ntitle: x\nbody\n", "---\ntitle: x\nbody\n"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		if got := string(StripFrontMatter([]byte(tc.in))); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

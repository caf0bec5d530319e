package count

import (
	"strings"
	"testing"
)

func Test_isBlankAndSpace(t *testing.T) {
	if !isBlank("  \t") || isBlank("a") {
		t.Fatal("blank logic")
	}
	if !isBlank("　\r") {
		t.Fatal("unicode space and carriage return should be blank")
	}
	if !isSpace(' ') || isSpace('x') {
		t.Fatal("space logic")
	}
}

func TestCountBytes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Metrics
	}{
		{"empty", "", Metrics{}},
		{"python file", "a\nb\n\n", Metrics{Lines: 3, Blanks: 1, Bytes: 5}},
		{"no trailing newline", "a\nb", Metrics{Lines: 2, Bytes: 3}},
		{"single newline", "\n", Metrics{Lines: 1, Blanks: 1, Bytes: 1}},
		{"crlf", "a\r\n\r\nb\r\n", Metrics{Lines: 3, Blanks: 1, Bytes: 8}},
		{"whitespace fragment", "x\n  \t", Metrics{Lines: 2, Blanks: 1, Bytes: 5}},
		{"unicode", "你好\n　\n", Metrics{Lines: 2, Blanks: 1, Bytes: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountBytes([]byte(tc.in)); got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestCountBytes_Binary(t *testing.T) {
	content := make([]byte, 100)
	content[10] = '\n'
	got := CountBytes(content)
	if !got.Binary || got.Lines != 0 || got.Blanks != 0 || got.Bytes != 100 {
		t.Fatalf("binary metrics %+v", got)
	}

	invalid := []byte("ok\n\xff\xfe\n")
	if got := CountBytes(invalid); !got.Binary || got.Lines != 0 {
		t.Fatalf("invalid utf-8 metrics %+v", got)
	}
}

func TestCountBytes_BlanksNeverExceedLines(t *testing.T) {
	inputs := []string{
		"", "\n\n\n", "a", " \n \n", "a\n\n b \n\t\n", strings.Repeat("x\n\n", 50),
	}
	for _, in := range inputs {
		m := CountBytes([]byte(in))
		if m.Blanks > m.Lines {
			t.Fatalf("%q: blanks %d > lines %d", in, m.Blanks, m.Lines)
		}
		if m.Bytes != int64(len(in)) {
			t.Fatalf("%q: bytes %d", in, m.Bytes)
		}
	}
}

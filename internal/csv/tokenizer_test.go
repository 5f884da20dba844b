package csv

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "plain rows",
			input: "a,b,c\n1,2,3\n",
			want:  [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:  "no trailing newline flushes final row",
			input: "a,b\n1,2",
			want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:  "quoted comma stays in field",
			input: "\"2021 Pinot Noir, Estate\",12\n",
			want:  [][]string{{"2021 Pinot Noir, Estate", "12"}},
		},
		{
			name:  "doubled quote is escaped literal",
			input: "\"say \"\"hi\"\"\",x\n",
			want:  [][]string{{`say "hi"`, "x"}},
		},
		{
			name:  "newline inside quotes stays in field",
			input: "\"line1\nline2\",x\n",
			want:  [][]string{{"line1\nline2", "x"}},
		},
		{
			name:  "CRLF line endings",
			input: "a,b\r\n1,2\r\n",
			want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:  "carriage return inside quotes preserved",
			input: "\"a\rb\",c\n",
			want:  [][]string{{"a\rb", "c"}},
		},
		{
			name:  "unterminated quote consumes to end of input",
			input: "a,\"never closed\nstill inside",
			want:  [][]string{{"a", "never closed\nstill inside"}},
		},
		{
			name:  "empty fields",
			input: "a,,c\n,,\n",
			want:  [][]string{{"a", "", "c"}, {"", "", ""}},
		},
		{
			name:  "empty line becomes single empty field",
			input: "a\n\nb\n",
			want:  [][]string{{"a"}, {""}, {"b"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only newline",
			input: "\n",
			want:  [][]string{{""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello  ", "hello"},
		{`="12345"`, "12345"},
		{"=value", "value"},
		{`"quoted"`, "quoted"},
		{"'single'", "single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCell(tt.input); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanHeader(t *testing.T) {
	if got := CleanHeader(" Order Number "); got != "order number" {
		t.Errorf("CleanHeader = %q, want %q", got, "order number")
	}
}

func TestIsBlankRow(t *testing.T) {
	if !IsBlankRow([]string{"", "  ", "\t"}) {
		t.Error("IsBlankRow should be true for whitespace-only fields")
	}
	if IsBlankRow([]string{"", "x"}) {
		t.Error("IsBlankRow should be false when any field has content")
	}
}

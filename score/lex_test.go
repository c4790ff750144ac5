package score

import (
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []tokenType
	}{
		{"a4", []tokenType{typeName, typeEOF}},
		{"a4:1", []tokenType{typeName, typeColon, typeNumber, typeEOF}},
		{"c#5:0.5", []tokenType{typeName, typeColon, typeNumber, typeEOF}},
		{"a4:1 r:0.5\tbb2", []tokenType{
			typeName, typeColon, typeNumber,
			typeName, typeColon, typeNumber,
			typeName, typeEOF,
		}},
		{"", []tokenType{typeEOF}},
		{"   ", []tokenType{typeEOF}},
	} {
		tokens, err := lex(test.input)
		if err != nil {
			t.Errorf("lex(%q): unexpected error: %v", test.input, err)
			continue
		}
		var got []tokenType
		for _, tok := range tokens {
			got = append(got, tok.typ)
		}
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("lex(%q):\nwant: %v\ngot:  %v", test.input, test.want, got)
		}
	}
}

func TestLexText(t *testing.T) {
	tokens, err := lex("c#5:0.25")
	if err != nil {
		t.Fatal(err)
	}
	if want, got := "c#5", tokens[0].text; want != got {
		t.Errorf("wrong name text: want %q, got %q", want, got)
	}
	if want, got := "0.25", tokens[2].text; want != got {
		t.Errorf("wrong number text: want %q, got %q", want, got)
	}
}

func TestLexErrors(t *testing.T) {
	for _, input := range []string{
		"a4:@",
		"a4;b4",
		"a4:1x",
		"(a4)",
	} {
		if _, err := lex(input); err == nil {
			t.Errorf("lex(%q): expected an error", input)
		}
	}
}

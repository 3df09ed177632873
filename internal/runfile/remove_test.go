package runfile

import (
	"strings"
	"testing"
)

// spansText places directives at [0,10) and [20,30).
const spansText = "#:sdk ABC\n" + "0123456789" + "#:sdk XYZ\n" + "tail12345\n"

func spansDirectives() []Directive {
	return []Directive{
		&SdkDirective{Span: Span{Start: 0, End: 10}, Name: "ABC"},
		&SdkDirective{Span: Span{Start: 20, End: 30}, Name: "XYZ"},
	}
}

func TestRemoveDirectivesReverseOrder(t *testing.T) {
	got, err := RemoveDirectives(spansDirectives(), spansText)
	if err != nil {
		t.Fatalf("RemoveDirectives failed: %v", err)
	}
	if want := "0123456789tail12345\n"; got != want {
		t.Errorf("RemoveDirectives = %q, want %q", got, want)
	}
}

func TestRemoveDirectivesForwardOrderIsWrong(t *testing.T) {
	text := spansText
	for _, d := range spansDirectives() {
		span := d.SourceSpan()
		text = text[:span.Start] + text[span.End:]
	}

	correct, _ := RemoveDirectives(spansDirectives(), spansText)
	if text == correct {
		t.Fatal("forward removal should shift the second span and produce different output")
	}
	if !strings.Contains(text, "#:sdk XYZ") {
		t.Errorf("forward removal should leave the second directive behind, got %q", text)
	}
}

func TestRemoveDirectivesRejectsBadSpans(t *testing.T) {
	tests := []struct {
		name       string
		directives []Directive
	}{
		{
			name: "decreasing",
			directives: []Directive{
				&SdkDirective{Span: Span{Start: 20, End: 30}},
				&SdkDirective{Span: Span{Start: 0, End: 10}},
			},
		},
		{
			name: "same start",
			directives: []Directive{
				&SdkDirective{Span: Span{Start: 0, End: 10}},
				&PackageDirective{Span: Span{Start: 0, End: 10}},
			},
		},
		{
			name: "overlapping",
			directives: []Directive{
				&SdkDirective{Span: Span{Start: 0, End: 15}},
				&PackageDirective{Span: Span{Start: 10, End: 20}},
			},
		},
		{
			name:       "out of range",
			directives: []Directive{&SdkDirective{Span: Span{Start: 30, End: 99}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RemoveDirectives(tt.directives, spansText); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseThenRemove(t *testing.T) {
	text := "#!/usr/bin/env dotnet\n#:sdk A\n  #:package B 1.0\n\nusing System;\n#:sdk Ignored\n"

	directives, err := ParseDirectives(SourceFile{Path: "app.cs", Text: text}, false)
	if err != nil {
		t.Fatalf("ParseDirectives failed: %v", err)
	}

	got, err := RemoveDirectives(directives, text)
	if err != nil {
		t.Fatalf("RemoveDirectives failed: %v", err)
	}
	if want := "\nusing System;\n#:sdk Ignored\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

package runfile

import (
	"errors"
	"strings"
	"testing"
)

func parse(t *testing.T, text string, reportAllErrors bool) ([]Directive, error) {
	t.Helper()
	return ParseDirectives(SourceFile{Path: "app.cs", Text: text}, reportAllErrors)
}

func TestParseDirectivesNoDirectives(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "code only", text: "Console.WriteLine(\"hi\");\n"},
		{name: "comment then code", text: "// hello\nusing System;\n"},
		{name: "blank lines then code", text: "\n\n   \nclass X {}\n"},
		{name: "directive after code", text: "var x = 1;\n#:sdk Late\n"},
		{name: "shebang not on first line", text: "\n#!/usr/bin/env dotnet\n"},
		{name: "directive after inline comment", text: "/* c */ var a = 1;\n#:package A\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives, err := parse(t, tt.text, false)
			if err != nil {
				t.Fatalf("ParseDirectives failed: %v", err)
			}
			if len(directives) != 0 {
				t.Errorf("expected no directives, got %d", len(directives))
			}
		})
	}
}

func TestParseDirectives(t *testing.T) {
	text := "#!/usr/bin/env dotnet run\n" +
		"#:sdk Microsoft.NET.Sdk.Web\n" +
		"  #:property LangVersion preview\n" +
		"\n" +
		"// packages\n" +
		"#:package Newtonsoft.Json 13.0.3\n" +
		"\t#:sdk Aspire.AppHost.Sdk 9.0.0\n" +
		"#:property Greeting hello  world\n" +
		"Console.WriteLine();\n"

	directives, err := parse(t, text, false)
	if err != nil {
		t.Fatalf("ParseDirectives failed: %v", err)
	}
	if len(directives) != 6 {
		t.Fatalf("expected 6 directives, got %d", len(directives))
	}

	shebang, ok := directives[0].(*Shebang)
	if !ok || shebang.Text != "#!/usr/bin/env dotnet run" {
		t.Errorf("directive 0 = %#v", directives[0])
	}

	sdk, ok := directives[1].(*SdkDirective)
	if !ok || sdk.Name != "Microsoft.NET.Sdk.Web" || sdk.HasVersion() {
		t.Errorf("directive 1 = %#v", directives[1])
	}

	prop, ok := directives[2].(*PropertyDirective)
	if !ok || prop.Name != "LangVersion" || prop.Value != "preview" {
		t.Errorf("directive 2 = %#v", directives[2])
	}

	pkg, ok := directives[3].(*PackageDirective)
	if !ok || pkg.Name != "Newtonsoft.Json" || pkg.Version != "13.0.3" {
		t.Errorf("directive 3 = %#v", directives[3])
	}

	sdk2, ok := directives[4].(*SdkDirective)
	if !ok || sdk2.SlashDelimited() != "Aspire.AppHost.Sdk/9.0.0" {
		t.Errorf("directive 4 = %#v", directives[4])
	}

	prop2, ok := directives[5].(*PropertyDirective)
	if !ok || prop2.Value != "hello  world" {
		t.Errorf("directive 5 = %#v", directives[5])
	}

	wantLines := []string{
		"#!/usr/bin/env dotnet run\n",
		"#:sdk Microsoft.NET.Sdk.Web\n",
		"  #:property LangVersion preview\n",
		"#:package Newtonsoft.Json 13.0.3\n",
		"\t#:sdk Aspire.AppHost.Sdk 9.0.0\n",
		"#:property Greeting hello  world\n",
	}
	prevStart := -1
	for i, d := range directives {
		span := d.SourceSpan()
		if span.Start <= prevStart {
			t.Errorf("directive %d span start %d is not increasing", i, span.Start)
		}
		prevStart = span.Start
		if got := text[span.Start:span.End]; got != wantLines[i] {
			t.Errorf("directive %d span covers %q, want %q", i, got, wantLines[i])
		}
	}
}

func TestParseDirectivesLineEndings(t *testing.T) {
	text := "\uFEFF#:sdk A 1.0\r\n#:package B\r\nclass C {}\r\n"

	directives, err := parse(t, text, false)
	if err != nil {
		t.Fatalf("ParseDirectives failed: %v", err)
	}
	if len(directives) != 2 {
		t.Fatalf("expected 2 directives, got %d", len(directives))
	}

	sdk := directives[0].(*SdkDirective)
	if sdk.Version != "1.0" {
		t.Errorf("version = %q, carriage return should not leak into values", sdk.Version)
	}
	if span := sdk.SourceSpan(); span.Start != len("\uFEFF") || text[span.Start:span.End] != "#:sdk A 1.0\r\n" {
		t.Errorf("sdk span = %+v", span)
	}
	if pkg := directives[1].(*PackageDirective); pkg.Name != "B" || pkg.HasVersion() {
		t.Errorf("package = %#v", pkg)
	}
}

func TestParseDirectivesBlockComments(t *testing.T) {
	text := "/* header\n#:sdk Inside\n*/\n#:sdk Real\n/* a */ /* b */\n#:package P\nclass C {}\n"

	directives, err := parse(t, text, true)
	if err != nil {
		t.Fatalf("ParseDirectives failed: %v", err)
	}
	if len(directives) != 2 {
		t.Fatalf("expected 2 directives, got %d", len(directives))
	}
	if sdk := directives[0].(*SdkDirective); sdk.Name != "Real" {
		t.Errorf("sdk name = %q, directives inside comments must be skipped", sdk.Name)
	}
}

func TestParseDirectivesErrors(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantType     DirectiveErrorType
		wantLocation string
		wantMessage  []string
	}{
		{
			name:         "property missing value",
			text:         "#:property Foo\n",
			wantType:     PropertyMissingParts,
			wantLocation: "app.cs:1",
			wantMessage:  []string{"two parts", "app.cs:1"},
		},
		{
			name:         "property invalid name",
			text:         "#:sdk A\n#:property 1Bad value\n",
			wantType:     PropertyInvalidName,
			wantLocation: "app.cs:2",
			wantMessage:  []string{"invalid property name at app.cs:2", "cannot begin with the '1' character"},
		},
		{
			name:         "property name with invalid character",
			text:         "#:property Bad$Name value\n",
			wantType:     PropertyInvalidName,
			wantLocation: "app.cs:1",
			wantMessage:  []string{"'$'"},
		},
		{
			name:         "unrecognized kind",
			text:         "\n\n#:bogus x\n",
			wantType:     UnrecognizedDirective,
			wantLocation: "app.cs:3",
			wantMessage:  []string{"unrecognized directive 'bogus' at app.cs:3"},
		},
		{
			name:         "kind is case sensitive",
			text:         "#:SDK A\n",
			wantType:     UnrecognizedDirective,
			wantLocation: "app.cs:1",
			wantMessage:  []string{"'SDK'"},
		},
		{
			name:         "empty directive",
			text:         "#:\n",
			wantType:     UnrecognizedDirective,
			wantLocation: "app.cs:1",
		},
		{
			name:         "sdk without name",
			text:         "#:sdk   \n",
			wantType:     MissingDirectiveName,
			wantLocation: "app.cs:1",
			wantMessage:  []string{"missing name of 'sdk'"},
		},
		{
			name:         "package without name",
			text:         "#:package\n",
			wantType:     MissingDirectiveName,
			wantLocation: "app.cs:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives, err := parse(t, tt.text, false)
			if directives != nil {
				t.Errorf("no directives should be returned on error, got %d", len(directives))
			}

			var dErr *DirectiveError
			if !errors.As(err, &dErr) {
				t.Fatalf("expected *DirectiveError, got %v", err)
			}
			if dErr.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", dErr.Type, tt.wantType)
			}
			if dErr.Location != tt.wantLocation {
				t.Errorf("Location = %q, want %q", dErr.Location, tt.wantLocation)
			}
			for _, want := range tt.wantMessage {
				if !strings.Contains(dErr.Error(), want) {
					t.Errorf("message %q should contain %q", dErr.Error(), want)
				}
			}
		})
	}
}

func TestParseDirectivesReportAllErrors(t *testing.T) {
	text := "#:sdk A\nConsole.WriteLine();\n  #:package B\n#:bogus\n"

	directives, err := parse(t, text, false)
	if err != nil {
		t.Fatalf("normal parse should ignore trailing directives: %v", err)
	}
	if len(directives) != 1 {
		t.Errorf("expected 1 directive, got %d", len(directives))
	}

	_, err = parse(t, text, true)
	var dErr *DirectiveError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected *DirectiveError, got %v", err)
	}
	if dErr.Type != DirectiveAfterCode {
		t.Errorf("Type = %v, want DirectiveAfterCode", dErr.Type)
	}
	if dErr.Location != "app.cs:3" {
		t.Errorf("first trailing directive should be reported, got %s", dErr.Location)
	}
}

func TestValidateXMLName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "TargetFramework"},
		{name: "_private"},
		{name: "a-b.c1"},
		{name: "ns:Name"},
		{name: "Grüße"},
		{name: "", wantErr: true},
		{name: "1abc", wantErr: true},
		{name: "-abc", wantErr: true},
		{name: "a b", wantErr: true},
		{name: "a$b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateXMLName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateXMLName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

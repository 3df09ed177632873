// Package runfile turns a single C# source file into a buildable project.
//
// Build metadata lives in the leading region of the file as `#!` and `#:`
// lines. ParseDirectives extracts them, WriteProject synthesizes an MSBuild
// project from them, and RemoveDirectives strips them when a file is
// converted into a regular project.
package runfile

// SourceFile is a source file's path and full text.
type SourceFile struct {
	Path string
	Text string
}

// Span is a half-open byte range [Start, End) within a source file.
type Span struct {
	Start int
	End   int
}

// Directive kinds as written after `#:`.
const (
	KindSdk      = "sdk"
	KindProperty = "property"
	KindPackage  = "package"
	KindShebang  = "shebang"
)

// Directive is one of *Shebang, *SdkDirective, *PropertyDirective or
// *PackageDirective. The set is closed.
type Directive interface {
	// SourceSpan returns the directive's full line span including any
	// indentation and the trailing line break.
	SourceSpan() Span
	// Kind returns the directive kind.
	Kind() string
	isDirective()
}

// Shebang is a `#!` line at the very start of a file.
type Shebang struct {
	Span Span
	Text string
}

func (d *Shebang) SourceSpan() Span { return d.Span }
func (d *Shebang) Kind() string     { return KindShebang }
func (*Shebang) isDirective()       {}

// SdkDirective is `#:sdk Name [Version]`.
type SdkDirective struct {
	Span    Span
	Name    string
	Version string
}

func (d *SdkDirective) SourceSpan() Span { return d.Span }
func (d *SdkDirective) Kind() string     { return KindSdk }
func (*SdkDirective) isDirective()       {}

// HasVersion reports whether a version was given.
func (d *SdkDirective) HasVersion() bool { return d.Version != "" }

// SlashDelimited returns Name or Name/Version, the form MSBuild accepts in Sdk attributes.
func (d *SdkDirective) SlashDelimited() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "/" + d.Version
}

// PropertyDirective is `#:property Name Value`.
type PropertyDirective struct {
	Span  Span
	Name  string
	Value string
}

func (d *PropertyDirective) SourceSpan() Span { return d.Span }
func (d *PropertyDirective) Kind() string     { return KindProperty }
func (*PropertyDirective) isDirective()       {}

// PackageDirective is `#:package Name [Version]`.
type PackageDirective struct {
	Span    Span
	Name    string
	Version string
}

func (d *PackageDirective) SourceSpan() Span { return d.Span }
func (d *PackageDirective) Kind() string     { return KindPackage }
func (*PackageDirective) isDirective()       {}

// HasVersion reports whether a version was given.
func (d *PackageDirective) HasVersion() bool { return d.Version != "" }

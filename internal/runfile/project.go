package runfile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/tacogips/dotool/internal/debug"
)

const (
	// DefaultSdk is used when no sdk directive is present.
	DefaultSdk = "Microsoft.NET.Sdk"
	// DefaultTargetFramework matches `dotnet new console`.
	DefaultTargetFramework = "net10.0"
)

// ProjectOptions controls project synthesis.
type ProjectOptions struct {
	// Virtual produces a project that is evaluated in memory only.
	Virtual bool
	// EntryPointPath is the source file compiled by a virtual project.
	EntryPointPath string
	// ArtifactsPath is the build output root of a virtual project.
	ArtifactsPath string
	// TargetFramework overrides DefaultTargetFramework when set.
	TargetFramework string
}

// restoreGraphTargets replaces NuGet restore targets that expect the project
// file to exist on disk.
var restoreGraphTargets = []string{
	`<Target Name="_FilterRestoreGraphProjectInputItems"`,
	`        DependsOnTargets="_LoadRestoreGraphEntryPoints"`,
	`        Returns="@(FilteredRestoreGraphProjectInputItems)">`,
	`  <ItemGroup>`,
	`    <FilteredRestoreGraphProjectInputItems Include="@(RestoreGraphProjectInputItems)" />`,
	`  </ItemGroup>`,
	`</Target>`,
	``,
	`<Target Name="_GetAllRestoreProjectPathItems"`,
	`        DependsOnTargets="_FilterRestoreGraphProjectInputItems"`,
	`        Returns="@(_RestoreProjectPathItems)">`,
	`  <ItemGroup>`,
	`    <_RestoreProjectPathItems Include="@(FilteredRestoreGraphProjectInputItems)" />`,
	`  </ItemGroup>`,
	`</Target>`,
	``,
	`<Target Name="_GenerateRestoreGraph"`,
	`        DependsOnTargets="_FilterRestoreGraphProjectInputItems;_GetAllRestoreProjectPathItems;_GenerateRestoreGraphProjectEntry;_GenerateProjectRestoreGraph"`,
	`        Returns="@(_RestoreGraphEntry)">`,
	`  <!-- Output from dependency _GenerateRestoreGraphProjectEntry -->`,
	`</Target>`,
}

// projectWriter accumulates the project text. Sections are separated by one
// blank line and indented one level inside <Project>.
type projectWriter struct {
	buf bytes.Buffer
}

func (p *projectWriter) line(s string) {
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func (p *projectWriter) section(lines ...string) {
	p.buf.WriteByte('\n')
	for _, l := range lines {
		if l == "" {
			p.buf.WriteByte('\n')
			continue
		}
		p.line("  " + l)
	}
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// WriteProject writes the MSBuild project for directives to w. Nothing is
// written if synthesis fails.
func WriteProject(w io.Writer, directives []Directive, opts ProjectOptions) error {
	var (
		sdks       []*SdkDirective
		properties []*PropertyDirective
		packages   []*PackageDirective
		shebangs   int
		processed  int
	)
	for _, d := range directives {
		switch d := d.(type) {
		case *SdkDirective:
			sdks = append(sdks, d)
		case *PropertyDirective:
			properties = append(properties, d)
		case *PackageDirective:
			packages = append(packages, d)
		case *Shebang:
			shebangs++
		}
	}

	targetFramework := opts.TargetFramework
	if targetFramework == "" {
		targetFramework = DefaultTargetFramework
	}

	sdkValue := DefaultSdk
	if len(sdks) > 0 {
		sdkValue = sdks[0].SlashDelimited()
		processed++
	}

	var p projectWriter

	if opts.Virtual {
		p.line("<Project>")
		p.section(
			"<PropertyGroup>",
			"  <IncludeProjectNameInArtifactsPaths>false</IncludeProjectNameInArtifactsPaths>",
			"  <ArtifactsPath>"+escape(opts.ArtifactsPath)+"</ArtifactsPath>",
			"</PropertyGroup>",
		)
		imports := []string{`<Import Project="Sdk.props" Sdk="` + escape(sdkValue) + `" />`}
		for _, sdk := range sdks[min(1, len(sdks)):] {
			imports = append(imports, `<Import Project="Sdk.props" Sdk="`+escape(sdk.SlashDelimited())+`" />`)
			processed++
		}
		p.section(imports...)
	} else {
		p.line(`<Project Sdk="` + escape(sdkValue) + `">`)
		if len(sdks) > 1 {
			var extra []string
			for _, sdk := range sdks[1:] {
				if sdk.HasVersion() {
					extra = append(extra, `<Sdk Name="`+escape(sdk.Name)+`" Version="`+escape(sdk.Version)+`" />`)
				} else {
					extra = append(extra, `<Sdk Name="`+escape(sdk.Name)+`" />`)
				}
				processed++
			}
			p.section(extra...)
		}
	}

	p.section(
		"<PropertyGroup>",
		"  <OutputType>Exe</OutputType>",
		"  <TargetFramework>"+escape(targetFramework)+"</TargetFramework>",
		"  <ImplicitUsings>enable</ImplicitUsings>",
		"  <Nullable>enable</Nullable>",
		"</PropertyGroup>",
	)

	if opts.Virtual {
		p.section(
			"<PropertyGroup>",
			"  <EnableDefaultItems>false</EnableDefaultItems>",
			"</PropertyGroup>",
		)
	}

	if len(properties) > 0 {
		group := []string{"<PropertyGroup>"}
		for _, prop := range properties {
			group = append(group, fmt.Sprintf("  <%s>%s</%s>", prop.Name, escape(prop.Value), prop.Name))
			processed++
		}
		p.section(append(group, "</PropertyGroup>")...)
	}

	if opts.Virtual {
		p.section(
			"<PropertyGroup>",
			"  <Features>$(Features);FileBasedProgram</Features>",
			"</PropertyGroup>",
		)
	}

	if len(packages) > 0 {
		group := []string{"<ItemGroup>"}
		for _, pkg := range packages {
			if pkg.HasVersion() {
				group = append(group, `  <PackageReference Include="`+escape(pkg.Name)+`" Version="`+escape(pkg.Version)+`" />`)
			} else {
				group = append(group, `  <PackageReference Include="`+escape(pkg.Name)+`" />`)
			}
			processed++
		}
		p.section(append(group, "</ItemGroup>")...)
	}

	if processed+shebangs != len(directives) {
		return fmt.Errorf("project synthesis consumed %d of %d directives (%d shebang)",
			processed+shebangs, len(directives), shebangs)
	}

	if opts.Virtual {
		p.section(
			"<ItemGroup>",
			`  <Compile Include="`+escape(opts.EntryPointPath)+`" />`,
			"</ItemGroup>",
		)

		var imports []string
		for _, sdk := range sdks {
			imports = append(imports, `<Import Project="Sdk.targets" Sdk="`+escape(sdk.SlashDelimited())+`" />`)
		}
		if len(sdks) == 0 {
			imports = append(imports, `<Import Project="Sdk.targets" Sdk="`+DefaultSdk+`" />`)
		}
		p.section(imports...)
		p.section(restoreGraphTargets...)
	}

	p.line("</Project>")

	debug.Debug("[runfile] Synthesized project (virtual=%v, %d directive(s), %d bytes)", opts.Virtual, len(directives), p.buf.Len())

	if _, err := w.Write(p.buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

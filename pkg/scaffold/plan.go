package scaffold

import (
	"fmt"

	"github.com/arthur-debert/pkginit/pkg/types"
)

// File and directory names written by the scaffolder
const (
	ManifestFile   = "Package.swift"
	ReadmeFile     = "README.md"
	GitignoreFile  = ".gitignore"
	SourcesDir     = "Sources"
	TestsDir       = "Tests"
	ModuleMapFile  = "module.modulemap"
	LinuxMainFile  = "LinuxMain.swift"
	MainSourceFile = "main.swift"
	TestsSuffix    = "Tests"
)

// ExistsPolicy decides what happens when a step's target is already present
type ExistsPolicy int

const (
	// SkipIfExists leaves the existing path untouched and moves on
	SkipIfExists ExistsPolicy = iota
	// FailIfExists aborts the whole run
	FailIfExists
)

func (p ExistsPolicy) String() string {
	switch p {
	case SkipIfExists:
		return "skip-if-exists"
	case FailIfExists:
		return "fail-if-exists"
	default:
		return "unknown"
	}
}

// StepType tells whether a step creates a file or a directory
type StepType int

const (
	StepFile StepType = iota
	StepDirectory
)

// StepName identifies a step independently of the paths it produces
type StepName string

const (
	StepManifest   StepName = "manifest"
	StepReadme     StepName = "readme"
	StepGitignore  StepName = "gitignore"
	StepSourcesDir StepName = "sources-dir"
	StepSource     StepName = "source"
	StepModuleMap  StepName = "module-map"
	StepTestsDir   StepName = "tests-dir"
	StepLinuxMain  StepName = "linux-main"
	StepTestStub   StepName = "test-stub"
)

// Step is a single entry of an emission plan
type Step struct {
	Name StepName
	// Path is slash-separated and relative to the package root
	Path   string
	Type   StepType
	Policy ExistsPolicy
	// Generate produces file content; nil for directories
	Generate func(Identity) []byte
	// StampToolsVersion marks the manifest, which gets the tools-version
	// line written as part of the same step
	StampToolsVersion bool
}

// DisplayPath returns the path as shown in progress messages, with a
// trailing slash for directories
func (s Step) DisplayPath() string {
	if s.Type == StepDirectory {
		return s.Path + "/"
	}
	return s.Path
}

// PlanFor returns the ordered steps that scaffold a package of the given kind.
// The manifest always comes first, followed by README and .gitignore.
func PlanFor(kind types.PackageKind, id Identity) []Step {
	plan := []Step{
		{
			Name:              StepManifest,
			Path:              ManifestFile,
			Type:              StepFile,
			Policy:            FailIfExists,
			Generate:          manifestContent,
			StampToolsVersion: true,
		},
		fileStep(StepReadme, ReadmeFile, readmeContent),
		fileStep(StepGitignore, GitignoreFile, gitignoreContent),
	}

	switch kind {
	case types.PackageKindEmpty:
		// administrative files only
	case types.PackageKindLibrary:
		plan = append(plan,
			dirStep(StepSourcesDir, SourcesDir),
			fileStep(StepSource, SourcesDir+"/"+id.ModuleName+".swift", sourceContent(kind)),
			dirStep(StepTestsDir, TestsDir),
			fileStep(StepLinuxMain, TestsDir+"/"+LinuxMainFile, linuxMainContent),
			fileStep(StepTestStub,
				TestsDir+"/"+id.PackageName+TestsSuffix+"/"+id.ModuleName+TestsSuffix+".swift",
				testStubContent),
		)
	case types.PackageKindExecutable:
		// executables get a Tests/ directory but no test stub yet
		plan = append(plan,
			dirStep(StepSourcesDir, SourcesDir),
			fileStep(StepSource, SourcesDir+"/"+MainSourceFile, sourceContent(kind)),
			dirStep(StepTestsDir, TestsDir),
		)
	case types.PackageKindSystemModule:
		plan = append(plan, fileStep(StepModuleMap, ModuleMapFile, moduleMapContent))
	default:
		panic(fmt.Sprintf("scaffold: unreachable: unknown package kind %d", int(kind)))
	}

	return plan
}

func fileStep(name StepName, path string, gen func(Identity) []byte) Step {
	return Step{
		Name:     name,
		Path:     path,
		Type:     StepFile,
		Policy:   SkipIfExists,
		Generate: gen,
	}
}

func dirStep(name StepName, path string) Step {
	return Step{
		Name:   name,
		Path:   path,
		Type:   StepDirectory,
		Policy: SkipIfExists,
	}
}

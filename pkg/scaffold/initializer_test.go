package scaffold_test

import (
	stderrors "errors"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/pkginit/pkg/errors"
	"github.com/arthur-debert/pkginit/pkg/scaffold"
	"github.com/arthur-debert/pkginit/pkg/testutil"
	"github.com/arthur-debert/pkginit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInitializer(t *testing.T, fsys types.FS, dir string, kind types.PackageKind, progress scaffold.ProgressReporter) *scaffold.Initializer {
	t.Helper()
	initializer, err := scaffold.New(scaffold.Options{
		DestinationPath: dir,
		Kind:            kind,
		FileSystem:      fsys,
		Progress:        progress,
	})
	require.NoError(t, err)
	return initializer
}

func TestExecuteLibrary(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")
	var messages []string
	initializer := newInitializer(t, fsys, dir, types.PackageKindLibrary, func(m string) {
		messages = append(messages, m)
	})

	result, err := initializer.Execute()
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, scaffold.StateCompleted, initializer.State())
	assert.Equal(t, "MyLib", result.PackageName)
	assert.Equal(t, "MyLib", result.ModuleName)
	assert.Equal(t, types.PackageKindLibrary, result.Kind)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, []string{
		"Package.swift", "README.md", ".gitignore",
		"Sources/", "Sources/MyLib.swift",
		"Tests/", "Tests/LinuxMain.swift", "Tests/MyLibTests/MyLibTests.swift",
	}, result.Created)

	manifest := testutil.ReadFile(t, fsys, dir, "Package.swift")
	assert.Equal(t, "// swift-tools-version:4.0\nimport PackageDescription\n\nlet package = Package(\n    name: \"MyLib\"\n)\n", manifest)

	source := testutil.ReadFile(t, fsys, dir, "Sources/MyLib.swift")
	assert.Contains(t, source, "struct MyLib {")
	assert.Contains(t, source, `var text = "Hello, World!"`)

	test := testutil.ReadFile(t, fsys, dir, "Tests/MyLibTests/MyLibTests.swift")
	assert.Contains(t, test, `XCTAssertEqual(MyLib().text, "Hello, World!")`)

	assert.Equal(t, []string{
		"Creating library package: MyLib",
		"Creating MyLib/Package.swift",
		"Creating MyLib/README.md",
		"Creating MyLib/.gitignore",
		"Creating MyLib/Sources/",
		"Creating MyLib/Sources/MyLib.swift",
		"Creating MyLib/Tests/",
		"Creating MyLib/Tests/LinuxMain.swift",
		"Creating MyLib/Tests/MyLibTests/MyLibTests.swift",
	}, messages)
}

func TestExecuteExecutable(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "tool-1")

	result, err := newInitializer(t, fsys, dir, types.PackageKindExecutable, nil).Execute()
	require.NoError(t, err)

	assert.Equal(t, "tool-1", result.PackageName)
	assert.Equal(t, "tool_1", result.ModuleName)
	assert.Equal(t, "print(\"Hello, world!\")\n", testutil.ReadFile(t, fsys, dir, "Sources/main.swift"))
	assert.Contains(t, testutil.ReadFile(t, fsys, dir, "Package.swift"), `name: "tool-1"`)

	assert.True(t, testutil.Exists(fsys, dir, "Tests"))
	assert.False(t, testutil.Exists(fsys, dir, "Tests/LinuxMain.swift"))
	assert.False(t, testutil.Exists(fsys, dir, "Tests/tool-1Tests"))
}

func TestExecuteSystemModule(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "libz-wrap")

	result, err := newInitializer(t, fsys, dir, types.PackageKindSystemModule, nil).Execute()
	require.NoError(t, err)

	assert.Equal(t, []string{"Package.swift", "README.md", ".gitignore", "module.modulemap"}, result.Created)
	assert.False(t, testutil.Exists(fsys, dir, "Sources"))
	assert.False(t, testutil.Exists(fsys, dir, "Tests"))

	modulemap := testutil.ReadFile(t, fsys, dir, "module.modulemap")
	assert.Contains(t, modulemap, "module libz_wrap [system] {")
	assert.Contains(t, modulemap, `header "/usr/include/libz_wrap.h"`)
	assert.Contains(t, modulemap, `link "libz_wrap"`)
	assert.Contains(t, modulemap, "export *")
}

func TestExecuteEmpty(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "Empty")

	result, err := newInitializer(t, fsys, dir, types.PackageKindEmpty, nil).Execute()
	require.NoError(t, err)

	assert.Equal(t, []string{"Package.swift", "README.md", ".gitignore"}, result.Created)
	for _, absent := range []string{"Sources", "Tests", "module.modulemap"} {
		assert.False(t, testutil.Exists(fsys, dir, absent), "%s should not exist", absent)
	}
	assert.Equal(t, ".DS_Store\n/.build\n/Packages\n/*.xcodeproj\n", testutil.ReadFile(t, fsys, dir, ".gitignore"))
	assert.Equal(t, "# Empty\n\nA description of this package.\n", testutil.ReadFile(t, fsys, dir, "README.md"))
}

func TestExecuteTwiceFailsWithManifestExists(t *testing.T) {
	for _, kind := range types.AllPackageKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			fsys, dir := testutil.NewMemoryPackageDir(t, "Twice")

			_, err := newInitializer(t, fsys, dir, kind, nil).Execute()
			require.NoError(t, err)

			var messages []string
			second := newInitializer(t, fsys, dir, kind, func(m string) { messages = append(messages, m) })
			result, err := second.Execute()

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, errors.ErrManifestExists), "got %v", err)
			assert.Equal(t, scaffold.StateFailed, second.State())
			assert.Equal(t, err, second.Err())
			assert.Equal(t, filepath.Join(dir, "Package.swift"), errors.GetErrorDetails(err)["path"])
			// only the package announcement, nothing was written
			assert.Equal(t, []string{"Creating " + kind.String() + " package: Twice"}, messages)
		})
	}
}

func TestExecuteSkipsExistingFiles(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")
	custom := "# MyLib\n\nMy own words.\n"
	require.NoError(t, fsys.WriteFile(filepath.Join(dir, "README.md"), []byte(custom), 0644))

	var messages []string
	result, err := newInitializer(t, fsys, dir, types.PackageKindLibrary, func(m string) {
		messages = append(messages, m)
	}).Execute()
	require.NoError(t, err)

	assert.Equal(t, custom, testutil.ReadFile(t, fsys, dir, "README.md"))
	assert.Equal(t, []string{"README.md"}, result.Skipped)
	assert.Contains(t, result.Created, "Package.swift")
	assert.Contains(t, result.Created, ".gitignore")
	assert.Contains(t, result.Created, "Sources/MyLib.swift")
	assert.NotContains(t, messages, "Creating MyLib/README.md")
}

func TestExecuteSkipsExistingDirectories(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")
	require.NoError(t, fsys.MkdirAll(filepath.Join(dir, "Sources"), 0755))

	result, err := newInitializer(t, fsys, dir, types.PackageKindLibrary, nil).Execute()
	require.NoError(t, err)

	assert.Equal(t, []string{"Sources/"}, result.Skipped)
	// files inside an existing directory are still created
	assert.True(t, testutil.Exists(fsys, dir, "Sources/MyLib.swift"))
}

func TestExecuteCreatesMissingDestination(t *testing.T) {
	fsys, _ := testutil.NewMemoryPackageDir(t, "unused")
	dir := filepath.Join(filepath.FromSlash(testutil.Root), "nested", "NewPkg")

	_, err := newInitializer(t, fsys, dir, types.PackageKindEmpty, nil).Execute()
	require.NoError(t, err)
	assert.True(t, testutil.Exists(fsys, dir, "Package.swift"))
}

func TestExecuteFilesystemFailures(t *testing.T) {
	tests := []struct {
		name        string
		configure   func(f *testutil.FailingFS)
		wantCode    errors.ErrorCode
		wantCreated []string
		wantAbsent  []string
	}{
		{
			name:       "manifest write fails",
			configure:  func(f *testutil.FailingFS) { f.FailWrite = []string{"/Package.swift"} },
			wantCode:   errors.ErrFileWrite,
			wantAbsent: []string{"README.md", ".gitignore"},
		},
		{
			name:        "source write fails",
			configure:   func(f *testutil.FailingFS) { f.FailWrite = []string{"/Sources/MyLib.swift"} },
			wantCode:    errors.ErrFileWrite,
			wantCreated: []string{"Package.swift", "README.md", ".gitignore"},
			wantAbsent:  []string{"Tests"},
		},
		{
			name:        "tests directory cannot be created",
			configure:   func(f *testutil.FailingFS) { f.FailMkdir = []string{"/Tests"} },
			wantCode:    errors.ErrDirCreate,
			wantCreated: []string{"Sources/MyLib.swift"},
			wantAbsent:  []string{"Tests/LinuxMain.swift"},
		},
		{
			name:        "existence check fails",
			configure:   func(f *testutil.FailingFS) { f.FailStat = []string{"/.gitignore"} },
			wantCode:    errors.ErrFileAccess,
			wantCreated: []string{"README.md"},
			wantAbsent:  []string{"Sources"},
		},
		{
			name:       "tools version stamp cannot read manifest",
			configure:  func(f *testutil.FailingFS) { f.FailRead = []string{"/Package.swift"} },
			wantCode:   errors.ErrFileAccess,
			wantAbsent: []string{"README.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, dir := testutil.NewMemoryPackageDir(t, "MyLib")
			failing := &testutil.FailingFS{FS: mem, Err: syscall.EACCES}
			tt.configure(failing)

			initializer := newInitializer(t, failing, dir, types.PackageKindLibrary, nil)
			result, err := initializer.Execute()

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.True(t, stderrors.Is(err, syscall.EACCES), "root cause should be preserved")
			assert.Equal(t, scaffold.StateFailed, initializer.State())

			for _, rel := range tt.wantCreated {
				assert.True(t, testutil.Exists(mem, dir, rel), "%s should remain on disk", rel)
			}
			for _, rel := range tt.wantAbsent {
				assert.False(t, testutil.Exists(mem, dir, rel), "%s should not be created", rel)
			}
		})
	}
}

type failingStamp struct{ err error }

func (f failingStamp) WriteToolsVersion(types.FS, string, *semver.Version) error { return f.err }

func TestExecuteStampFailureFailsManifestStep(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")
	stampErr := errors.New(errors.ErrFileWrite, "disk full")

	initializer, err := scaffold.New(scaffold.Options{
		DestinationPath:    dir,
		Kind:               types.PackageKindEmpty,
		FileSystem:         fsys,
		ToolsVersionWriter: failingStamp{err: stampErr},
	})
	require.NoError(t, err)

	_, err = initializer.Execute()
	assert.Equal(t, stampErr, err)
	assert.False(t, testutil.Exists(fsys, dir, "README.md"))
}

func TestExecuteToolsVersionPatchIsZeroed(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")

	initializer, err := scaffold.New(scaffold.Options{
		DestinationPath: dir,
		Kind:            types.PackageKindEmpty,
		FileSystem:      fsys,
		ToolsVersion:    semver.MustParse("5.9.2"),
	})
	require.NoError(t, err)

	_, err = initializer.Execute()
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, fsys, dir, "Package.swift"), "// swift-tools-version:5.9\n")
}

func TestExecuteRunsOnce(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")
	initializer := newInitializer(t, fsys, dir, types.PackageKindEmpty, nil)

	_, err := initializer.Execute()
	require.NoError(t, err)

	_, err = initializer.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Equal(t, scaffold.StateCompleted, initializer.State())
}

func TestExecuteProgressPanicIsIgnored(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")

	result, err := newInitializer(t, fsys, dir, types.PackageKindEmpty, func(string) {
		panic("sink closed")
	}).Execute()
	require.NoError(t, err)
	assert.Len(t, result.Created, 3)
}

func TestExecutePackageNameOverride(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "checkout")

	initializer, err := scaffold.New(scaffold.Options{
		DestinationPath: dir,
		Kind:            types.PackageKindLibrary,
		PackageName:     "2fast",
		FileSystem:      fsys,
	})
	require.NoError(t, err)

	result, err := initializer.Execute()
	require.NoError(t, err)
	assert.Equal(t, "2fast", result.PackageName)
	assert.Equal(t, "_2fast", result.ModuleName)
	assert.True(t, testutil.Exists(fsys, dir, "Sources/_2fast.swift"))
	assert.True(t, testutil.Exists(fsys, dir, "Tests/2fastTests/_2fastTests.swift"))
}

func TestNewValidation(t *testing.T) {
	fsys, dir := testutil.NewMemoryPackageDir(t, "MyLib")

	_, err := scaffold.New(scaffold.Options{Kind: types.PackageKindEmpty, FileSystem: fsys})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = scaffold.New(scaffold.Options{DestinationPath: dir, Kind: types.PackageKind(7), FileSystem: fsys})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = scaffold.New(scaffold.Options{DestinationPath: dir, PackageName: "a/b", FileSystem: fsys})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.Panics(t, func() {
		_, _ = scaffold.New(scaffold.Options{DestinationPath: "/", FileSystem: fsys})
	})
}

package scaffold

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/pkginit/pkg/errors"
	"github.com/arthur-debert/pkginit/pkg/filesystem"
	"github.com/arthur-debert/pkginit/pkg/logging"
	"github.com/arthur-debert/pkginit/pkg/paths"
	"github.com/arthur-debert/pkginit/pkg/types"
)

// Options configures an Initializer
type Options struct {
	// DestinationPath is the package root; its basename names the package
	DestinationPath string
	// Kind selects the scaffold
	Kind types.PackageKind
	// PackageName overrides the name derived from DestinationPath (optional)
	PackageName string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
	// ToolsVersion is stamped into the manifest with its patch zeroed
	// (optional, defaults to DefaultToolsVersion)
	ToolsVersion *semver.Version
	// ToolsVersionWriter records the tools version (optional, defaults to
	// SwiftToolsVersionWriter)
	ToolsVersionWriter ToolsVersionWriter
	// Progress receives progress lines (optional, defaults to NoProgress)
	Progress ProgressReporter
	// WorkingDir is the base for paths shown in progress lines (optional,
	// defaults to the parent of DestinationPath)
	WorkingDir string
	// FileMode and DirMode default to 0644 and 0755
	FileMode fs.FileMode
	DirMode  fs.FileMode
	// DryRun is recorded in the result; the caller supplies a dry-run
	// filesystem
	DryRun bool
}

// Initializer scaffolds one package. It runs at most once.
type Initializer struct {
	dest       string
	kind       types.PackageKind
	name       string
	fs         types.FS
	version    *semver.Version
	stamp      ToolsVersionWriter
	progress   ProgressReporter
	workingDir string
	fileMode   fs.FileMode
	dirMode    fs.FileMode
	dryRun     bool

	state State
	step  int
	err   error
}

// New validates opts and returns an Initializer ready to Execute.
//
// The package name (the override, or the destination's basename) must be
// non-empty; callers check this before constructing, and New panics if they
// did not.
func New(opts Options) (*Initializer, error) {
	if opts.DestinationPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "destination path cannot be empty")
	}
	dest, err := filepath.Abs(opts.DestinationPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid destination path %s", opts.DestinationPath)
	}

	name := opts.PackageName
	if name == "" {
		name = paths.Basename(dest)
	}
	if name == "" {
		panic(fmt.Sprintf("scaffold: destination %q has no basename to name the package", dest))
	}
	if strings.ContainsAny(name, `/\`) {
		return nil, errors.Newf(errors.ErrInvalidInput, "package name contains path separators: %s", name)
	}

	switch opts.Kind {
	case types.PackageKindEmpty, types.PackageKindLibrary, types.PackageKindExecutable, types.PackageKindSystemModule:
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown package kind %d", int(opts.Kind))
	}

	in := &Initializer{
		dest:       dest,
		kind:       opts.Kind,
		name:       name,
		fs:         opts.FileSystem,
		version:    opts.ToolsVersion,
		stamp:      opts.ToolsVersionWriter,
		progress:   opts.Progress,
		workingDir: opts.WorkingDir,
		fileMode:   opts.FileMode,
		dirMode:    opts.DirMode,
		dryRun:     opts.DryRun,
		state:      StateNotStarted,
	}

	if in.fs == nil {
		in.fs = filesystem.NewOS()
	}
	if in.version == nil {
		in.version, err = ParseToolsVersion(DefaultToolsVersion)
		if err != nil {
			return nil, err
		}
	} else {
		in.version = semver.New(in.version.Major(), in.version.Minor(), 0, "", "")
	}
	if in.fileMode == 0 {
		in.fileMode = 0644
	}
	if in.dirMode == 0 {
		in.dirMode = 0755
	}
	if in.stamp == nil {
		in.stamp = SwiftToolsVersionWriter{FileMode: in.fileMode}
	}
	if in.progress == nil {
		in.progress = NoProgress
	}
	if in.workingDir == "" {
		in.workingDir = filepath.Dir(dest)
	}

	return in, nil
}

// State returns the current lifecycle state
func (i *Initializer) State() State {
	return i.state
}

// Err returns the error that moved the initializer to StateFailed
func (i *Initializer) Err() error {
	return i.err
}

// Execute derives the package identity and runs the emission plan, stopping at
// the first failure. Files written before a failure stay on disk.
func (i *Initializer) Execute() (*types.InitResult, error) {
	log := logging.GetLogger("scaffold.init")
	done := logging.LogOperationStart(log, "init")
	defer done()

	if i.state != StateNotStarted {
		return nil, errors.Newf(errors.ErrInternal, "initializer already ran (state %s)", i.state)
	}

	i.transition(StateDerivingIdentity)
	id := NewIdentity(i.name)
	log.Debug().
		Str("destination", i.dest).
		Str("kind", i.kind.String()).
		Str("packageName", id.PackageName).
		Str("moduleName", id.ModuleName).
		Msg("Derived package identity")

	safeReport(i.progress, fmt.Sprintf("Creating %s package: %s", i.kind, id.PackageName))

	plan := PlanFor(i.kind, id)
	result := &types.InitResult{
		Command:     "init",
		Timestamp:   time.Now(),
		DryRun:      i.dryRun,
		Kind:        i.kind,
		PackageName: id.PackageName,
		ModuleName:  id.ModuleName,
		Path:        i.dest,
		Created:     []string{},
		Skipped:     []string{},
	}

	for idx, step := range plan {
		i.step = idx
		i.transition(StateEmittingStep)

		created, err := i.emit(step, id)
		if err != nil {
			i.err = err
			i.transition(StateFailed)
			log.Debug().Err(err).Str("step", string(step.Name)).Msg("Step failed, aborting plan")
			return nil, err
		}
		if created {
			result.Created = append(result.Created, step.DisplayPath())
		} else {
			result.Skipped = append(result.Skipped, step.DisplayPath())
		}
	}

	i.transition(StateCompleted)

	result.Message = fmt.Sprintf("Created %s package %s (%d created, %d skipped).",
		i.kind, id.PackageName, len(result.Created), len(result.Skipped))

	log.Info().
		Str("package", id.PackageName).
		Str("path", i.dest).
		Int("created", len(result.Created)).
		Int("skipped", len(result.Skipped)).
		Msg("Init operation completed")

	return result, nil
}

// emit runs one step. It reports whether anything was created.
func (i *Initializer) emit(step Step, id Identity) (bool, error) {
	log := logging.GetLogger("scaffold.init")
	target := paths.Join(i.dest, step.Path)

	exists, err := i.exists(target)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", step.Path).
			WithDetail("path", target)
	}
	if exists {
		switch step.Policy {
		case FailIfExists:
			return false, errors.Newf(errors.ErrManifestExists, "a package manifest already exists at %s", target).
				WithDetail("path", target)
		case SkipIfExists:
			log.Debug().Str("path", step.Path).Msg("Already exists, skipping")
			return false, nil
		}
	}

	safeReport(i.progress, "Creating "+i.displayPath(target, step))

	switch step.Type {
	case StepDirectory:
		if err := i.fs.MkdirAll(target, i.dirMode); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", step.Path).
				WithDetail("path", target)
		}
	case StepFile:
		if err := i.fs.MkdirAll(filepath.Dir(target), i.dirMode); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", step.Path).
				WithDetail("path", filepath.Dir(target))
		}
		if err := i.fs.WriteFile(target, step.Generate(id), i.fileMode); err != nil {
			return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", step.Path).
				WithDetail("path", target)
		}
		if step.StampToolsVersion {
			if err := i.stamp.WriteToolsVersion(i.fs, i.dest, i.version); err != nil {
				return false, err
			}
		}
	}

	log.Debug().Str("path", step.Path).Str("step", string(step.Name)).Msg("Created")
	return true, nil
}

func (i *Initializer) exists(path string) (bool, error) {
	_, err := i.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (i *Initializer) displayPath(target string, step Step) string {
	rel := filepath.ToSlash(paths.Relative(i.workingDir, target))
	if step.Type == StepDirectory {
		return rel + "/"
	}
	return rel
}

func (i *Initializer) transition(to State) {
	log := logging.GetLogger("scaffold.init")
	log.Trace().Str("from", i.state.String()).Str("to", to.String()).Int("step", i.step).Msg("State transition")
	i.state = to
}

package scaffold

import (
	"testing"

	"github.com/arthur-debert/pkginit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeKinds(t *testing.T) {
	result := DescribeKinds("My-Lib")
	require.Len(t, result.Kinds, len(types.AllPackageKinds()))

	byKind := map[types.PackageKind]types.KindInfo{}
	for _, info := range result.Kinds {
		byKind[info.Kind] = info
		assert.NotEmpty(t, info.Description)
		require.NotEmpty(t, info.Files)
		assert.Equal(t, ManifestFile, info.Files[0])
	}

	assert.Equal(t, []string{"Package.swift", "README.md", ".gitignore"},
		byKind[types.PackageKindEmpty].Files)
	assert.Contains(t, byKind[types.PackageKindLibrary].Files, "Sources/My_Lib.swift")
	assert.Contains(t, byKind[types.PackageKindLibrary].Files, "Tests/My-LibTests/My_LibTests.swift")
	assert.Contains(t, byKind[types.PackageKindExecutable].Files, "Sources/main.swift")
	assert.Contains(t, byKind[types.PackageKindExecutable].Files, "Tests/")
	assert.Contains(t, byKind[types.PackageKindSystemModule].Files, "module.modulemap")
}

package scaffold

import (
	"github.com/arthur-debert/pkginit/pkg/types"
)

// ExampleName is the package name used when describing plans without a
// destination.
const ExampleName = "MyPackage"

// DescribeKinds lists every package kind with the paths its plan would
// produce for a package named name.
func DescribeKinds(name string) *types.KindsResult {
	id := NewIdentity(name)
	result := &types.KindsResult{}
	for _, kind := range types.AllPackageKinds() {
		info := types.KindInfo{
			Kind:        kind,
			Description: kind.Description(),
		}
		for _, step := range PlanFor(kind, id) {
			info.Files = append(info.Files, step.DisplayPath())
		}
		result.Kinds = append(result.Kinds, info)
	}
	return result
}

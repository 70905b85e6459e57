package bootstrap

import "path/filepath"

// PackageManager identifies the JavaScript package manager of a repository.
type PackageManager string

const (
	// PackageManagerPNPM is detected from pnpm-lock.yaml.
	PackageManagerPNPM PackageManager = "pnpm"
	// PackageManagerYarn is detected from yarn.lock.
	PackageManagerYarn PackageManager = "yarn"
	// PackageManagerBun is detected from bun.lockb.
	PackageManagerBun PackageManager = "bun"
	// PackageManagerNPM is detected from package-lock.json and is the default.
	PackageManagerNPM PackageManager = "npm"
)

type lockFileRule struct {
	lockFileName   string
	packageManager PackageManager
}

// lockFileRules is probed in declaration order; the first match wins.
var lockFileRules = []lockFileRule{
	{lockFileName: "pnpm-lock.yaml", packageManager: PackageManagerPNPM},
	{lockFileName: "yarn.lock", packageManager: PackageManagerYarn},
	{lockFileName: "bun.lockb", packageManager: PackageManagerBun},
	{lockFileName: "package-lock.json", packageManager: PackageManagerNPM},
}

// DetectPackageManager inspects the repository root for lock files and
// returns the matching package manager, defaulting to npm.
func DetectPackageManager(fileSystem FileSystem, repositoryPath string) PackageManager {
	for _, rule := range lockFileRules {
		if fileSystem.FileExists(filepath.Join(repositoryPath, rule.lockFileName)) {
			return rule.packageManager
		}
	}
	return PackageManagerNPM
}

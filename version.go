package regbus

// Library version constants. Update when cutting a release tag.
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 1

	// Version packs major/minor/patch as 0xMMmmpp, e.g. 0.1.1 -> 0x000101.
	Version = VersionMajor<<16 | VersionMinor<<8 | VersionPatch

	VersionString = "0.1.1"
)

// VersionAtLeast reports whether the library version is at least
// major.minor.patch.
func VersionAtLeast(major, minor, patch int) bool {
	return Version >= major<<16|minor<<8|patch
}

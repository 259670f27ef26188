package export

import "errors"

// Sentinel errors for export package.
var (
	// ErrPackageName is returned when the generated package name is not a
	// valid Go identifier.
	ErrPackageName = errors.New("export: invalid package name")

	// ErrFileName is returned for artifact names that cannot be embedded or
	// would escape the output directory.
	ErrFileName = errors.New("export: invalid file name")

	// ErrVersion is returned when reading a manifest written with a
	// different format version.
	ErrVersion = errors.New("export: unsupported format version")

	// ErrManifest is returned when a manifest is structurally invalid.
	ErrManifest = errors.New("export: invalid manifest")
)

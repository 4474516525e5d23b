// Package layout defines the structure descriptor consumed by the scaffold
// engine: a finite tree of directories, each carrying the plain file names
// that should be generated inside it.
//
// A descriptor is a [DirectoryGroup] whose children are either further
// [DirectoryGroup] values or flat [FileList] values. The root group has an
// empty name and stands for the base path of a run.
//
// # File format
//
// Descriptors can be loaded from YAML or TOML documents that follow the
// shape of a nested mapping:
//
//	files: [docker-compose.yml]
//	web:
//	  files: [Dockerfile, requirements.txt]
//	  app:
//	    files: [main.py, db.py]
//	    routers: [__init__.py, schema.py, query.py]
//
// A key mapped to a mapping is a directory group, a key mapped to a
// sequence is a file list, and the reserved key "files" holds the file list
// of the enclosing directory.
package layout

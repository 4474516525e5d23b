// Package scaffold materializes a layout descriptor on a filesystem.
//
// A [Materializer] walks a [layout.DirectoryGroup] in declaration order.
// Every directory is created with MkdirAll, so existing directories are
// reused as they are. Every listed file whose name is registered in the
// template lookup is written in full, replacing any previous content.
// Names with no registered template are skipped without error.
//
// The first filesystem failure aborts the walk. Files written before the
// failure stay on disk.
package scaffold

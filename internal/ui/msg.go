package ui

import "github.com/SathFenrir/lockroi/internal/table"

// Tea message types for UI communication

// TableReloadedMsg reports the outcome of an explicit table reload.
type TableReloadedMsg struct {
	Table *table.Table
	Err   error
}

// CurveExportedMsg reports the outcome of an ROI curve export.
type CurveExportedMsg struct {
	Path string
	Err  error
}

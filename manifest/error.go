package manifest

import "github.com/ardnew/scadgen/scad"

var (
	ErrDecode          = scad.NewError("decode manifest")
	ErrRead            = scad.NewError("read manifest")
	ErrNodeKind        = scad.NewError("node must name exactly one kind")
	ErrNodeBody        = scad.NewError("node cannot have a body")
	ErrChainLink       = scad.NewError("chain link must be a bodiless operation")
	ErrUnknownModule   = scad.NewError("unknown module")
	ErrDuplicateModule = scad.NewError("module defined twice")
	ErrImportNotFound  = scad.NewError("import not found")
	ErrImportCycle     = scad.NewError("import cycle")
	ErrValue           = scad.NewError("invalid value")
	ErrExpr            = scad.NewError("evaluate expression")
	ErrEach            = scad.NewError("each requires a sequence")
	ErrBuilderBusy     = scad.NewError("builder has an open scope")
)

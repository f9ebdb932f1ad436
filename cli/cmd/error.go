package cmd

import "github.com/ardnew/scadgen/scad"

var (
	ErrReadSource  = scad.NewError("read source")
	ErrWriteOutput = scad.NewError("write output")
	ErrYAMLMarshal = scad.NewError("marshal YAML")
	ErrWriteConfig = scad.NewError("write configuration file")
	ErrFileExists  = scad.NewError("file exists (use --force to overwrite)")
)

package app

import "gwspec/internal/types"

type ResolveRequest struct {
	Spec       string
	Privacy    string
	OutputPath string
}

type ResolveResult struct {
	Document   types.SpecDocument
	Source     types.SourceTag
	OutputPath string
}

type FillFieldsRequest struct {
	Spec       string
	Privacy    string
	FieldsPath string
	OutputPath string
}

type FillFieldsResult struct {
	Document   types.SpecDocument
	Source     types.SourceTag
	OutputPath string
}

type ClassifyRequest struct {
	Spec string
}

type ClassifyResult struct {
	Source          types.SourceTag
	RequiresNetwork bool
}

type FieldNamesRequest struct {
	Spec    string
	Privacy string
}

type FieldNamesResult struct {
	Source types.SourceTag
	Charts []map[string]string
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Zilliqa/rs-scilla-parser/ast"
)

// fieldView and contractView are flat, JSON-friendly projections of the
// ast model: ast.Type is a sealed interface with no exported fields of
// its own, so a generator or this CLI renders it through its String()
// form rather than trying to marshal the interface directly.
type fieldView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type transitionView struct {
	Name   string      `json:"name"`
	Params []fieldView `json:"params"`
}

type contractView struct {
	Name        string           `json:"name"`
	InitParams  []fieldView      `json:"init_params"`
	Fields      []fieldView      `json:"fields"`
	Transitions []transitionView `json:"transitions"`
}

func newContractView(c *ast.Contract) contractView {
	return contractView{
		Name:        c.Name,
		InitParams:  fieldViews(c.InitParams),
		Fields:      fieldViews(c.Fields),
		Transitions: transitionViews(c.Transitions),
	}
}

func fieldViews(fields []ast.Field) []fieldView {
	views := make([]fieldView, len(fields))
	for i, f := range fields {
		views[i] = fieldView{Name: f.Name, Type: f.Type.String()}
	}
	return views
}

func transitionViews(transitions []ast.Transition) []transitionView {
	views := make([]transitionView, len(transitions))
	for i, t := range transitions {
		views[i] = transitionView{Name: t.Name, Params: fieldViews(t.Params)}
	}
	return views
}

func (v contractView) json() (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (v contractView) text() string {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", bold("contract"), cyan(v.Name))
	writeFieldList(&b, "init params", v.InitParams)
	writeFieldList(&b, "fields", v.Fields)

	fmt.Fprintf(&b, "  transitions:\n")
	if len(v.Transitions) == 0 {
		fmt.Fprintf(&b, "    (none)\n")
	}
	for _, t := range v.Transitions {
		fmt.Fprintf(&b, "    %s(", t.Name)
		for i, p := range t.Params {
			if i > 0 {
				fmt.Fprintf(&b, ", ")
			}
			fmt.Fprintf(&b, "%s: %s", p.Name, p.Type)
		}
		fmt.Fprintf(&b, ")\n")
	}
	return b.String()
}

func writeFieldList(b *strings.Builder, label string, fields []fieldView) {
	fmt.Fprintf(b, "  %s:\n", label)
	if len(fields) == 0 {
		fmt.Fprintf(b, "    (none)\n")
		return
	}
	for _, f := range fields {
		fmt.Fprintf(b, "    %s: %s\n", f.Name, f.Type)
	}
}

package output

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Interpolate renders an HCL-style template string such as "hello ${name}!"
// against args. Parsing and variable extraction reuse
// hclsyntax.ParseTemplate and Expression.Variables() rather than
// hand-rolling a "${...}" scanner.
//
// Only the root identifier of each referenced variable is looked up in
// args; any traversal beyond that (e.g. "${obj.field}") is left to HCL's
// own evaluation once the root value has been converted to a cty.Value.
func Interpolate(ctx context.Context, tmpl string, args map[string]any) (Output, error) {
	expr, diags := hclsyntax.ParseTemplate([]byte(tmpl), "interpolate", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	names := rootNames(expr.Variables())
	children := make([]Output, len(names))
	for i, n := range names {
		c, err := Lift(ctx, args[n])
		if err != nil {
			return nil, err
		}
		children[i] = c
	}

	_, deps, _ := splitDeps(children)
	return deriveOutput(deps, func(ctx context.Context) (any, bool, bool, ResourceSet, error) {
		results, err := awaitAllLabeled(ctx, children, names)
		if err != nil {
			return nil, false, false, nil, err
		}
		known, secret, _, allDeps := joinMeta(results)
		if !known {
			return nil, false, secret, allDeps, nil
		}

		evalCtx := &hcl.EvalContext{Variables: make(map[string]cty.Value, len(names))}
		for i, n := range names {
			evalCtx.Variables[n] = goToCty(results[i].value)
		}
		result, diags := expr.Value(evalCtx)
		if diags.HasErrors() {
			// known/secret/allDeps are already fully resolved at this point;
			// only the template evaluation itself failed.
			return nil, false, secret, allDeps, fmt.Errorf("output: interpolate: %w", diags)
		}
		value := ctyToGo(result)
		if IsUnknown(value) {
			return nil, false, secret, allDeps, nil
		}
		return value, true, secret, allDeps, nil
	}), nil
}

func rootNames(traversals []hcl.Traversal) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, t := range traversals {
		if len(t) == 0 {
			continue
		}
		root, ok := t[0].(hcl.TraverseRoot)
		if !ok {
			continue
		}
		if _, dup := seen[root.Name]; dup {
			continue
		}
		seen[root.Name] = struct{}{}
		names = append(names, root.Name)
	}
	return names
}

package analysis

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tspython "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// pythonLanguage is the compiled tree-sitter grammar. Loading it once is
// safe: the language handle is immutable and shared across parsers.
var pythonLanguage = sitter.NewLanguage(tspython.Language())

// pythonStrategy is the single Structured-capability strategy: a full
// tree-sitter parse with a line-pattern fallback when the parse fails.
type pythonStrategy struct{}

func (pythonStrategy) Capability() Capability { return Structured }

// parsePython builds the syntax tree for src. The returned tree must be
// closed by the caller. A tree whose root contains error or missing nodes
// counts as a structural-parse failure.
func parsePython(src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(pythonLanguage); err != nil {
		return nil, fmt.Errorf("loading python grammar: %w", err)
	}
	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser returned no tree")
	}
	return tree, nil
}

// visit walks the named nodes of the tree depth-first, pre-order.
func visit(node *sitter.Node, fn func(*sitter.Node)) {
	fn(node)
	for i := uint(0); i < node.NamedChildCount(); i++ {
		visit(node.NamedChild(i), fn)
	}
}

func (pythonStrategy) ExtractImports(code string) []string {
	src := []byte(code)
	tree, err := parsePython(src)
	if err != nil {
		return fallbackPythonImports(code)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return fallbackPythonImports(code)
	}

	imports := []string{}
	visit(root, func(n *sitter.Node) {
		switch n.Kind() {
		case "import_statement":
			for i := uint(0); i < n.NamedChildCount(); i++ {
				if name := importedName(n.NamedChild(i), src); name != "" {
					imports = append(imports, "import "+name)
				}
			}
		case "import_from_statement":
			module := ""
			var moduleStart uint
			if mod := n.ChildByFieldName("module_name"); mod != nil {
				// Relative imports keep only the module part, the way the
				// report format has always rendered them.
				module = strings.TrimLeft(mod.Utf8Text(src), ".")
				moduleStart = mod.StartByte()
			}
			names := []string{}
			for i := uint(0); i < n.NamedChildCount(); i++ {
				child := n.NamedChild(i)
				if child.StartByte() == moduleStart {
					continue
				}
				if child.Kind() == "wildcard_import" {
					names = append(names, "*")
					continue
				}
				if name := importedName(child, src); name != "" {
					names = append(names, name)
				}
			}
			imports = append(imports, fmt.Sprintf("from %s import %s", module, strings.Join(names, ", ")))
		}
	})
	return imports
}

// importedName returns the primary referenced name of an import target,
// dropping alias targets ("import x as y" contributes "x").
func importedName(node *sitter.Node, src []byte) string {
	switch node.Kind() {
	case "dotted_name":
		return node.Utf8Text(src)
	case "aliased_import":
		if name := node.ChildByFieldName("name"); name != nil {
			return name.Utf8Text(src)
		}
	}
	return ""
}

func (pythonStrategy) ExtractFunctions(code string) []Function {
	src := []byte(code)
	tree, err := parsePython(src)
	if err != nil {
		return fallbackPythonFunctions(code)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return fallbackPythonFunctions(code)
	}

	functions := []Function{}
	visit(root, func(n *sitter.Node) {
		if n.Kind() != "function_definition" {
			return
		}
		fn := Function{
			Line: int(n.StartPosition().Row) + 1,
			Args: []string{},
		}
		if name := n.ChildByFieldName("name"); name != nil {
			fn.Name = name.Utf8Text(src)
		}
		if params := n.ChildByFieldName("parameters"); params != nil {
			fn.Args = positionalParams(params, src)
		}
		if body := n.ChildByFieldName("body"); body != nil {
			fn.Docstring = leadingDocstring(body, src)
		}
		functions = append(functions, fn)
	})
	return functions
}

// positionalParams collects plain positional parameter names. Variadic,
// keyword, and defaulted parameters are not captured.
func positionalParams(params *sitter.Node, src []byte) []string {
	args := []string{}
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		switch child.Kind() {
		case "identifier":
			args = append(args, child.Utf8Text(src))
		case "typed_parameter":
			if child.NamedChildCount() > 0 && child.NamedChild(0).Kind() == "identifier" {
				args = append(args, child.NamedChild(0).Utf8Text(src))
			}
		}
	}
	return args
}

// leadingDocstring returns the cleaned text of a block's leading string
// literal, or nil when the block does not start with one.
func leadingDocstring(body *sitter.Node, src []byte) *string {
	if body.NamedChildCount() == 0 {
		return nil
	}
	stmt := body.NamedChild(0)
	if stmt.Kind() != "expression_statement" || stmt.NamedChildCount() == 0 {
		return nil
	}
	str := stmt.NamedChild(0)
	if str.Kind() != "string" {
		return nil
	}
	var parts []string
	for i := uint(0); i < str.NamedChildCount(); i++ {
		if c := str.NamedChild(i); c.Kind() == "string_content" {
			parts = append(parts, c.Utf8Text(src))
		}
	}
	doc := cleanDoc(strings.Join(parts, ""))
	return &doc
}

// cleanDoc normalizes a docstring: leading/trailing blank space goes away
// and the common indentation of continuation lines is stripped.
func cleanDoc(doc string) string {
	lines := strings.Split(doc, "\n")
	if len(lines) == 1 {
		return strings.TrimSpace(doc)
	}

	indent := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		width := len(line) - len(trimmed)
		if indent < 0 || width < indent {
			indent = width
		}
	}

	out := []string{strings.TrimSpace(lines[0])}
	for _, line := range lines[1:] {
		if indent > 0 && len(line) >= indent {
			line = line[indent:]
		}
		out = append(out, strings.TrimRight(line, " \t"))
	}
	return strings.Trim(strings.Join(out, "\n"), "\n")
}

func (pythonStrategy) ValidateSyntax(code string) SyntaxResult {
	src := []byte(code)
	tree, err := parsePython(src)
	if err != nil {
		return SyntaxResult{Valid: false, Error: err.Error()}
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return SyntaxResult{Valid: true}
	}
	return SyntaxResult{Valid: false, Error: describeSyntaxError(root)}
}

// describeSyntaxError locates the first error or missing node and renders a
// parser diagnostic with a 1-based position.
func describeSyntaxError(root *sitter.Node) string {
	var bad *sitter.Node
	var find func(n *sitter.Node)
	find = func(n *sitter.Node) {
		if bad != nil {
			return
		}
		if n.IsError() || n.IsMissing() {
			bad = n
			return
		}
		if !n.HasError() {
			return
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			find(n.Child(i))
		}
	}
	find(root)

	if bad == nil {
		return "invalid syntax"
	}
	pos := bad.StartPosition()
	if bad.IsMissing() {
		return fmt.Sprintf("missing %s at line %d, column %d", bad.Kind(), pos.Row+1, pos.Column+1)
	}
	return fmt.Sprintf("invalid syntax at line %d, column %d", pos.Row+1, pos.Column+1)
}

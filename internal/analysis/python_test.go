package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func TestPythonImports(t *testing.T) {
	testCases := []struct {
		name     string
		code     string
		expected []string
	}{
		{
			name:     "Plain and from imports",
			code:     "import os\nfrom sys import path",
			expected: []string{"import os", "from sys import path"},
		},
		{
			name:     "Multiple names in one statement",
			code:     "import os, json",
			expected: []string{"import os", "import json"},
		},
		{
			name:     "Aliases keep the primary name",
			code:     "import numpy as np\nfrom os import path as p",
			expected: []string{"import numpy", "from os import path"},
		},
		{
			name:     "Dotted modules and multiple names",
			code:     "from os.path import join, dirname",
			expected: []string{"from os.path import join, dirname"},
		},
		{
			name:     "Wildcard import",
			code:     "from os import *",
			expected: []string{"from os import *"},
		},
		{
			name:     "Imports inside functions are found",
			code:     "def f():\n    import json\n    return json",
			expected: []string{"import json"},
		},
		{
			name:     "No imports",
			code:     "x = 1\n",
			expected: []string{},
		},
	}

	s := pythonStrategy{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := s.ExtractImports(tc.code)
			if !reflect.DeepEqual(actual, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, actual)
			}
		})
	}
}

func TestPythonFunctions(t *testing.T) {
	code := "# helper module\ndef add(a, b):\n    \"\"\"Add two numbers.\"\"\"\n    return a + b\n"
	functions := pythonStrategy{}.ExtractFunctions(code)

	if len(functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(functions))
	}
	fn := functions[0]
	if fn.Name != "add" {
		t.Errorf("expected name 'add', got %q", fn.Name)
	}
	if fn.Line != 2 {
		t.Errorf("expected line 2, got %d", fn.Line)
	}
	if !reflect.DeepEqual(fn.Args, []string{"a", "b"}) {
		t.Errorf("expected args [a b], got %v", fn.Args)
	}
	if fn.Docstring == nil || *fn.Docstring != "Add two numbers." {
		t.Errorf("expected docstring 'Add two numbers.', got %v", fn.Docstring)
	}
}

func TestPythonFunctionDetails(t *testing.T) {
	code := strings.Join([]string{
		"class Calc:",
		"    def scale(self, factor: int, *args, verbose=False, **kwargs):",
		"        return factor",
		"",
		"def outer():",
		"    def inner(x):",
		"        return x",
		"    return inner",
	}, "\n")

	functions := pythonStrategy{}.ExtractFunctions(code)
	if len(functions) != 3 {
		t.Fatalf("expected 3 functions, got %d: %v", len(functions), functions)
	}

	scale := functions[0]
	if scale.Name != "scale" || scale.Line != 2 {
		t.Errorf("expected scale at line 2, got %s at %d", scale.Name, scale.Line)
	}
	// Variadic, keyword, and defaulted parameters are not captured.
	if !reflect.DeepEqual(scale.Args, []string{"self", "factor"}) {
		t.Errorf("expected args [self factor], got %v", scale.Args)
	}
	if scale.Docstring != nil {
		t.Errorf("expected no docstring, got %q", *scale.Docstring)
	}

	if functions[1].Name != "outer" || functions[2].Name != "inner" {
		t.Errorf("expected outer then inner, got %v", functions)
	}

	totalLines := len(strings.Split(code, "\n"))
	for _, fn := range functions {
		if fn.Line < 1 || fn.Line > totalLines {
			t.Errorf("function %s line %d out of range [1, %d]", fn.Name, fn.Line, totalLines)
		}
	}
}

func TestPythonMultilineDocstring(t *testing.T) {
	code := "def greet(name):\n    \"\"\"Say hello.\n\n    Politely.\n    \"\"\"\n    return name\n"
	functions := pythonStrategy{}.ExtractFunctions(code)
	if len(functions) != 1 || functions[0].Docstring == nil {
		t.Fatalf("expected one documented function, got %v", functions)
	}
	if got := *functions[0].Docstring; got != "Say hello.\n\nPolitely." {
		t.Errorf("unexpected docstring: %q", got)
	}
}

func TestPythonSyntaxValidation(t *testing.T) {
	s := pythonStrategy{}

	if result := s.ValidateSyntax("def add(a, b):\n    return a + b\n"); !result.Valid || result.Error != "" {
		t.Errorf("valid file reported invalid: %+v", result)
	}

	result := s.ValidateSyntax("def broken(:\n    pass\n")
	if result.Valid {
		t.Fatal("invalid file reported valid")
	}
	if result.Error == "" {
		t.Error("invalid file must carry a parser diagnostic")
	}

	if result := s.ValidateSyntax("x = ((1 + 2)\n"); result.Valid {
		t.Error("unbalanced parenthesis reported valid")
	}
}

func TestPythonFallbackOnParseFailure(t *testing.T) {
	// A fatal syntax error later in the file must not lose the imports and
	// defs that pattern matching can still see.
	code := "import os\nfrom sys import path\n\ndef add(a, b):\n    return a + b\n\ndef broken(:\n"
	s := pythonStrategy{}

	imports := s.ExtractImports(code)
	if !reflect.DeepEqual(imports, []string{"import os", "from sys import path"}) {
		t.Errorf("fallback imports = %v", imports)
	}

	functions := s.ExtractFunctions(code)
	if len(functions) != 1 || functions[0].Name != "add" || functions[0].Line != 4 {
		t.Errorf("fallback functions = %v", functions)
	}
	if functions[0].Docstring != nil {
		t.Error("fallback tier cannot recover docstrings")
	}
}

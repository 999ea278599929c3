package solution

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"

	"github.com/AndreyAkinshin/aocrun/pkg/aoc"
)

// Interpreter loads solution sources with the yaegi Go interpreter, so a
// solution can be run without a build step. The aoc helper package is
// available to solutions and reads inputs below Reader.Root.
type Interpreter struct {
	reader aoc.Reader
	log    *zap.Logger
}

// NewInterpreter returns an Interpreter that binds the aoc package to root.
func NewInterpreter(root string, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{reader: aoc.Reader{Root: root}, log: log}
}

// Load evaluates the solution at path and resolves its entry points.
// Evaluating the source runs its package-level initialisers.
func (in *Interpreter) Load(ctx context.Context, path string) (m *Module, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	declared, err := declaredParts(path, src)
	if err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib: %w", err)
	}
	if err := i.Use(in.exports()); err != nil {
		return nil, fmt.Errorf("load aoc package: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("initialise %s: %v", path, r)
		}
	}()

	in.log.Debug("evaluating solution", zap.String("path", path), zap.Strings("parts", declared))
	if _, err := i.EvalWithContext(ctx, string(src)); err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", path, err)
	}

	m = &Module{}
	for _, name := range declared {
		v, err := i.Eval("main." + name)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		part, err := wrapFunc(name, v)
		if err != nil {
			return nil, err
		}
		switch name {
		case Part1Name:
			m.Part1 = part
		case Part2Name:
			m.Part2 = part
		}
	}
	return m, nil
}

// exports binds the aoc helper package for interpreted code.
func (in *Interpreter) exports() interp.Exports {
	r := in.reader
	return interp.Exports{
		aoc.ImportPath + "/aoc": {
			"ReadInput":     reflect.ValueOf(r.ReadInput),
			"MustReadInput": reflect.ValueOf(r.MustReadInput),
			"ParseLines":    reflect.ValueOf(aoc.ParseLines),
			"ParseInts":     reflect.ValueOf(aoc.ParseInts),
			"IncludeEmpty":  reflect.ValueOf(aoc.IncludeEmpty),
			"Map":           reflect.ValueOf(aoc.Map),

			"LineOption": reflect.ValueOf((*aoc.LineOption)(nil)),
			"Reader":     reflect.ValueOf((*aoc.Reader)(nil)),
		},
	}
}

// declaredParts parses src and returns the entry points it declares at
// package level. The source must be in package main.
func declaredParts(path string, src []byte) ([]string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	if file.Name.Name != "main" {
		return nil, fmt.Errorf("%s: solution must be in package main, found package %s", path, file.Name.Name)
	}

	found := map[string]bool{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				found[d.Name.Name] = true
			}
		case *ast.GenDecl:
			if d.Tok != token.VAR {
				continue
			}
			for _, s := range d.Specs {
				for _, name := range s.(*ast.ValueSpec).Names {
					found[name.Name] = true
				}
			}
		}
	}

	var parts []string
	for _, name := range []string{Part1Name, Part2Name} {
		if found[name] {
			parts = append(parts, name)
		}
	}
	return parts, nil
}

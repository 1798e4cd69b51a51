// Package inspect locates the function under test in a Python source file.
package inspect

import (
	"context"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"go.uber.org/zap"
)

// FallbackName is returned when no public function can be discovered.
const FallbackName = "candidate"

// Inspector extracts the first public top-level function name from Python
// sources. Discovery is best-effort: parse failures degrade to FallbackName.
type Inspector struct {
	log *zap.Logger
}

// New creates an inspector. A nil logger disables warnings.
func New(log *zap.Logger) *Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inspector{log: log}
}

// TargetFunction returns the name of the first top-level function definition
// whose name does not start with an underscore, in source order. It never
// fails: unreadable or unparsable input yields FallbackName with a warning.
func (in *Inspector) TargetFunction(sourceFile string) string {
	content, err := os.ReadFile(sourceFile)
	if err != nil {
		in.log.Warn("could not read source file", zap.String("file", sourceFile), zap.Error(err))
		return FallbackName
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil || tree == nil {
		in.log.Warn("could not parse source file", zap.String("file", sourceFile), zap.Error(err))
		return FallbackName
	}
	defer tree.Close()

	if name := firstPublicFunction(tree.RootNode(), content); name != "" {
		return name
	}

	in.log.Warn("no public function found", zap.String("file", sourceFile))
	return FallbackName
}

// firstPublicFunction scans the module's top-level statements in source
// order, descending through decorators, and returns the first function name
// not prefixed with an underscore.
func firstPublicFunction(root *sitter.Node, source []byte) string {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() == "decorated_definition" {
			if def := node.ChildByFieldName("definition"); def != nil {
				node = def
			}
		}
		if node.Type() != "function_definition" {
			continue
		}
		nameNode := node.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		name := string(source[nameNode.StartByte():nameNode.EndByte()])
		if name != "" && !strings.HasPrefix(name, "_") {
			return name
		}
	}
	return ""
}

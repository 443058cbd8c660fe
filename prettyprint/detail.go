// Copyright 2026 The gocypher Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prettyprint

import (
	"fmt"
	"strings"

	"github.com/cyphergraph/gocypher/ast"
)

// detailRenderers is the kind-indexed dispatch table for the short-form
// detail column, mirroring ast.New's data-table-driven dispatch rather than
// a giant type switch. Kinds not present here (mostly structural container
// kinds whose children already say everything, and abstract kinds no node
// is ever tagged with) fall back to genericDetail.
var detailRenderers = map[ast.Kind]func(*ast.Node) string{
	ast.KindIdentifier:   func(n *ast.Node) string { return n.IdentifierName() },
	ast.KindParameter:    func(n *ast.Node) string { return "$" + n.ParameterName() },
	ast.KindString:       func(n *ast.Node) string { return fmt.Sprintf("%q", n.StringValue()) },
	ast.KindInteger:      func(n *ast.Node) string { return n.IntegerText() },
	ast.KindFloat:        func(n *ast.Node) string { return n.FloatText() },
	ast.KindTrue:         func(n *ast.Node) string { return "true" },
	ast.KindFalse:        func(n *ast.Node) string { return "false" },
	ast.KindNull:         func(n *ast.Node) string { return "null" },
	ast.KindFunctionName: func(n *ast.Node) string { return n.NameLeafValue() },
	ast.KindLabel:        func(n *ast.Node) string { return ":" + n.NameLeafValue() },
	ast.KindPropName:     func(n *ast.Node) string { return n.NameLeafValue() },
	ast.KindRelType:      func(n *ast.Node) string { return ":" + n.NameLeafValue() },

	ast.KindUnaryOp: func(n *ast.Node) string {
		p := n.Payload.(ast.UnaryOpPayload)
		return p.Op.Symbol
	},
	ast.KindBinaryOp: func(n *ast.Node) string {
		p := n.Payload.(ast.BinaryOpPayload)
		return p.Op.Symbol
	},
	ast.KindComparison: func(n *ast.Node) string {
		p := n.Payload.(ast.ComparisonPayload)
		syms := make([]string, len(p.Operators))
		for i, op := range p.Operators {
			syms[i] = op.Symbol
		}
		return strings.Join(syms, " ")
	},
	ast.KindApply: func(n *ast.Node) string {
		p := n.Payload.(ast.ApplyPayload)
		distinct := ""
		if p.Distinct {
			distinct = "DISTINCT "
		}
		return fmt.Sprintf("%s(%s...)", p.FuncName.NameLeafValue(), distinct)
	},
	ast.KindApplyAll: func(n *ast.Node) string {
		p := n.Payload.(ast.ApplyAllPayload)
		return fmt.Sprintf("%s(*)", p.FuncName.NameLeafValue())
	},
	ast.KindProperty: func(n *ast.Node) string {
		p := n.Payload.(ast.PropertyPayload)
		return "." + p.PropName.NameLeafValue()
	},
	ast.KindLabels: func(n *ast.Node) string {
		p := n.Payload.(ast.LabelsPayload)
		return fmt.Sprintf("%d label(s)", len(p.Labels))
	},
	ast.KindCollection: func(n *ast.Node) string {
		p := n.Payload.(ast.CollectionPayload)
		return fmt.Sprintf("%d element(s)", len(p.Elements))
	},
	ast.KindMap: func(n *ast.Node) string {
		p := n.Payload.(ast.MapPayload)
		return fmt.Sprintf("%d entries", len(p.Keys))
	},
	ast.KindMapProjection: func(n *ast.Node) string {
		p := n.Payload.(ast.MapProjectionPayload)
		return p.Identifier.IdentifierName()
	},
	ast.KindMapProjectionLiteral: func(n *ast.Node) string {
		p := n.Payload.(ast.MapProjectionLiteralPayload)
		return p.PropName.NameLeafValue() + ": …"
	},
	ast.KindMapProjectionProperty: func(n *ast.Node) string {
		p := n.Payload.(ast.MapProjectionPropertyPayload)
		return "." + p.PropName.NameLeafValue()
	},
	ast.KindMapProjectionIdentifier: func(n *ast.Node) string {
		p := n.Payload.(ast.MapProjectionIdentifierPayload)
		return "." + p.Identifier.IdentifierName()
	},
	ast.KindMapProjectionAllProperties: func(n *ast.Node) string { return ".*" },
	ast.KindCase: func(n *ast.Node) string {
		p := n.Payload.(ast.CasePayload)
		return fmt.Sprintf("%d alternative(s)", len(p.Alternatives))
	},

	ast.KindAll:                   comprehensionDetail,
	ast.KindAny:                   comprehensionDetail,
	ast.KindSingle:                comprehensionDetail,
	ast.KindNone:                  comprehensionDetail,
	ast.KindFilter:                comprehensionDetail,
	ast.KindExtract:               comprehensionDetail,
	ast.KindListComprehension:     comprehensionDetail,
	ast.KindReduce: func(n *ast.Node) string {
		p := n.Payload.(ast.ReducePayload)
		return fmt.Sprintf("%s IN ..., %s = ...", p.Identifier.IdentifierName(), p.Accumulator.IdentifierName())
	},
	ast.KindPatternComprehension: func(n *ast.Node) string {
		p := n.Payload.(ast.PatternComprehensionPayload)
		if p.Identifier != nil {
			return p.Identifier.IdentifierName()
		}
		return ""
	},

	ast.KindNamedPath: func(n *ast.Node) string {
		p := n.Payload.(ast.NamedPathPayload)
		return p.Identifier.IdentifierName()
	},
	ast.KindShortestPath: func(n *ast.Node) string {
		p := n.Payload.(ast.ShortestPathPayload)
		if p.Single {
			return "shortestPath"
		}
		return "allShortestPaths"
	},
	ast.KindNodePattern: func(n *ast.Node) string {
		p := n.Payload.(ast.NodePatternPayload)
		name := ""
		if p.Identifier != nil {
			name = p.Identifier.IdentifierName()
		}
		return fmt.Sprintf("(%s) %d label(s)", name, len(p.Labels))
	},
	ast.KindRelPattern: func(n *ast.Node) string {
		p := n.Payload.(ast.RelPatternPayload)
		dir := "--"
		switch p.Direction {
		case ast.RelOutward:
			dir = "-->"
		case ast.RelInward:
			dir = "<--"
		}
		return fmt.Sprintf("%s %d type(s)", dir, len(p.RelTypes))
	},

	ast.KindMatch: func(n *ast.Node) string {
		p := n.Payload.(ast.MatchPayload)
		if p.Optional {
			return "OPTIONAL"
		}
		return ""
	},
	ast.KindDelete: func(n *ast.Node) string {
		p := n.Payload.(ast.DeletePayload)
		if p.Detach {
			return "DETACH"
		}
		return ""
	},
	ast.KindReturn: func(n *ast.Node) string { return projectionDetail(n.Payload.(ast.ReturnPayload).ProjectionClause) },
	ast.KindWith:   func(n *ast.Node) string { return projectionDetail(n.Payload.(ast.WithPayload).ProjectionClause) },
	ast.KindProjection: func(n *ast.Node) string {
		p := n.Payload.(ast.ProjectionPayload)
		if p.Alias != nil {
			return "AS " + p.Alias.IdentifierName()
		}
		return ""
	},
	ast.KindSortItem: func(n *ast.Node) string {
		p := n.Payload.(ast.SortItemPayload)
		if p.Ascending {
			return "ASC"
		}
		return "DESC"
	},
	ast.KindUnwind: func(n *ast.Node) string {
		p := n.Payload.(ast.UnwindPayload)
		return "AS " + p.Alias.IdentifierName()
	},
	ast.KindCall: func(n *ast.Node) string {
		p := n.Payload.(ast.CallPayload)
		return p.ProcName.NameLeafValue() + "(...)"
	},
	ast.KindForeach: func(n *ast.Node) string {
		p := n.Payload.(ast.ForeachPayload)
		return p.Identifier.IdentifierName() + " IN ..."
	},
	ast.KindLoadCSV: func(n *ast.Node) string {
		p := n.Payload.(ast.LoadCSVPayload)
		h := ""
		if p.WithHeaders {
			h = "WITH HEADERS "
		}
		return h + "AS " + p.Identifier.IdentifierName()
	},
	ast.KindUnion: func(n *ast.Node) string {
		p := n.Payload.(ast.UnionPayload)
		if p.All {
			return "ALL"
		}
		return ""
	},
	ast.KindSetLabels: func(n *ast.Node) string {
		p := n.Payload.(ast.SetLabelsPayload)
		return p.Identifier.IdentifierName()
	},
	ast.KindRemoveLabels: func(n *ast.Node) string {
		p := n.Payload.(ast.RemoveLabelsPayload)
		return p.Identifier.IdentifierName()
	},

	ast.KindCommand: func(n *ast.Node) string {
		p := n.Payload.(ast.CommandPayload)
		return ":" + p.Name.StringValue()
	},
	ast.KindLineComment: func(n *ast.Node) string {
		return n.Payload.(ast.LineCommentPayload).Text
	},
	ast.KindBlockComment: func(n *ast.Node) string {
		return n.Payload.(ast.BlockCommentPayload).Text
	},
}

func comprehensionDetail(n *ast.Node) string {
	cl, ok := ast.AsListComprehensionLike(n)
	if !ok {
		return ""
	}
	id := cl.Identifier()
	if id == nil {
		return ""
	}
	return id.IdentifierName() + " IN ..."
}

func projectionDetail(p ast.ProjectionClause) string {
	parts := []string{}
	if p.Distinct {
		parts = append(parts, "DISTINCT")
	}
	if p.IncludeExisting {
		parts = append(parts, "*")
	}
	parts = append(parts, fmt.Sprintf("%d projection(s)", len(p.Projections)))
	return strings.Join(parts, " ")
}

// renderDetail dispatches to the per-kind renderer for n.Kind, falling back
// to a structural default for kinds with nothing bespoke to say.
func renderDetail(n *ast.Node) string {
	if fn, ok := detailRenderers[n.Kind]; ok {
		return fn(n)
	}
	return genericDetail(n)
}

// genericDetail covers the remaining structural kinds (Statement, Query,
// Pattern, Start and its lookups, schema commands, statement/query options
// and match hints) whose useful information is already visible from their
// children in the tree, so the detail column only needs a short tag.
func genericDetail(n *ast.Node) string {
	switch n.Kind {
	case ast.KindStatement, ast.KindQuery, ast.KindPattern, ast.KindPatternPath:
		return ""
	default:
		if n.NChildren() == 0 {
			return ""
		}
		return fmt.Sprintf("%d child(ren)", n.NChildren())
	}
}

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

// Package ast defines the Cypher abstract syntax tree: a closed universe of
// node kinds organized as a subtype lattice (instance-of is the reflexive
// transitive closure of a declared parent relation), a common node header
// (kind, children, source range, ordinal) and per-kind payloads.
package ast

// Kind tags an AST node with one member of the closed kind universe. The
// zero Kind is never assigned to a constructed node.
type Kind int

const (
	invalidKind Kind = iota

	// Abstract kinds. No node is ever constructed with one of these as its
	// own Kind; they exist only as lattice supertypes for InstanceOf checks.
	KindExpression
	KindQueryClause
	KindSchemaCommand
	KindStatementOption
	KindMatchHint
	KindQueryOption
	KindMapProjectionSelector
	KindListComprehensionNode
	KindComment
	KindRemoveItem
	KindSetItem
	KindMergeAction
	KindStartPoint
	KindBoolean

	// Top-level containers.
	KindStatement
	KindQuery
	KindCommand
	KindLineComment
	KindBlockComment

	// Expression leaves.
	KindIdentifier
	KindParameter
	KindString
	KindInteger
	KindFloat
	KindTrue
	KindFalse
	KindNull

	// Expression operators.
	KindUnaryOp
	KindBinaryOp
	KindComparison
	KindApply
	KindApplyAll
	KindProperty
	KindSubscript
	KindSlice
	KindLabels

	// Expression composites.
	KindCollection
	KindMap
	KindMapProjection
	KindCase
	KindPatternComprehension
	KindListComprehension
	KindFilter
	KindExtract
	KindReduce
	KindAll
	KindAny
	KindSingle
	KindNone

	// Pattern-path expressions.
	KindPatternPath
	KindAnonPatternPath
	KindNamedPath
	KindShortestPath

	// Name/leaf nodes.
	KindFunctionName
	KindLabel
	KindPropName
	KindRelType

	// Map projection selectors.
	KindMapProjectionLiteral
	KindMapProjectionProperty
	KindMapProjectionIdentifier
	KindMapProjectionAllProperties

	// Pattern structure.
	KindPattern
	KindNodePattern
	KindRelPattern
	KindRangeBound

	// Query clauses.
	KindMatch
	KindMerge
	KindCreate
	KindDelete
	KindRemove
	KindSet
	KindReturn
	KindWith
	KindUnwind
	KindCall
	KindForeach
	KindLoadCSV
	KindStart
	KindUnion

	// Query-clause helpers.
	KindOnMatch
	KindOnCreate
	KindMergeProperties
	KindProjection
	KindOrderBy
	KindSortItem
	KindRemoveLabels
	KindRemoveProperty
	KindSetProperty
	KindSetAllProperties
	KindSetLabels

	// Start-clause lookups.
	KindNodeIdLookup
	KindNodeIndexLookup
	KindNodeIndexQuery
	KindRelIdLookup
	KindRelIndexLookup
	KindRelIndexQuery

	// Schema commands.
	KindCreateNodePropIndex
	KindDropNodePropIndex
	KindCreateNodePropConstraint
	KindDropNodePropConstraint
	KindCreateRelPropConstraint
	KindDropRelPropConstraint

	// Statement options.
	KindCypherOption
	KindCypherOptionParam
	KindExplainOption
	KindProfileOption

	// Match hints.
	KindUsingIndex
	KindUsingJoin
	KindUsingScan

	// Query options.
	KindUsingPeriodicCommit

	numKinds
)

type kindInfo struct {
	name    string
	parents []Kind
}

// kindTable is the data-table the rest of the package is driven from: the
// per-kind name used by TypeName and the pretty-printer, plus the declared
// parent set the lattice is built from. Keeping this as a single table
// instead of a constructor-per-kind switch is the data-table-driven
// constructor dispatch called for in place of the source's macro-generated
// per-kind boilerplate.
var kindTable = map[Kind]kindInfo{
	KindExpression:            {"Expression", nil},
	KindQueryClause:           {"QueryClause", nil},
	KindSchemaCommand:         {"SchemaCommand", nil},
	KindStatementOption:       {"StatementOption", nil},
	KindMatchHint:             {"MatchHint", nil},
	KindQueryOption:           {"QueryOption", nil},
	KindMapProjectionSelector: {"MapProjectionSelector", nil},
	KindListComprehensionNode: {"ListComprehensionNode", nil},
	KindComment:               {"Comment", nil},
	KindRemoveItem:            {"RemoveItem", nil},
	KindSetItem:               {"SetItem", nil},
	KindMergeAction:           {"MergeAction", nil},
	KindStartPoint:            {"StartPoint", nil},
	KindBoolean:               {"Boolean", []Kind{KindExpression}},

	KindStatement:    {"Statement", nil},
	KindQuery:        {"Query", nil},
	KindCommand:      {"Command", nil},
	KindLineComment:  {"LineComment", []Kind{KindComment}},
	KindBlockComment: {"BlockComment", []Kind{KindComment}},

	KindIdentifier: {"Identifier", []Kind{KindExpression}},
	KindParameter:  {"Parameter", []Kind{KindExpression}},
	KindString:     {"String", []Kind{KindExpression}},
	KindInteger:    {"Integer", []Kind{KindExpression}},
	KindFloat:      {"Float", []Kind{KindExpression}},
	KindTrue:       {"True", []Kind{KindBoolean}},
	KindFalse:      {"False", []Kind{KindBoolean}},
	KindNull:       {"Null", []Kind{KindExpression}},

	KindUnaryOp:    {"UnaryOp", []Kind{KindExpression}},
	KindBinaryOp:   {"BinaryOp", []Kind{KindExpression}},
	KindComparison: {"Comparison", []Kind{KindExpression}},
	KindApply:      {"Apply", []Kind{KindExpression}},
	KindApplyAll:   {"ApplyAll", []Kind{KindExpression}},
	KindProperty:   {"Property", []Kind{KindExpression}},
	KindSubscript:  {"Subscript", []Kind{KindExpression}},
	KindSlice:      {"Slice", []Kind{KindExpression}},
	KindLabels:     {"Labels", []Kind{KindExpression}},

	KindCollection:           {"Collection", []Kind{KindExpression}},
	KindMap:                  {"Map", []Kind{KindExpression}},
	KindMapProjection:        {"MapProjection", []Kind{KindExpression}},
	KindCase:                 {"Case", []Kind{KindExpression}},
	KindPatternComprehension: {"PatternComprehension", []Kind{KindExpression}},
	KindListComprehension:    {"ListComprehension", []Kind{KindExpression, KindListComprehensionNode}},
	KindFilter:               {"Filter", []Kind{KindExpression, KindListComprehensionNode}},
	KindExtract:              {"Extract", []Kind{KindExpression, KindListComprehensionNode}},
	KindReduce:               {"Reduce", []Kind{KindExpression}},
	KindAll:                  {"All", []Kind{KindExpression, KindListComprehensionNode}},
	KindAny:                  {"Any", []Kind{KindExpression, KindListComprehensionNode}},
	KindSingle:               {"Single", []Kind{KindExpression, KindListComprehensionNode}},
	KindNone:                 {"None", []Kind{KindExpression, KindListComprehensionNode}},

	KindPatternPath:     {"PatternPath", []Kind{KindExpression}},
	KindAnonPatternPath: {"AnonPatternPath", []Kind{KindPatternPath}},
	KindNamedPath:       {"NamedPath", []Kind{KindPatternPath}},
	KindShortestPath:    {"ShortestPath", []Kind{KindExpression, KindPatternPath}},

	KindFunctionName: {"FunctionName", nil},
	KindLabel:        {"Label", nil},
	KindPropName:     {"PropName", nil},
	KindRelType:      {"RelType", nil},

	KindMapProjectionLiteral:       {"MapProjectionLiteral", []Kind{KindMapProjectionSelector}},
	KindMapProjectionProperty:      {"MapProjectionProperty", []Kind{KindMapProjectionSelector}},
	KindMapProjectionIdentifier:    {"MapProjectionIdentifier", []Kind{KindMapProjectionSelector}},
	KindMapProjectionAllProperties: {"MapProjectionAllProperties", []Kind{KindMapProjectionSelector}},

	KindPattern:     {"Pattern", nil},
	KindNodePattern: {"NodePattern", nil},
	KindRelPattern:  {"RelPattern", nil},
	KindRangeBound:  {"RangeBound", nil},

	KindMatch:   {"Match", []Kind{KindQueryClause}},
	KindMerge:   {"Merge", []Kind{KindQueryClause}},
	KindCreate:  {"Create", []Kind{KindQueryClause}},
	KindDelete:  {"Delete", []Kind{KindQueryClause}},
	KindRemove:  {"Remove", []Kind{KindQueryClause}},
	KindSet:     {"Set", []Kind{KindQueryClause}},
	KindReturn:  {"Return", []Kind{KindQueryClause}},
	KindWith:    {"With", []Kind{KindQueryClause}},
	KindUnwind:  {"Unwind", []Kind{KindQueryClause}},
	KindCall:    {"Call", []Kind{KindQueryClause}},
	KindForeach: {"Foreach", []Kind{KindQueryClause}},
	KindLoadCSV: {"LoadCSV", []Kind{KindQueryClause}},
	KindStart:   {"Start", []Kind{KindQueryClause}},
	KindUnion:   {"Union", []Kind{KindQueryClause}},

	KindOnMatch:           {"OnMatch", []Kind{KindMergeAction}},
	KindOnCreate:          {"OnCreate", []Kind{KindMergeAction}},
	KindMergeProperties:   {"MergeProperties", []Kind{KindSetItem}},
	KindProjection:        {"Projection", nil},
	KindOrderBy:           {"OrderBy", nil},
	KindSortItem:          {"SortItem", nil},
	KindRemoveLabels:      {"RemoveLabels", []Kind{KindRemoveItem}},
	KindRemoveProperty:    {"RemoveProperty", []Kind{KindRemoveItem}},
	KindSetProperty:       {"SetProperty", []Kind{KindSetItem}},
	KindSetAllProperties:  {"SetAllProperties", []Kind{KindSetItem}},
	KindSetLabels:         {"SetLabels", []Kind{KindSetItem}},

	KindNodeIdLookup:    {"NodeIdLookup", []Kind{KindStartPoint}},
	KindNodeIndexLookup: {"NodeIndexLookup", []Kind{KindStartPoint}},
	KindNodeIndexQuery:  {"NodeIndexQuery", []Kind{KindStartPoint}},
	KindRelIdLookup:     {"RelIdLookup", []Kind{KindStartPoint}},
	KindRelIndexLookup:  {"RelIndexLookup", []Kind{KindStartPoint}},
	KindRelIndexQuery:   {"RelIndexQuery", []Kind{KindStartPoint}},

	KindCreateNodePropIndex:      {"CreateNodePropIndex", []Kind{KindSchemaCommand}},
	KindDropNodePropIndex:        {"DropNodePropIndex", []Kind{KindSchemaCommand}},
	KindCreateNodePropConstraint: {"CreateNodePropConstraint", []Kind{KindSchemaCommand}},
	KindDropNodePropConstraint:   {"DropNodePropConstraint", []Kind{KindSchemaCommand}},
	KindCreateRelPropConstraint:  {"CreateRelPropConstraint", []Kind{KindSchemaCommand}},
	KindDropRelPropConstraint:    {"DropRelPropConstraint", []Kind{KindSchemaCommand}},

	KindCypherOption:      {"CypherOption", []Kind{KindStatementOption}},
	KindCypherOptionParam: {"CypherOptionParam", nil},
	KindExplainOption:     {"ExplainOption", []Kind{KindStatementOption}},
	KindProfileOption:     {"ProfileOption", []Kind{KindStatementOption}},

	KindUsingIndex: {"UsingIndex", []Kind{KindMatchHint}},
	KindUsingJoin:  {"UsingJoin", []Kind{KindMatchHint}},
	KindUsingScan:  {"UsingScan", []Kind{KindMatchHint}},

	KindUsingPeriodicCommit: {"UsingPeriodicCommit", []Kind{KindQueryOption}},
}

// instanceOf[k] holds k and every ancestor of k under the parent relation's
// reflexive transitive closure, computed once at package init.
var instanceOf map[Kind]map[Kind]bool

func init() {
	instanceOf = make(map[Kind]map[Kind]bool, len(kindTable))
	for k := range kindTable {
		instanceOf[k] = closure(k)
	}
}

func closure(k Kind) map[Kind]bool {
	seen := map[Kind]bool{k: true}
	stack := []Kind{k}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range kindTable[cur].parents {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}
	return seen
}

// InstanceOf reports whether kind k is k itself or a (transitive) subkind of
// ancestor, per the reflexive transitive closure of the declared parent
// relation.
func InstanceOf(k, ancestor Kind) bool {
	set, ok := instanceOf[k]
	if !ok {
		return false
	}
	return set[ancestor]
}

// TypeName returns the human-readable name of a kind, used by diagnostics
// and the pretty-printer.
func TypeName(k Kind) string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return "Unknown"
}

// validKind reports whether k is a member of the closed kind universe.
func validKind(k Kind) bool {
	_, ok := kindTable[k]
	return ok
}

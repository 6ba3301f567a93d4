package wire

import "gopkg.in/go-playground/validator.v9"

var validate = validator.New()

// Field filter operators.
const (
	OpLessThan           = "LESS_THAN"
	OpLessThanOrEqual    = "LESS_THAN_OR_EQUAL"
	OpGreaterThan        = "GREATER_THAN"
	OpGreaterThanOrEqual = "GREATER_THAN_OR_EQUAL"
	OpEqual              = "EQUAL"
	OpNotEqual           = "NOT_EQUAL"
	OpArrayContains      = "ARRAY_CONTAINS"
	OpArrayContainsAny   = "ARRAY_CONTAINS_ANY"
	OpIn                 = "IN"
	OpNotIn              = "NOT_IN"
)

// Composite filter operators.
const (
	OpAnd = "AND"
	OpOr  = "OR"
)

// Unary filter operators.
const (
	OpIsNan     = "IS_NAN"
	OpIsNull    = "IS_NULL"
	OpIsNotNan  = "IS_NOT_NAN"
	OpIsNotNull = "IS_NOT_NULL"
)

// Sort directions.
const (
	DirectionAscending  = "ASCENDING"
	DirectionDescending = "DESCENDING"
)

//FieldReference Names a document field, dot-separated for nested maps.
type FieldReference struct {
	FieldPath string `json:"fieldPath" validate:"required"`
}

//CollectionSelector Selects a collection under the query parent, optionally
//including all descendant collections of the same id.
type CollectionSelector struct {
	CollectionID   string `json:"collectionId" validate:"required"`
	AllDescendants bool   `json:"allDescendants,omitempty"`
}

//Filter One-of wrapper, same single-key convention as wire values: exactly
//one of the three fields is set.
type Filter struct {
	Composite *CompositeFilter `json:"compositeFilter,omitempty"`
	Field     *FieldFilter     `json:"fieldFilter,omitempty"`
	Unary     *UnaryFilter     `json:"unaryFilter,omitempty"`
}

//CompositeFilter Combines sub-filters with AND or OR.
type CompositeFilter struct {
	Op      string   `json:"op" validate:"required,oneof=AND OR"`
	Filters []Filter `json:"filters" validate:"required,min=1,dive"`
}

//FieldFilter Compares a field against a wire value.
type FieldFilter struct {
	Field FieldReference `json:"field"`
	Op    string         `json:"op" validate:"required,oneof=LESS_THAN LESS_THAN_OR_EQUAL GREATER_THAN GREATER_THAN_OR_EQUAL EQUAL NOT_EQUAL ARRAY_CONTAINS ARRAY_CONTAINS_ANY IN NOT_IN"`
	Value Value          `json:"value"`
}

//UnaryFilter Tests a field against a built-in predicate.
type UnaryFilter struct {
	Op    string         `json:"op" validate:"required,oneof=IS_NAN IS_NULL IS_NOT_NAN IS_NOT_NULL"`
	Field FieldReference `json:"field"`
}

//Order One sort clause. Direction defaults to ASCENDING when empty.
type Order struct {
	Field     FieldReference `json:"field"`
	Direction string         `json:"direction,omitempty" validate:"omitempty,oneof=ASCENDING DESCENDING"`
}

//Cursor Query cursor, a position relative to an ordered result set.
type Cursor struct {
	Values []Value `json:"values,omitempty"`
	Before bool    `json:"before,omitempty"`
}

//Projection The fields to return instead of full documents.
type Projection struct {
	Fields []FieldReference `json:"fields,omitempty" validate:"omitempty,dive"`
}

//StructuredQuery Declarative query shape. This package only declares and
//validates it; building a runnable query from it is the transport's job.
type StructuredQuery struct {
	Select  *Projection          `json:"select,omitempty"`
	From    []CollectionSelector `json:"from" validate:"required,min=1,dive"`
	Where   *Filter              `json:"where,omitempty"`
	OrderBy []Order              `json:"orderBy,omitempty" validate:"omitempty,dive"`
	StartAt *Cursor              `json:"startAt,omitempty"`
	EndAt   *Cursor              `json:"endAt,omitempty"`
	Offset  int32                `json:"offset,omitempty" validate:"gte=0"`
	Limit   int32                `json:"limit,omitempty" validate:"gte=0"`
}

//Validate Checks operator names, required selectors and bounds across the
//whole query tree.
func (q *StructuredQuery) Validate() error {
	return validate.Struct(q)
}

//RunQueryRequest Request envelope for running a structured query.
type RunQueryRequest struct {
	StructuredQuery *StructuredQuery `json:"structuredQuery,omitempty"`
}

//RunQueryResponse One element of a run-query result stream. Document is nil
//on progress-only elements that merely report skipped results or read time.
type RunQueryResponse struct {
	Document       *Document `json:"document,omitempty"`
	ReadTime       string    `json:"readTime,omitempty"`
	SkippedResults int32     `json:"skippedResults,omitempty"`
}

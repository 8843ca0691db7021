// pkg/record/client.go

package record

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Client is the record-store boundary shared by every entity service.
// One configured client per process; main constructs either the remote
// HTTP implementation or the sqlite-backed local one and injects it.
type Client interface {
	FetchRecords(table string, p Params) (*Response, error)
	GetRecordByID(table string, id int, p Params) (*SingleResponse, error)
	CreateRecord(table string, records []Record) (*Response, error)
	UpdateRecord(table string, records []Record) (*Response, error)
	DeleteRecord(table string, ids []int) (*Response, error)
}

type FieldName struct {
	Name string `json:"Name"`
}

type Field struct {
	Field          FieldName `json:"field"`
	ReferenceField *Field    `json:"referenceField,omitempty"`
}

// F selects a plain field, Ref a reference field expanded with the
// referenced record's Name.
func F(name string) Field { return Field{Field: FieldName{Name: name}} }

func Ref(name string) Field {
	return Field{Field: FieldName{Name: name}, ReferenceField: &Field{Field: FieldName{Name: "Name"}}}
}

const (
	OpEqualTo              = "EqualTo"
	OpGreaterThanOrEqualTo = "GreaterThanOrEqualTo"
	OpLessThanOrEqualTo    = "LessThanOrEqualTo"
)

type Where struct {
	FieldName string `json:"FieldName"`
	Operator  string `json:"Operator"`
	Values    []any  `json:"Values"`
}

type OrderBy struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"` // ASC|DESC
}

type PagingInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type Params struct {
	Fields     []Field     `json:"fields,omitempty"`
	Where      []Where     `json:"where,omitempty"`
	OrderBy    []OrderBy   `json:"orderBy,omitempty"`
	PagingInfo *PagingInfo `json:"pagingInfo,omitempty"`
}

type Record map[string]any

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

// Response is the uniform list/write envelope: Data on reads, Results
// on writes. Success=false carries a platform-reported message and is
// distinct from a transport error.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    []Record `json:"data,omitempty"`
	Results []Result `json:"results,omitempty"`
}

type SingleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

// FirstFailure scans write results for the first failed entry. Partial
// successes are not reconciled; callers surface the first message.
func (r *Response) FirstFailure() (string, bool) {
	for _, res := range r.Results {
		if !res.Success {
			if res.Message != "" {
				return res.Message, true
			}
			return "", true
		}
	}
	return "", false
}

// ReferenceID normalizes the dual reference shape: the store returns a
// reference field as either a nested {Id, Name} object or a raw scalar
// id. The UI always sees the scalar, rendered as a string.
func ReferenceID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case map[string]any:
		if id, ok := t["Id"]; ok {
			return ReferenceID(id)
		}
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	default:
		return fmt.Sprint(v)
	}
}

// ReferenceName returns the nested Name when the expanded shape arrived,
// empty otherwise.
func ReferenceName(v any) string {
	if m, ok := v.(map[string]any); ok {
		if n, ok := m["Name"].(string); ok {
			return n
		}
	}
	return ""
}

// Field readers for decoded records. JSON numbers decode as float64;
// anything absent or of the wrong type reads as the zero value.

func Str(r Record, key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

func Num(r Record, key string) float64 {
	switch t := r[key].(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	}
	return 0
}

func Int(r Record, key string) int { return int(Num(r, key)) }

func Bool(r Record, key string) bool {
	b, _ := r[key].(bool)
	return b
}

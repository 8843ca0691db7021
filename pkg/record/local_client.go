// pkg/record/local_client.go

package record

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"farmdesk/entities"
)

type local struct {
	db *gorm.DB
}

// NewLocal serves the same contract from sqlite, for development and
// tests. Reads return reference fields as raw scalar ids unless the
// caller asked for the expanded shape; the remote side sends nested
// objects, so mappers must accept both (see ReferenceID).
func NewLocal(db *gorm.DB) Client {
	return &local{db: db}
}

func (c *local) FetchRecords(table string, p Params) (*Response, error) {
	var rows []entities.TableRecord
	if err := c.db.Where("table_name = ?", table).Find(&rows).Error; err != nil {
		return nil, err
	}

	// filter on the full record, then project; a where clause may name
	// a field outside the requested field list
	recs := make([]Record, 0, len(rows))
	for _, row := range rows {
		full := c.materialize(row, Params{})
		if matchesAll(full, p.Where) {
			recs = append(recs, c.project(full, p))
		}
	}

	sortRecords(recs, p.OrderBy)
	recs = page(recs, p.PagingInfo)
	return &Response{Success: true, Data: recs}, nil
}

func (c *local) GetRecordByID(table string, id int, p Params) (*SingleResponse, error) {
	row, err := c.find(table, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SingleResponse{Success: false, Message: "Record does not exist"}, nil
		}
		return nil, err
	}
	return &SingleResponse{Success: true, Data: c.materialize(*row, p)}, nil
}

func (c *local) CreateRecord(table string, records []Record) (*Response, error) {
	out := &Response{Success: true}
	for _, rec := range records {
		row := entities.TableRecord{
			Table:     table,
			Fields:    writableFields(rec),
			CreatedOn: time.Now().UTC(),
			UpdatedOn: time.Now().UTC(),
		}
		if err := c.db.Create(&row).Error; err != nil {
			out.Results = append(out.Results, Result{Success: false, Message: err.Error()})
			continue
		}
		out.Results = append(out.Results, Result{Success: true, Data: c.materialize(row, Params{})})
	}
	return out, nil
}

func (c *local) UpdateRecord(table string, records []Record) (*Response, error) {
	out := &Response{Success: true}
	for _, rec := range records {
		id := Int(rec, "Id")
		row, err := c.find(table, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				out.Results = append(out.Results, Result{Success: false, Message: "Record does not exist"})
				continue
			}
			return nil, err
		}
		// only the supplied fields change; everything else keeps its value
		for k, v := range writableFields(rec) {
			row.Fields[k] = v
		}
		row.UpdatedOn = time.Now().UTC()
		if err := c.db.Save(row).Error; err != nil {
			out.Results = append(out.Results, Result{Success: false, Message: err.Error()})
			continue
		}
		out.Results = append(out.Results, Result{Success: true, Data: c.materialize(*row, Params{})})
	}
	return out, nil
}

func (c *local) DeleteRecord(table string, ids []int) (*Response, error) {
	out := &Response{Success: true}
	for _, id := range ids {
		res := c.db.Where("table_name = ? AND id = ?", table, id).Delete(&entities.TableRecord{})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			out.Results = append(out.Results, Result{Success: false, Message: "Record does not exist"})
			continue
		}
		out.Results = append(out.Results, Result{Success: true})
	}
	return out, nil
}

func (c *local) find(table string, id int) (*entities.TableRecord, error) {
	var row entities.TableRecord
	if err := c.db.Where("table_name = ? AND id = ?", table, id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// materialize builds the wire record: stored fields plus the system
// columns, projected down to the requested field list. A requested
// reference field is expanded to the remote's nested {Id, Name} shape
// (ids are store-wide unique, so the referenced row resolves by id
// without knowing its table).
func (c *local) materialize(row entities.TableRecord, p Params) Record {
	rec := Record{
		"Id":        int(row.ID),
		"CreatedOn": row.CreatedOn.Format(time.RFC3339Nano),
	}
	for k, v := range row.Fields {
		rec[k] = v
	}
	return c.project(rec, p)
}

func (c *local) project(rec Record, p Params) Record {
	if len(p.Fields) == 0 {
		return rec
	}

	out := Record{}
	for _, f := range p.Fields {
		name := f.Field.Name
		v, ok := rec[name]
		if !ok {
			continue
		}
		if f.ReferenceField != nil {
			out[name] = c.expandReference(v)
			continue
		}
		out[name] = v
	}
	if _, ok := out["Id"]; !ok {
		out["Id"] = rec["Id"]
	}
	return out
}

func (c *local) expandReference(v any) any {
	id, err := strconv.Atoi(ReferenceID(v))
	if err != nil {
		return v
	}
	var ref entities.TableRecord
	if err := c.db.First(&ref, "id = ?", id).Error; err != nil {
		return v
	}
	name, _ := ref.Fields["Name"].(string)
	return map[string]any{"Id": id, "Name": name}
}

// writableFields drops the columns the store owns; the update target id
// travels in the payload but is never stored as a field.
func writableFields(rec Record) map[string]any {
	out := map[string]any{}
	for k, v := range rec {
		if k == "Id" || k == "CreatedOn" || k == "UpdatedOn" {
			continue
		}
		out[k] = v
	}
	return out
}

func matchesAll(rec Record, where []Where) bool {
	for _, w := range where {
		if !matches(rec, w) {
			return false
		}
	}
	return true
}

func matches(rec Record, w Where) bool {
	if len(w.Values) == 0 {
		return true
	}
	got, want := rec[w.FieldName], w.Values[0]
	switch w.Operator {
	case OpEqualTo:
		return compare(got, want) == 0
	case OpGreaterThanOrEqualTo:
		return compare(got, want) >= 0
	case OpLessThanOrEqualTo:
		return compare(got, want) <= 0
	}
	return false
}

// compare works numerically when both sides are numbers (reference ids
// included), otherwise on the string forms — ISO dates order correctly
// that way.
func compare(a, b any) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(stringForm(a), stringForm(b))
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case map[string]any:
		return toFloat(t["Id"])
	}
	return 0, false
}

func stringForm(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return ReferenceID(v)
	}
}

func sortRecords(recs []Record, order []OrderBy) {
	if len(order) == 0 {
		return
	}
	ob := order[0]
	desc := strings.EqualFold(ob.SortType, "DESC")
	sort.SliceStable(recs, func(i, j int) bool {
		cmp := compare(recs[i][ob.FieldName], recs[j][ob.FieldName])
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func page(recs []Record, p *PagingInfo) []Record {
	if p == nil {
		return recs
	}
	off := p.Offset
	if off >= len(recs) {
		return []Record{}
	}
	recs = recs[off:]
	if p.Limit > 0 && p.Limit < len(recs) {
		recs = recs[:p.Limit]
	}
	return recs
}

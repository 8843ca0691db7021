package record

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmdesk/entities"
)

func testClient(t *testing.T) Client {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "records.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.TableRecord{}))
	return NewLocal(db)
}

func mustCreate(t *testing.T, c Client, table string, rec Record) int {
	t.Helper()
	resp, err := c.CreateRecord(table, []Record{rec})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	require.True(t, resp.Results[0].Success, resp.Results[0].Message)
	return Int(resp.Results[0].Data, "Id")
}

func TestLocalClientCRUD(t *testing.T) {
	c := testClient(t)

	id := mustCreate(t, c, "farm_c", Record{"Name": "Hilltop", "name_c": "Hilltop", "size_c": 12.5})

	t.Run("get by id", func(t *testing.T) {
		resp, err := c.GetRecordByID("farm_c", id, Params{})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "Hilltop", Str(resp.Data, "name_c"))
		assert.Equal(t, 12.5, Num(resp.Data, "size_c"))
		assert.NotEmpty(t, Str(resp.Data, "CreatedOn"))
	})

	t.Run("missing id reports not success", func(t *testing.T) {
		resp, err := c.GetRecordByID("farm_c", 9999, Params{})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Record does not exist", resp.Message)
	})

	t.Run("update merges only supplied fields", func(t *testing.T) {
		resp, err := c.UpdateRecord("farm_c", []Record{{"Id": id, "size_c": 20.0}})
		require.NoError(t, err)
		require.True(t, resp.Results[0].Success)

		got, err := c.GetRecordByID("farm_c", id, Params{})
		require.NoError(t, err)
		assert.Equal(t, 20.0, Num(got.Data, "size_c"))
		assert.Equal(t, "Hilltop", Str(got.Data, "name_c"))
	})

	t.Run("update unknown id fails per result", func(t *testing.T) {
		resp, err := c.UpdateRecord("farm_c", []Record{{"Id": 12345, "size_c": 1.0}})
		require.NoError(t, err)
		msg, failed := resp.FirstFailure()
		assert.True(t, failed)
		assert.Equal(t, "Record does not exist", msg)
	})

	t.Run("delete then gone", func(t *testing.T) {
		resp, err := c.DeleteRecord("farm_c", []int{id})
		require.NoError(t, err)
		require.True(t, resp.Results[0].Success)

		got, err := c.GetRecordByID("farm_c", id, Params{})
		require.NoError(t, err)
		assert.False(t, got.Success)

		again, err := c.DeleteRecord("farm_c", []int{id})
		require.NoError(t, err)
		assert.False(t, again.Results[0].Success)
	})
}

func TestLocalClientFetch(t *testing.T) {
	c := testClient(t)

	farmID := mustCreate(t, c, "farm_c", Record{"Name": "Hilltop", "name_c": "Hilltop"})
	mustCreate(t, c, "expense_c", Record{"Name": "Seed", "farm_id_c": farmID, "amount_c": 50.0, "date_c": "2024-03-05"})
	mustCreate(t, c, "expense_c", Record{"Name": "Fuel", "farm_id_c": farmID, "amount_c": 75.0, "date_c": "2024-04-01"})
	mustCreate(t, c, "expense_c", Record{"Name": "Tools", "farm_id_c": farmID, "amount_c": 30.0, "date_c": "2024-03-20"})

	t.Run("tables are isolated", func(t *testing.T) {
		resp, err := c.FetchRecords("farm_c", Params{})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 1)
	})

	t.Run("date range filter", func(t *testing.T) {
		resp, err := c.FetchRecords("expense_c", Params{
			Where: []Where{
				{FieldName: "date_c", Operator: OpGreaterThanOrEqualTo, Values: []any{"2024-03-01"}},
				{FieldName: "date_c", Operator: OpLessThanOrEqualTo, Values: []any{"2024-03-31"}},
			},
		})
		require.NoError(t, err)
		require.Len(t, resp.Data, 2)
	})

	t.Run("order by date desc", func(t *testing.T) {
		resp, err := c.FetchRecords("expense_c", Params{
			OrderBy: []OrderBy{{FieldName: "date_c", SortType: "DESC"}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Data, 3)
		assert.Equal(t, "2024-04-01", Str(resp.Data[0], "date_c"))
		assert.Equal(t, "2024-03-05", Str(resp.Data[2], "date_c"))
	})

	t.Run("paging", func(t *testing.T) {
		resp, err := c.FetchRecords("expense_c", Params{
			OrderBy:    []OrderBy{{FieldName: "date_c", SortType: "ASC"}},
			PagingInfo: &PagingInfo{Limit: 2, Offset: 1},
		})
		require.NoError(t, err)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "2024-03-20", Str(resp.Data[0], "date_c"))
	})

	t.Run("offset past the end", func(t *testing.T) {
		resp, err := c.FetchRecords("expense_c", Params{
			PagingInfo: &PagingInfo{Limit: 10, Offset: 50},
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Data)
	})

	t.Run("field projection", func(t *testing.T) {
		resp, err := c.FetchRecords("expense_c", Params{
			Fields: []Field{F("amount_c")},
			Where:  []Where{{FieldName: "Name", Operator: OpEqualTo, Values: []any{"Seed"}}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, 50.0, Num(resp.Data[0], "amount_c"))
		_, hasName := resp.Data[0]["Name"]
		assert.False(t, hasName)
	})

	t.Run("reference expansion to nested shape", func(t *testing.T) {
		resp, err := c.FetchRecords("expense_c", Params{
			Fields: []Field{F("Name"), Ref("farm_id_c")},
			Where:  []Where{{FieldName: "Name", Operator: OpEqualTo, Values: []any{"Seed"}}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		ref := resp.Data[0]["farm_id_c"]
		assert.Equal(t, "Hilltop", ReferenceName(ref))
		assert.Equal(t, ReferenceID(farmID), ReferenceID(ref))
	})

	t.Run("filter on reference id matches both shapes", func(t *testing.T) {
		resp, err := c.FetchRecords("expense_c", Params{
			Fields: []Field{F("Name"), Ref("farm_id_c")},
			Where:  []Where{{FieldName: "farm_id_c", Operator: OpEqualTo, Values: []any{farmID}}},
		})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 3)
	})
}

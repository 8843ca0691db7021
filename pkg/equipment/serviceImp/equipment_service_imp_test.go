package serviceImp

import (
	"path/filepath"
	"strconv"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmdesk/entities"
	"farmdesk/pkg/equipment/service"
	farmSvcImp "farmdesk/pkg/farm/serviceImp"
	"farmdesk/pkg/record"
)

func testSetup(t *testing.T) (service.EquipmentService, string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "equipment.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.TableRecord{}))

	store := record.NewLocal(db)
	log := zap.NewNop().Sugar()

	farm, err := farmSvcImp.NewFarmService(store, log).Create(entities.FarmInput{Name: "Hilltop", Size: "10"})
	require.NoError(t, err)

	return NewEquipmentService(store, log), strconv.Itoa(farm.ID)
}

func TestEquipmentRoundTrip(t *testing.T) {
	svc, farmID := testSetup(t)

	created, err := svc.Create(entities.EquipmentInput{
		FarmID:        farmID,
		Name:          "Tractor",
		Type:          "vehicle",
		Manufacturer:  "Deere",
		Model:         "5075E",
		PurchaseDate:  "2023-06-10",
		PurchasePrice: "45000",
		Condition:     "good",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tractor", created.Name)
	assert.Equal(t, 45000.0, created.PurchasePrice)
	assert.Equal(t, farmID, created.FarmID)

	t.Run("optional fields may stay empty", func(t *testing.T) {
		e, err := svc.Create(entities.EquipmentInput{
			FarmID: farmID, Name: "Hoe", Type: "tool",
			PurchaseDate: "2024-01-05", PurchasePrice: "30", Condition: "new",
		})
		require.NoError(t, err)
		assert.Empty(t, e.Manufacturer)
		assert.Empty(t, e.Model)
	})

	t.Run("price must parse", func(t *testing.T) {
		_, err := svc.Create(entities.EquipmentInput{FarmID: farmID, Name: "Bad", PurchasePrice: "cheap"})
		assert.Error(t, err)
	})
}

func TestEquipmentTotalValue(t *testing.T) {
	svc, farmID := testSetup(t)

	mk := func(name, price string) {
		_, err := svc.Create(entities.EquipmentInput{
			FarmID: farmID, Name: name, Type: "tool",
			PurchaseDate: "2024-01-05", PurchasePrice: price, Condition: "good",
		})
		require.NoError(t, err)
	}
	mk("Tractor", "45000")
	mk("Seeder", "1200.50")

	assert.Equal(t, 46200.50, svc.GetTotalValue(""))
	assert.Equal(t, 46200.50, svc.GetTotalValue(farmID))
	assert.Equal(t, 0.0, svc.GetTotalValue("999"))
	assert.Equal(t, 0.0, svc.GetTotalValue("abc"))
}

func TestEquipmentGetByFarmID(t *testing.T) {
	svc, farmID := testSetup(t)

	_, err := svc.Create(entities.EquipmentInput{
		FarmID: farmID, Name: "Tractor", Type: "vehicle",
		PurchaseDate: "2023-06-10", PurchasePrice: "45000", Condition: "good",
	})
	require.NoError(t, err)

	got := svc.GetByFarmID(farmID)
	require.Len(t, got, 1)
	assert.Equal(t, "Tractor", got[0].Name)

	assert.Empty(t, svc.GetByFarmID("999"))
}

func TestEquipmentDelete(t *testing.T) {
	svc, farmID := testSetup(t)

	created, err := svc.Create(entities.EquipmentInput{
		FarmID: farmID, Name: "Seeder", Type: "tool",
		PurchaseDate: "2024-01-05", PurchasePrice: "1200", Condition: "good",
	})
	require.NoError(t, err)
	id := strconv.Itoa(created.ID)

	ok, err := svc.Delete(id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.GetByID(id)
	assert.EqualError(t, err, "Equipment not found")
}

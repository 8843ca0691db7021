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
	"farmdesk/pkg/crop/service"
	farmSvcImp "farmdesk/pkg/farm/serviceImp"
	"farmdesk/pkg/record"
)

func testSetup(t *testing.T) (service.CropService, string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "crop.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.TableRecord{}))

	store := record.NewLocal(db)
	log := zap.NewNop().Sugar()

	farm, err := farmSvcImp.NewFarmService(store, log).Create(entities.FarmInput{Name: "Hilltop", Size: "10"})
	require.NoError(t, err)

	return NewCropService(store, log), strconv.Itoa(farm.ID)
}

func TestCropCreateDefaults(t *testing.T) {
	svc, farmID := testSetup(t)

	created, err := svc.Create(entities.CropInput{
		FarmID:      farmID,
		Name:        "Tomatoes",
		Variety:     "Roma",
		PlantedDate: "2024-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "planted", created.Stage)
	assert.Equal(t, "healthy", created.Status)
	assert.Equal(t, farmID, created.FarmID)
}

func TestCropGetByFarmID(t *testing.T) {
	svc, farmID := testSetup(t)

	_, err := svc.Create(entities.CropInput{FarmID: farmID, Name: "Tomatoes"})
	require.NoError(t, err)
	_, err = svc.Create(entities.CropInput{FarmID: farmID, Name: "Corn"})
	require.NoError(t, err)

	t.Run("matching farm", func(t *testing.T) {
		crops := svc.GetByFarmID(farmID)
		require.Len(t, crops, 2)
		for _, cr := range crops {
			assert.Equal(t, farmID, cr.FarmID)
		}
	})

	t.Run("other farm is empty", func(t *testing.T) {
		assert.Empty(t, svc.GetByFarmID("999"))
	})

	t.Run("bad id degrades to empty", func(t *testing.T) {
		assert.Empty(t, svc.GetByFarmID("abc"))
	})
}

func TestCropUpdateAndDelete(t *testing.T) {
	svc, farmID := testSetup(t)

	created, err := svc.Create(entities.CropInput{FarmID: farmID, Name: "Tomatoes"})
	require.NoError(t, err)
	id := strconv.Itoa(created.ID)

	updated, err := svc.Update(id, entities.CropInput{
		FarmID: farmID,
		Name:   "Tomatoes",
		Stage:  "flowering",
		Status: "attention",
		Notes:  "aphids on lower leaves",
	})
	require.NoError(t, err)
	assert.Equal(t, "flowering", updated.Stage)
	assert.Equal(t, "attention", updated.Status)

	ok, err := svc.Delete(id)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.GetByID(id)
	assert.EqualError(t, err, "Crop not found")
}
